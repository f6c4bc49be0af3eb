// Package fragment turns content rows into self-contained HTML blocks,
// one per row, dispatching on the row's content type.
package fragment

// Fragment is a rendered HTML block for one content row, wrapped in a
// container element tagged with its content type class.
type Fragment string

// Result is the per-row outcome: either a rendered fragment or a skip.
// Skipped rows contribute nothing to the page and never emit placeholder
// markup.
type Result struct {
	Fragment Fragment
	Skipped  bool

	// Reason names why the row was skipped.
	Reason string

	// Err carries the underlying failure when a fetch or render caused the
	// skip; nil for plain validation skips.
	Err error
}

// Rendered wraps a fragment in a successful Result.
func Rendered(f Fragment) Result {
	return Result{Fragment: f}
}

// Skip builds a skipped Result with a human-readable reason.
func Skip(reason string) Result {
	return Result{Skipped: true, Reason: reason}
}

// SkipWithError builds a skipped Result caused by an underlying failure.
func SkipWithError(reason string, err error) Result {
	return Result{Skipped: true, Reason: reason, Err: err}
}

// Fragments filters a slice of results down to the rendered fragments,
// preserving row order.
func Fragments(results []Result) []Fragment {
	fragments := make([]Fragment, 0, len(results))
	for _, result := range results {
		if result.Skipped {
			continue
		}
		fragments = append(fragments, result.Fragment)
	}
	return fragments
}
