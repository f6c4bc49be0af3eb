package orchestrator_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/maiamcc/not-my-locker-room/pkg/content"
	"github.com/maiamcc/not-my-locker-room/pkg/oembed"
	"github.com/maiamcc/not-my-locker-room/pkg/orchestrator"
	"github.com/maiamcc/not-my-locker-room/pkg/page"
	"github.com/maiamcc/not-my-locker-room/pkg/testsupport"
)

const testTable = `type,url,quote
twitter,http://twitter.com/user/status/1,
foo,http://nowhere.com,
website,http://a.com,Great!
instagram,http://instagram.com/p/broken/,
`

const testTemplate = "<html>\n<body>\n%s\n</body>\n</html>\n"

// newTestOrchestrator points both providers at local servers: Twitter
// succeeds, Instagram always 404s.
func newTestOrchestrator(t *testing.T, fetches *atomic.Int64) *orchestrator.Orchestrator {
	t.Helper()

	twitterSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		_, _ = w.Write([]byte(`{"html":"<blockquote>tweet one</blockquote>"}`))
	}))
	t.Cleanup(twitterSrv.Close)

	instagramSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("gone"))
	}))
	t.Cleanup(instagramSrv.Close)

	registry := oembed.NewRegistry()
	registry.MustRegister(oembed.NewTwitter(oembed.WithEndpoint(twitterSrv.URL + "/oembed?url=%s")))
	registry.MustRegister(oembed.NewInstagram(oembed.WithEndpoint(instagramSrv.URL + "/oembed/?url=%s")))

	return orchestrator.New(
		orchestrator.WithProviders(registry),
		orchestrator.WithLogger(testsupport.DiscardLogger()),
	)
}

func writeInputs(t *testing.T) (contentPath, templatePath string) {
	t.Helper()
	dir := t.TempDir()
	contentPath = testsupport.WriteFile(t, dir, "content.csv", testTable)
	templatePath = testsupport.WriteFile(t, dir, "index_template.html", testTemplate)
	return contentPath, templatePath
}

func wantPage() string {
	fragments := strings.Join([]string{
		`<div class="content twitter"><blockquote>tweet one</blockquote></div>`,
		"<div class=\"content website\"><span class=\"website-content\">Great!</span>\n<span class=\"website-url\">http://a.com</span></div>",
	}, "\n\n")
	return "<html>\n<body>\n" + fragments + "\n</body>\n</html>\n"
}

func TestGenerateContract(t *testing.T) {
	var fetches atomic.Int64
	gen := newTestOrchestrator(t, &fetches)
	contentPath, templatePath := writeInputs(t)

	output, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		ContentSource:  content.SourceFromFile(contentPath),
		TemplateSource: content.SourceFromFile(templatePath),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if diff := testsupport.CompareGolden(wantPage(), string(output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	// One fetch per embedded row; the foo and website rows never hit the
	// network, and the failed Instagram fetch does not abort the run.
	if fetches.Load() != 2 {
		t.Errorf("saw %d fetches, want 2", fetches.Load())
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	var fetches atomic.Int64
	gen := newTestOrchestrator(t, &fetches)
	contentPath, templatePath := writeInputs(t)

	req := orchestrator.Request{
		ContentSource:  content.SourceFromFile(contentPath),
		TemplateSource: content.SourceFromFile(templatePath),
	}

	first, err := gen.Generate(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	second, err := gen.Generate(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("identical inputs must produce byte-identical output")
	}
}

func TestGenerateInvalidTemplateFailsBeforeFetching(t *testing.T) {
	var fetches atomic.Int64
	gen := newTestOrchestrator(t, &fetches)
	dir := t.TempDir()
	contentPath := testsupport.WriteFile(t, dir, "content.csv", testTable)
	templatePath := testsupport.WriteFile(t, dir, "index_template.html", "<html></html>")

	_, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		ContentSource:  content.SourceFromFile(contentPath),
		TemplateSource: content.SourceFromFile(templatePath),
	})
	if err == nil {
		t.Fatal("expected error for template without placeholder")
	}
	if !strings.Contains(err.Error(), "invalid template") {
		t.Errorf("error = %v", err)
	}
	if fetches.Load() != 0 {
		t.Errorf("invalid template must fail before any fetch, saw %d", fetches.Load())
	}
}

func TestGenerateFromRowsBypassesLoader(t *testing.T) {
	var fetches atomic.Int64
	gen := newTestOrchestrator(t, &fetches)

	output, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		Rows: []content.Row{
			{Type: content.TypeWebsite, URL: "http://a.com", Quote: "Great!"},
			{Type: "foo", URL: "x"},
		},
		Template: page.MustParse("<html>%s</html>"),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := "<html><div class=\"content website\"><span class=\"website-content\">Great!</span>\n<span class=\"website-url\">http://a.com</span></div></html>"
	if string(output) != want {
		t.Fatalf("output = %q, want %q", output, want)
	}
}

func TestGenerateRequiresContext(t *testing.T) {
	gen := orchestrator.New(orchestrator.WithLogger(testsupport.DiscardLogger()))
	//nolint:staticcheck // exercising the nil-context guard on purpose
	if _, err := gen.Generate(nil, orchestrator.Request{}); err == nil {
		t.Fatal("expected error for nil context")
	}
}

func TestGenerateRequiresSources(t *testing.T) {
	gen := orchestrator.New(orchestrator.WithLogger(testsupport.DiscardLogger()))

	_, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		Template: page.MustParse("%s"),
	})
	if err == nil || !strings.Contains(err.Error(), "content source or rows") {
		t.Fatalf("expected missing-source error, got %v", err)
	}
}

func TestGenerateToFileOverwrites(t *testing.T) {
	var fetches atomic.Int64
	gen := newTestOrchestrator(t, &fetches)
	contentPath, templatePath := writeInputs(t)

	outPath := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(outPath, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed outfile: %v", err)
	}

	err := gen.GenerateToFile(testsupport.Context(), orchestrator.Request{
		ContentSource:  content.SourceFromFile(contentPath),
		TemplateSource: content.SourceFromFile(templatePath),
	}, outPath)
	if err != nil {
		t.Fatalf("generate to file: %v", err)
	}

	written, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read outfile: %v", err)
	}
	if diff := testsupport.CompareGolden(wantPage(), string(written)); diff != "" {
		t.Fatalf("outfile mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateEmptyTableSubstitutesEmptyBlock(t *testing.T) {
	gen := orchestrator.New(orchestrator.WithLogger(testsupport.DiscardLogger()))
	dir := t.TempDir()
	contentPath := testsupport.WriteFile(t, dir, "content.csv", "type,url,quote\n")
	templatePath := testsupport.WriteFile(t, dir, "index_template.html", "<html>%s</html>")

	output, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		ContentSource:  content.SourceFromFile(contentPath),
		TemplateSource: content.SourceFromFile(templatePath),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(output) != "<html></html>" {
		t.Fatalf("output = %q", output)
	}
}
