// Package loader implements content.Loader over file, fs.FS, and HTTP
// sources. The table format is CSV with a header row; each data row is
// zipped against the header to produce a content.Row.
package loader

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/maiamcc/not-my-locker-room/pkg/content"
)

// Loader implements content.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fsHolder
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interfaces.
var (
	_ content.Loader    = (*Loader)(nil)
	_ content.RawLoader = (*Loader)(nil)
)

// New constructs a Loader from pre-resolved options.
func New(options content.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        fsHolder{files: options.FileSystem},
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load reads the table behind src and parses it into rows.
func (l *Loader) Load(ctx context.Context, src content.Source) ([]content.Row, error) {
	data, err := l.LoadRaw(ctx, src)
	if err != nil {
		return nil, err
	}
	return parseTable(data)
}

// LoadRaw reads the raw bytes behind src without interpreting them.
func (l *Loader) LoadRaw(ctx context.Context, src content.Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("content loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case content.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case content.SourceKindFS:
		data, err = l.fs.load(ctx, src.Location())
	case content.SourceKindURL:
		if !l.allowHTTP {
			return nil, errors.New("content loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("content loader: unsupported source kind")
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

// parseTable zips each data row against the header row. Short rows leave
// the missing trailing cells empty; columns outside the recognized set are
// ignored.
func parseTable(data []byte) ([]content.Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("content loader: table has no header row")
		}
		return nil, fmt.Errorf("content loader: read header: %w", err)
	}

	var rows []content.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("content loader: read row %d: %w", len(rows)+1, err)
		}

		var row content.Row
		for i, name := range header {
			value := ""
			if i < len(record) {
				value = record[i]
			}
			switch name {
			case content.ColumnType:
				row.Type = content.Type(value)
			case content.ColumnURL:
				row.URL = value
			case content.ColumnQuote:
				row.Quote = value
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
