package loader_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	contentloader "github.com/maiamcc/not-my-locker-room/internal/content/loader"
	"github.com/maiamcc/not-my-locker-room/pkg/content"
	"github.com/maiamcc/not-my-locker-room/pkg/testsupport"
)

const sampleTable = `type,url,quote
twitter,http://twitter.com/user/status/1,
website,http://a.com,Great!
instagram,http://instagram.com/p/abc/,
`

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "content.csv", sampleTable)

	loader := contentloader.New(content.NewLoaderOptions())
	rows, err := loader.Load(testsupport.Context(), content.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []content.Row{
		{Type: content.TypeTwitter, URL: "http://twitter.com/user/status/1"},
		{Type: content.TypeWebsite, URL: "http://a.com", Quote: "Great!"},
		{Type: content.TypeInstagram, URL: "http://instagram.com/p/abc/"},
	}
	if diff := testsupport.CompareGolden(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFS(t *testing.T) {
	files := fstest.MapFS{
		"tables/content.csv": &fstest.MapFile{Data: []byte(sampleTable)},
	}

	loader := contentloader.New(content.NewLoaderOptions(content.WithFileSystem(files)))
	rows, err := loader.Load(testsupport.Context(), content.SourceFromFS("tables/content.csv"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
}

func TestLoadFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleTable))
	}))
	defer server.Close()

	loader := contentloader.New(content.NewLoaderOptions(content.WithHTTPFallback(0)))
	rows, err := loader.Load(testsupport.Context(), content.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
}

func TestLoadURLDisabledByDefault(t *testing.T) {
	loader := contentloader.New(content.NewLoaderOptions())
	_, err := loader.Load(testsupport.Context(), content.SourceFromURL("http://example.com/content.csv"))
	if err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected http-disabled error, got %v", err)
	}
}

func TestLoadIgnoresExtraColumns(t *testing.T) {
	table := "type,url,quote,notes\nwebsite,http://a.com,Great!,ignore me\n"
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "content.csv", table)

	loader := contentloader.New(content.NewLoaderOptions())
	rows, err := loader.Load(testsupport.Context(), content.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []content.Row{{Type: content.TypeWebsite, URL: "http://a.com", Quote: "Great!"}}
	if diff := testsupport.CompareGolden(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadShortRowLeavesFieldsEmpty(t *testing.T) {
	table := "type,url,quote\ntwitter,http://t.co/x\n"
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "content.csv", table)

	loader := contentloader.New(content.NewLoaderOptions())
	rows, err := loader.Load(testsupport.Context(), content.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Quote != "" {
		t.Errorf("short row quote = %q, want empty", rows[0].Quote)
	}
}

func TestLoadEmptyTableFails(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "content.csv", "")

	loader := contentloader.New(content.NewLoaderOptions())
	_, err := loader.Load(testsupport.Context(), content.SourceFromFile(path))
	if err == nil || !strings.Contains(err.Error(), "no header row") {
		t.Fatalf("expected header error, got %v", err)
	}
}

func TestLoadHeaderOnlyYieldsNoRows(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "content.csv", "type,url,quote\n")

	loader := contentloader.New(content.NewLoaderOptions())
	rows, err := loader.Load(testsupport.Context(), content.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
}

func TestLoadRaw(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "index_template.html", "<html>%s</html>")

	loader := contentloader.New(content.NewLoaderOptions())
	raw, err := loader.LoadRaw(testsupport.Context(), content.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load raw: %v", err)
	}
	if string(raw) != "<html>%s</html>" {
		t.Fatalf("raw = %q", raw)
	}
}

func TestLoadNilSource(t *testing.T) {
	loader := contentloader.New(content.NewLoaderOptions())
	if _, err := loader.Load(testsupport.Context(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}
