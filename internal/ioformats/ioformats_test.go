package ioformats

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"freetoolz-blueprint/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListTools(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"WordCounter.tsx", "AgeCalculator.tsx", "README.md", "helpers.ts"} {
		writeFile(t, filepath.Join(dir, name), "")
	}
	if err := os.Mkdir(filepath.Join(dir, "Nested.tsx"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := ListTools(dir, ".tsx")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"AgeCalculator", "WordCounter"}) {
		t.Fatalf("ListTools = %#v", got)
	}
	if got, _ := ListTools(dir, "tsx"); len(got) != 2 {
		t.Fatalf("extension without dot should match too, got %#v", got)
	}
}

func TestListToolsMissingDir(t *testing.T) {
	if _, err := ListTools(filepath.Join(t.TempDir(), "missing"), ".tsx"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestReadIdentifiersCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.csv")
	writeFile(t, path, "id,Tool\n1,WordCounter\n2, PDFMergeTool \n3,\n")
	got, err := ReadIdentifiers(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"WordCounter", "PDFMergeTool"}) {
		t.Fatalf("got %#v", got)
	}
}

func TestReadIdentifiersCSVWithoutColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.csv")
	writeFile(t, path, "url\nhttps://example.com\n")
	if _, err := ReadIdentifiers(path); err == nil {
		t.Fatal("expected error for csv without identifier column")
	}
}

func TestReadIdentifiersNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.ndjson")
	writeFile(t, path, "WordCounter\n{\"tool\":\"LoanCalculator\"}\n\n\"QRCodeGenerator\"\n")
	got, err := ReadIdentifiers(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"WordCounter", "LoanCalculator", "QRCodeGenerator"}) {
		t.Fatalf("got %#v", got)
	}
}

func TestWriteRecordsFormats(t *testing.T) {
	records := []models.ContentRecord{{Tool: "A", Slug: "a"}, {Tool: "B & C", Slug: "b"}}

	var buf bytes.Buffer
	if err := WriteRecords(&buf, records, "json"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "[\n  {\n    \"tool\": \"A\"") {
		t.Fatalf("json output not indented as expected:\n%s", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\n]") {
		t.Fatalf("json output should end at the closing bracket: %q", buf.String()[buf.Len()-5:])
	}
	if !strings.Contains(buf.String(), `"tool": "B & C"`) {
		t.Fatal("json output should not escape HTML characters")
	}

	buf.Reset()
	if err := WriteRecords(&buf, records, "ndjson"); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) != 2 {
		t.Fatalf("want 2 ndjson lines, got %d", len(lines))
	}

	if err := WriteRecords(&buf, records, "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWriteFileOverwritesAndReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seo", "tool-seo-blueprint.json")
	write := func(records []models.ContentRecord) int64 {
		n, err := WriteFile(path, func(w io.Writer) error { return WriteRecords(w, records, "json") })
		if err != nil {
			t.Fatal(err)
		}
		return n
	}
	write([]models.ContentRecord{{Slug: "a"}, {Slug: "b"}})
	n := write([]models.ContentRecord{{Slug: "c"}})

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != n {
		t.Fatalf("reported %d bytes, file has %d", n, info.Size())
	}
	if info.Mode().Perm() != FileMode {
		t.Fatalf("mode = %v, want %v", info.Mode().Perm(), FileMode)
	}
	got, err := ReadRecords(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Slug != "c" {
		t.Fatalf("second write should replace the first, got %#v", got)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("temporary files left behind: %d entries", len(entries))
	}
}

func TestReadRecordsNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	var buf bytes.Buffer
	for _, s := range []string{"a", "b"} {
		data, _ := json.Marshal(models.ContentRecord{Slug: s})
		buf.Write(append(data, '\n'))
	}
	writeFile(t, path, buf.String())
	got, err := ReadRecords(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Slug != "b" {
		t.Fatalf("got %#v", got)
	}
}
