package linkgraph

import (
	"reflect"
	"testing"

	"freetoolz-blueprint/internal/models"
)

var blogs = map[string]string{
	"Text Tools":  "/blog/text",
	"PDF Tools":   "/blog/pdf",
	"Calculators": "/blog/calc",
}

func rec(slug, category string) models.ContentRecord {
	return models.ContentRecord{Slug: slug, Category: category}
}

func TestAttach(t *testing.T) {
	records := []models.ContentRecord{
		rec("a", "Text Tools"),
		rec("b", "PDF Tools"),
		rec("c", "Text Tools"),
		rec("d", "Text Tools"),
		rec("e", "Text Tools"),
		rec("f", "PDF Tools"),
		rec("g", "Calculators"),
	}
	Attach(records, blogs)

	want := map[string][]string{
		"a": {"/tools/c", "/tools/d", "/blog/text"},
		"c": {"/tools/a", "/tools/d", "/blog/text"},
		"e": {"/tools/a", "/tools/c", "/blog/text"},
		"b": {"/tools/f", "/blog/pdf"},
		"f": {"/tools/b", "/blog/pdf"},
		"g": {"/blog/calc"},
	}
	for _, r := range records {
		w, ok := want[r.Slug]
		if !ok {
			continue
		}
		if !reflect.DeepEqual(r.InternalLinks, w) {
			t.Errorf("%s links = %#v, want %#v", r.Slug, r.InternalLinks, w)
		}
	}
}

func TestAttachInvariants(t *testing.T) {
	var records []models.ContentRecord
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		cat := "Text Tools"
		if s > "e" {
			cat = "PDF Tools"
		}
		records = append(records, rec(s, cat))
	}
	Attach(records, blogs)
	for _, r := range records {
		if n := len(r.InternalLinks); n < 1 || n > 3 {
			t.Fatalf("%s has %d links", r.Slug, n)
		}
		for _, l := range r.InternalLinks {
			if l == models.ToolPath(r.Slug) {
				t.Fatalf("%s links to itself", r.Slug)
			}
		}
	}
}

func TestAttachEmpty(t *testing.T) {
	Attach(nil, blogs)
}
