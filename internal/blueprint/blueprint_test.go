package blueprint

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"freetoolz-blueprint/internal/catalog"
	"freetoolz-blueprint/internal/models"
	"freetoolz-blueprint/internal/seed"
)

var testSite = models.Site{BaseURL: "https://freetoolz.cloud", Brand: "FreeToolz", LogoPath: "/assets/free-toolz-logo.png"}

var sampleTools = []string{
	"WordCounter", "PDFMergeTool", "LoanCalculator", "TipCalculator", "QRCodeGenerator",
	"UUIDGenerator", "PasswordGenerator", "ImageResizer", "CSSMinifier", "RegexTester",
	"Stopwatch", "MetaRobotsTester", "TextToSlug", "LetterCounter", "CharacterCounter",
}

func newGenerator() *Generator { return New(catalog.Default(), testSite) }

func bySlug(records []models.ContentRecord) map[string]models.ContentRecord {
	out := map[string]models.ContentRecord{}
	for _, r := range records {
		out[r.Slug] = r
	}
	return out
}

func TestWordCounterScenario(t *testing.T) {
	rec, err := newGenerator().Record("WordCounter")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Slug != "word-counter" || rec.Tool != "Word Counter" || rec.Category != "Text Tools" {
		t.Fatalf("unexpected record head: %q %q %q", rec.Slug, rec.Tool, rec.Category)
	}
	s := seed.Value("word-counter")
	if rec.Rating.Count != 120+s%80 {
		t.Fatalf("rating count %d not derived from slug seed %d", rec.Rating.Count, s)
	}
}

func TestPDFRuleWinsOverLaterRules(t *testing.T) {
	rec, err := newGenerator().Record("PDFMergeTool")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Category != "PDF Tools" {
		t.Fatalf("category = %q, want PDF Tools", rec.Category)
	}
}

func TestEmptyIdentifier(t *testing.T) {
	records, report, err := newGenerator().Build([]string{""})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("want 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.Slug != "" || rec.Tool != "" || rec.Category != "Utility Tools" {
		t.Fatalf("unexpected degenerate record: %q %q %q", rec.Slug, rec.Tool, rec.Category)
	}
	if rec.Rating.Value != "4.80" || rec.Rating.Count != 120 {
		t.Fatalf("seed should be 0, got rating %+v", rec.Rating)
	}
	if !reflect.DeepEqual(report.Degenerate, []string{""}) {
		t.Fatalf("report.Degenerate = %#v", report.Degenerate)
	}
}

func TestEmptyInput(t *testing.T) {
	records, report, err := newGenerator().Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	if records == nil || len(records) != 0 || report.Tools != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", records)
	}
	data, _ := json.Marshal(records)
	if string(data) != "[]" {
		t.Fatalf("json = %s, want []", data)
	}
}

func TestLinkScenarios(t *testing.T) {
	records, _, err := newGenerator().Build([]string{"LoanCalculator", "TipCalculator", "PDFMergeTool"})
	if err != nil {
		t.Fatal(err)
	}
	m := bySlug(records)
	if got := m["loan-calculator"].InternalLinks; !reflect.DeepEqual(got, []string{"/tools/tip-calculator", "/blog/calculator-usage-scenarios"}) {
		t.Fatalf("loan-calculator links = %#v", got)
	}
	if got := m["tip-calculator"].InternalLinks; !reflect.DeepEqual(got, []string{"/tools/loan-calculator", "/blog/calculator-usage-scenarios"}) {
		t.Fatalf("tip-calculator links = %#v", got)
	}
	if got := m["pdfmerge-tool"].InternalLinks; !reflect.DeepEqual(got, []string{"/blog/pdf-automation-guide"}) {
		t.Fatalf("pdfmerge-tool links = %#v", got)
	}
}

func TestBuildSortsIdentifiers(t *testing.T) {
	in := []string{"WordCounter", "BMICalculator", "Stopwatch"}
	records, _, err := newGenerator().Build(in)
	if err != nil {
		t.Fatal(err)
	}
	got := []string{records[0].Slug, records[1].Slug, records[2].Slug}
	if !reflect.DeepEqual(got, []string{"bmicalculator", "stopwatch", "word-counter"}) {
		t.Fatalf("order = %#v", got)
	}
	if in[0] != "WordCounter" {
		t.Fatal("Build modified its input")
	}
}

func TestBuildOrdersMixedCaseAlphabetically(t *testing.T) {
	records, _, err := newGenerator().Build([]string{"URLEncoder", "UnitConverter", "CSSMinifier", "CaseConverter"})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, r := range records {
		got = append(got, r.Slug)
	}
	if want := []string{"case-converter", "cssminifier", "unit-converter", "urlencoder"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %#v, want %#v", got, want)
	}
	links := bySlug(records)["case-converter"].InternalLinks
	if want := []string{"/tools/unit-converter", "/tools/urlencoder", "/blog/data-conversion-best-practices"}; !reflect.DeepEqual(links, want) {
		t.Fatalf("links = %#v, want %#v", links, want)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, _, err := newGenerator().Build(sampleTools)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := newGenerator().Build(sampleTools)
	if err != nil {
		t.Fatal(err)
	}
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if string(ja) != string(jb) {
		t.Fatal("two runs over the same input produced different output")
	}
}

func TestBuildInvariants(t *testing.T) {
	cat := catalog.Default()
	records, report, err := New(cat, testSite).Build(sampleTools)
	if err != nil {
		t.Fatal(err)
	}
	if report.Tools != len(sampleTools) {
		t.Fatalf("report.Tools = %d", report.Tools)
	}
	for _, r := range records {
		if _, ok := cat.Profile(r.Category); !ok {
			t.Fatalf("%s: category %q has no profile", r.Slug, r.Category)
		}
		if n := len(r.InternalLinks); n < 1 || n > 3 {
			t.Fatalf("%s: %d internal links", r.Slug, n)
		}
		for _, l := range r.InternalLinks {
			if l == models.ToolPath(r.Slug) {
				t.Fatalf("%s links to itself", r.Slug)
			}
		}
		if len(r.Content) != 5 {
			t.Fatalf("%s: %d paragraphs", r.Slug, len(r.Content))
		}
		entities := r.Schema.FAQ.MainEntity
		if len(entities) != len(r.FAQ) {
			t.Fatalf("%s: faq %d vs schema %d", r.Slug, len(r.FAQ), len(entities))
		}
		for i, q := range entities {
			if q.Name != r.FAQ[i].Question {
				t.Fatalf("%s: schema question %d = %q, want %q", r.Slug, i, q.Name, r.FAQ[i].Question)
			}
		}
		if r.Schema.SoftwareApplication.AggregateRating.RatingValue != r.Rating.Value {
			t.Fatalf("%s: schema rating differs from record rating", r.Slug)
		}
	}
}

func TestUnknownCategoryAbortsRun(t *testing.T) {
	cat := catalog.Default()
	cat.CategoryRules = append([]catalog.CategoryRule{{Keywords: []string{"Audio"}, Category: "Audio Tools"}}, cat.CategoryRules...)
	records, _, err := New(cat, testSite).Build([]string{"WordCounter", "AudioTrimmer"})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("want ErrUnknownCategory, got %v", err)
	}
	if records != nil {
		t.Fatal("no records should be returned from a failed run")
	}
}

func TestRecordJSONFields(t *testing.T) {
	records, _, err := newGenerator().Build([]string{"WordCounter"})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(records[0])
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{
		"tool", "slug", "category", "url", "titleTag", "metaDescription", "h1", "h2", "content",
		"features", "useCases", "steps", "keywords", "paa", "faq", "cta", "directAnswer",
		"snippetAnswer", "conversationalAnswer", "voiceAnswer", "imageAlt", "rating", "schema", "internalLinks",
	} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing json field %q", key)
		}
	}
}
