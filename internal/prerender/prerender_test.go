package prerender

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"freetoolz-blueprint/internal/blueprint"
	"freetoolz-blueprint/internal/catalog"
	"freetoolz-blueprint/internal/models"
)

var testSite = models.Site{BaseURL: "https://freetoolz.cloud", Brand: "FreeToolz", LogoPath: "/assets/free-toolz-logo.png"}

func buildRecords(t *testing.T, ids ...string) []models.ContentRecord {
	t.Helper()
	records, _, err := blueprint.New(catalog.Default(), testSite).Build(ids)
	if err != nil {
		t.Fatal(err)
	}
	return records
}

func TestRender(t *testing.T) {
	rec := buildRecords(t, "MetaRobotsTester", "HashIdentifier")[1]
	var buf bytes.Buffer
	if err := Render(&buf, rec, testSite); err != nil {
		t.Fatal(err)
	}
	html := buf.String()
	for _, want := range []string{
		"<title>Meta Robots Tester | Free Security &amp; SEO Tool Tool by FreeToolz</title>",
		`<link rel="canonical" href="https://freetoolz.cloud/tools/meta-robots-tester">`,
		`<h1>Meta Robots Tester</h1>`,
		`<script type="application/ld+json">`,
		`href="/tools/hash-identifier"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}

	start := strings.Index(html, `<script type="application/ld+json">`) + len(`<script type="application/ld+json">`)
	end := strings.Index(html[start:], "</script>")
	var app models.SoftwareApplication
	if err := json.Unmarshal([]byte(html[start:start+end]), &app); err != nil {
		t.Fatalf("embedded JSON-LD does not parse: %v\n%s", err, html[start:start+end])
	}
	if app.Name != "Meta Robots Tester" || app.AggregateRating.RatingValue != rec.Rating.Value {
		t.Fatalf("unexpected JSON-LD %+v", app)
	}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	records := buildRecords(t, "WordCounter", "LetterCounter", "!!!")
	n, err := WriteAll(dir, records, testSite)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("want 2 pages (empty slug skipped), got %d", n)
	}
	for _, slug := range []string{"word-counter", "letter-counter"} {
		if _, err := os.Stat(filepath.Join(dir, "tools", slug, "index.html")); err != nil {
			t.Fatalf("page for %s not written: %v", slug, err)
		}
	}
}
