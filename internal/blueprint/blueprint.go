package blueprint

import (
	"errors"
	"fmt"

	"freetoolz-blueprint/internal/catalog"
	"freetoolz-blueprint/internal/classifier"
	"freetoolz-blueprint/internal/composer"
	"freetoolz-blueprint/internal/linkgraph"
	"freetoolz-blueprint/internal/models"
	"freetoolz-blueprint/internal/naming"
	"freetoolz-blueprint/internal/rating"
	"freetoolz-blueprint/internal/schema"
	"freetoolz-blueprint/internal/seed"
)

// ErrUnknownCategory means a rule classified a tool into a category that has
// no profile. The catalog is broken and nothing from the run is usable.
var ErrUnknownCategory = errors.New("unknown category")

// Report describes a run alongside its records.
type Report struct {
	Tools int `json:"tools"`
	// Degenerate lists identifiers whose slug came out empty. Their records
	// are still built.
	Degenerate []string       `json:"degenerate,omitempty"`
	Categories map[string]int `json:"categories"`
}

type Generator struct {
	catalog    *catalog.Catalog
	classifier *classifier.Classifier
	composer   *composer.Composer
	site       models.Site
}

func New(cat *catalog.Catalog, site models.Site) *Generator {
	return &Generator{
		catalog:    cat,
		classifier: classifier.New(cat),
		composer:   composer.New(site),
		site:       site,
	}
}

// Build produces one record per identifier, sorted by identifier, then links
// the records to each other. The input slice is not modified.
func (g *Generator) Build(identifiers []string) ([]models.ContentRecord, Report, error) {
	ids := append([]string(nil), identifiers...)
	naming.SortIdentifiers(ids)

	report := Report{Categories: map[string]int{}}
	records := make([]models.ContentRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := g.Record(id)
		if err != nil {
			return nil, Report{}, err
		}
		if rec.Slug == "" {
			report.Degenerate = append(report.Degenerate, id)
		}
		report.Categories[rec.Category]++
		records = append(records, rec)
	}

	blogs := make(map[string]string, len(g.catalog.Categories))
	for _, p := range g.catalog.Categories {
		blogs[p.Name] = p.Blog
	}
	linkgraph.Attach(records, blogs)

	report.Tools = len(records)
	return records, report, nil
}

// Record builds a single record without internal links.
func (g *Generator) Record(identifier string) (models.ContentRecord, error) {
	name := naming.Normalize(identifier)
	category := g.classifier.Category(identifier)
	profile, ok := g.catalog.Profile(category)
	if !ok {
		return models.ContentRecord{}, fmt.Errorf("%w: %q (tool %q)", ErrUnknownCategory, category, identifier)
	}
	s := seed.Value(name.Slug)

	rec := g.composer.Compose(composer.Input{
		Name:    name.Display,
		Slug:    name.Slug,
		Profile: profile,
		Intent:  g.classifier.Intent(identifier),
		Seed:    s,
	})
	rec.Rating = rating.Rate(s)
	rec.Schema = schema.Emit(rec, rec.FAQ, profile, g.site)
	return rec, nil
}

// Catalog returns the catalog the generator classifies against.
func (g *Generator) Catalog() *catalog.Catalog { return g.catalog }

// Site returns the site every record is published under.
func (g *Generator) Site() models.Site { return g.site }
