package linkgraph

import "freetoolz-blueprint/internal/models"

// MaxSiblings is how many same-category tools each record links to.
const MaxSiblings = 2

// Attach fills InternalLinks on every record: up to MaxSiblings tool paths
// from the same category, in input order and never the record itself,
// followed by the category's blog path. It must run after every record has
// been built.
func Attach(records []models.ContentRecord, blogs map[string]string) {
	buckets := map[string][]int{}
	for i, r := range records {
		buckets[r.Category] = append(buckets[r.Category], i)
	}

	for i := range records {
		rec := &records[i]
		links := make([]string, 0, MaxSiblings+1)
		for _, j := range buckets[rec.Category] {
			if len(links) == MaxSiblings {
				break
			}
			if records[j].Slug == rec.Slug {
				continue
			}
			links = append(links, models.ToolPath(records[j].Slug))
		}
		rec.InternalLinks = append(links, blogs[rec.Category])
	}
}
