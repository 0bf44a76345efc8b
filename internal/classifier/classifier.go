package classifier

import (
	"sort"
	"strings"
	"unicode"

	"freetoolz-blueprint/internal/catalog"
	"freetoolz-blueprint/internal/models"
)

type categoryRule struct {
	keywords []string // lowercase
	category string
}

type intentRule struct {
	keywords []string // lowercase
	intent   models.Intent
}

// Classifier maps tool identifiers to a category and an intent using the
// catalog's ordered rule tables. The first matching rule wins and every
// identifier falls back to a default, so neither lookup can come back empty.
type Classifier struct {
	categories       []categoryRule
	fallbackCategory string
	intents          []intentRule
	fallbackIntent   models.Intent
}

func New(cat *catalog.Catalog) *Classifier {
	c := &Classifier{
		fallbackCategory: cat.FallbackCategory,
		fallbackIntent:   cat.FallbackIntent,
	}
	for _, r := range cat.CategoryRules {
		c.categories = append(c.categories, categoryRule{keywords: lower(r.Keywords), category: r.Category})
	}
	for _, r := range cat.IntentRules {
		c.intents = append(c.intents, intentRule{keywords: lower(r.Keywords), intent: r.Intent})
	}
	return c
}

func (c *Classifier) Category(identifier string) string {
	name := strings.ToLower(identifier)
	for _, r := range c.categories {
		if containsAny(name, r.keywords) {
			return r.category
		}
	}
	return c.fallbackCategory
}

func (c *Classifier) Intent(identifier string) models.Intent {
	name := strings.ToLower(identifier)
	for _, r := range c.intents {
		if containsAny(name, r.keywords) {
			return r.intent
		}
	}
	return c.fallbackIntent
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func lower(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// simple stopword list (extend as needed)
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "of": {}, "to": {}, "in": {}, "a": {}, "for": {}, "is": {}, "on": {}, "with": {}, "as": {},
	"by": {}, "at": {}, "from": {}, "that": {}, "this": {}, "it": {}, "an": {}, "be": {}, "or": {}, "are": {}, "was": {},
	"will": {}, "has": {}, "have": {}, "had": {}, "but": {}, "not": {}, "your": {}, "you": {}, "we": {}, "our": {},
	"can": {}, "so": {}, "every": {}, "into": {}, "its": {}, "how": {}, "what": {}, "does": {},
}

// TopTopics returns top N keywords by frequency, ignoring stopwords and short tokens.
func (c *Classifier) TopTopics(text string, n int) []string {
	freq := map[string]int{}
	token := func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsNumber(r) }
	words := strings.FieldsFunc(strings.ToLower(text), token)

	for _, w := range words {
		if len(w) < 3 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		freq[w]++
	}

	type kv struct {
		K string
		V int
	}
	var list []kv
	for k, v := range freq {
		list = append(list, kv{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].V == list[j].V {
			return list[i].K < list[j].K
		}
		return list[i].V > list[j].V
	})
	if n > len(list) {
		n = len(list)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, list[i].K)
	}
	return out
}
