package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"freetoolz-blueprint/internal/models"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// CategoryRule assigns Category to identifiers containing any of Keywords.
type CategoryRule struct {
	Keywords []string `yaml:"keywords"`
	Category string   `yaml:"category"`
}

type IntentRule struct {
	Keywords      []string `yaml:"keywords"`
	models.Intent `yaml:",inline"`
}

// Catalog holds the category profiles and the ordered rule tables. Rule order
// matters: the first matching rule wins.
type Catalog struct {
	Categories       []models.CategoryProfile `yaml:"categories"`
	CategoryRules    []CategoryRule           `yaml:"category_rules"`
	FallbackCategory string                   `yaml:"fallback_category"`
	IntentRules      []IntentRule             `yaml:"intent_rules"`
	FallbackIntent   models.Intent            `yaml:"fallback_intent"`
}

// Profile looks up a category profile by name.
func (c *Catalog) Profile(name string) (models.CategoryProfile, bool) {
	for _, p := range c.Categories {
		if p.Name == name {
			return p, true
		}
	}
	return models.CategoryProfile{}, false
}

// Validate reports profiles missing required fields and rules that name a
// category with no profile.
func (c *Catalog) Validate() error {
	seen := map[string]struct{}{}
	for _, p := range c.Categories {
		if p.Name == "" || p.Slug == "" || p.Blog == "" || p.ApplicationCategory == "" {
			return fmt.Errorf("%w: category %q is missing name, slug, blog or application_category", ErrInvalidCatalog, p.Name)
		}
		if len(p.Audience) == 0 {
			return fmt.Errorf("%w: category %q has no audience", ErrInvalidCatalog, p.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	if _, ok := seen[c.FallbackCategory]; !ok {
		return fmt.Errorf("%w: fallback category %q has no profile", ErrInvalidCatalog, c.FallbackCategory)
	}
	for i, r := range c.CategoryRules {
		if _, ok := seen[r.Category]; !ok {
			return fmt.Errorf("%w: category rule %d targets unknown category %q", ErrInvalidCatalog, i, r.Category)
		}
	}
	if c.FallbackIntent.Verb == "" {
		return fmt.Errorf("%w: fallback intent has no verb", ErrInvalidCatalog)
	}
	return nil
}

// LoadFile reads a YAML catalog. Sections left out of the file keep the
// built-in defaults.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	cat := Default()
	if len(file.Categories) > 0 {
		cat.Categories = file.Categories
	}
	if len(file.CategoryRules) > 0 {
		cat.CategoryRules = file.CategoryRules
	}
	if file.FallbackCategory != "" {
		cat.FallbackCategory = file.FallbackCategory
	}
	if len(file.IntentRules) > 0 {
		cat.IntentRules = file.IntentRules
	}
	if file.FallbackIntent.Verb != "" {
		cat.FallbackIntent = file.FallbackIntent
	}
	return cat, nil
}
