package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Name is the readable and URL forms of a tool identifier.
type Name struct {
	Display string
	Slug    string
}

var (
	lowerUpperRe  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymWordRe = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	nonSlugCharRe = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	hyphenRunRe   = regexp.MustCompile(`-+`)
)

func Normalize(identifier string) Name {
	return Name{Display: DisplayName(identifier), Slug: Slug(identifier)}
}

// DisplayName splits a PascalCase identifier into words. Acronym runs stay
// upper case, so "PDFMergeTool" becomes "PDF Merge Tool".
func DisplayName(identifier string) string {
	s := lowerUpperRe.ReplaceAllString(identifier, "$1 $2")
	return acronymWordRe.ReplaceAllString(s, "$1 $2")
}

// Slug returns the lowercase, hyphenated form of an identifier. It is empty
// when the identifier has no letters or digits.
func Slug(identifier string) string {
	s := lowerUpperRe.ReplaceAllString(identifier, "$1-$2")
	s = strings.ReplaceAll(s, "_", "-")
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = nonSlugCharRe.ReplaceAllString(s, "-")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return strings.ToLower(s)
}

// SortIdentifiers orders identifiers alphabetically the way a locale-aware
// listing does: case is secondary, so "CaseConverter" sorts before
// "CSSMinifier" and "BinaryCalculator" before "BMICalculator".
func SortIdentifiers(ids []string) {
	collate.New(language.English).SortStrings(ids)
}
