package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"time"

	"freetoolz-blueprint/internal/models"
)

const (
	xmlns      = "http://www.sitemaps.org/schemas/sitemap/0.9"
	dateLayout = "2006-01-02"

	highPriority = 0.9
	toolPriority = 0.8
)

// highPriorityCategories get indexed first.
var highPriorityCategories = map[string]struct{}{
	"Text Tools":  {},
	"Calculators": {},
	"Generators":  {},
	"PDF Tools":   {},
}

type StaticPage struct {
	Path       string  `yaml:"path" json:"path"`
	ChangeFreq string  `yaml:"changefreq" json:"changefreq"`
	Priority   float64 `yaml:"priority" json:"priority"`
}

func DefaultStaticPages() []StaticPage {
	return []StaticPage{
		{Path: "/", ChangeFreq: "daily", Priority: 1.0},
		{Path: "/about", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/blog", ChangeFreq: "weekly", Priority: 0.8},
		{Path: "/contact", ChangeFreq: "monthly", Priority: 0.6},
		{Path: "/privacy", ChangeFreq: "yearly", Priority: 0.4},
		{Path: "/terms", ChangeFreq: "yearly", Priority: 0.4},
		{Path: "/disclaimer", ChangeFreq: "yearly", Priority: 0.3},
		{Path: "/faq", ChangeFreq: "monthly", Priority: 0.7},
		{Path: "/sitemap", ChangeFreq: "weekly", Priority: 0.5},
	}
}

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Build lists static pages first, then every tool page. Tools in the
// high-priority categories come before the rest; order within a priority
// follows the records.
func Build(records []models.ContentRecord, static []StaticPage, baseURL string, date time.Time) URLSet {
	lastmod := date.Format(dateLayout)
	set := URLSet{Xmlns: xmlns, URLs: make([]URL, 0, len(static)+len(records))}

	for _, p := range static {
		set.URLs = append(set.URLs, URL{
			Loc:        baseURL + p.Path,
			LastMod:    lastmod,
			ChangeFreq: p.ChangeFreq,
			Priority:   formatPriority(p.Priority),
		})
	}

	type toolEntry struct {
		loc      string
		priority float64
	}
	tools := make([]toolEntry, 0, len(records))
	for _, r := range records {
		p := toolPriority
		if _, ok := highPriorityCategories[r.Category]; ok {
			p = highPriority
		}
		tools = append(tools, toolEntry{loc: baseURL + models.ToolPath(r.Slug), priority: p})
	}
	sort.SliceStable(tools, func(i, j int) bool { return tools[i].priority > tools[j].priority })

	for _, t := range tools {
		set.URLs = append(set.URLs, URL{
			Loc:        t.loc,
			LastMod:    lastmod,
			ChangeFreq: "weekly",
			Priority:   formatPriority(t.priority),
		})
	}
	return set
}

// Write encodes the set as an indented XML document.
func (s URLSet) Write(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(s); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func formatPriority(p float64) string { return fmt.Sprintf("%.2f", p) }
