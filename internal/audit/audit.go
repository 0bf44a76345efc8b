package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"freetoolz-blueprint/internal/classifier"
	"freetoolz-blueprint/internal/models"
	"freetoolz-blueprint/internal/parser"
	"freetoolz-blueprint/internal/prerender"
)

const (
	maxTitleLen       = 60
	maxDescriptionLen = 160
	topicCount        = 10
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Issue struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
}

type Report struct {
	Slug   string   `json:"slug"`
	Issues []Issue  `json:"issues,omitempty"`
	Topics []string `json:"topics,omitempty"`
}

// Errors counts the issues with error severity.
func (r Report) Errors() int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			n++
		}
	}
	return n
}

type Auditor struct {
	parser     *parser.Parser
	classifier *classifier.Classifier
}

func New(p *parser.Parser, cl *classifier.Classifier) *Auditor {
	return &Auditor{parser: p, classifier: cl}
}

// Check compares a parsed page with the record it was rendered from.
func (a *Auditor) Check(rec models.ContentRecord, page models.Page) Report {
	rep := Report{Slug: rec.Slug}
	add := func(sev Severity, field, format string, args ...any) {
		rep.Issues = append(rep.Issues, Issue{Severity: sev, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if page.Meta.Title != rec.TitleTag {
		add(SeverityError, "title", "got %q, want %q", page.Meta.Title, rec.TitleTag)
	}
	if n := utf8.RuneCountInString(rec.TitleTag); n > maxTitleLen {
		add(SeverityWarning, "title", "%d characters, search results truncate after %d", n, maxTitleLen)
	}
	if page.Meta.Description != rec.MetaDescription {
		add(SeverityError, "description", "got %q, want %q", page.Meta.Description, rec.MetaDescription)
	}
	if n := utf8.RuneCountInString(rec.MetaDescription); n > maxDescriptionLen {
		add(SeverityWarning, "description", "%d characters, search results truncate after %d", n, maxDescriptionLen)
	}
	if page.Meta.Canonical != rec.URL {
		add(SeverityError, "canonical", "got %q, want %q", page.Meta.Canonical, rec.URL)
	}
	if page.Meta.H1 != rec.H1 {
		add(SeverityError, "h1", "got %q, want %q", page.Meta.H1, rec.H1)
	}
	if !hasPrefix(page.Meta.H2, rec.H2) {
		add(SeverityError, "h2", "headings %q do not start with %q", page.Meta.H2, rec.H2)
	}

	a.checkStructuredData(rec, page.Meta.StructuredData, add)

	links := map[string]struct{}{}
	for _, l := range page.Content.Links {
		links[l] = struct{}{}
	}
	for _, l := range rec.InternalLinks {
		if _, ok := links[l]; !ok {
			add(SeverityError, "internalLinks", "page does not link to %s", l)
		}
	}

	text := strings.ToLower(page.Content.Text)
	if name := strings.ToLower(rec.Tool); name != "" && !strings.Contains(text, name) {
		add(SeverityWarning, "keywords", "body text never mentions %q", name)
	}

	rep.Topics = a.classifier.TopTopics(page.Content.Text, topicCount)
	return rep
}

func (a *Auditor) checkStructuredData(rec models.ContentRecord, blocks []string, add func(Severity, string, string, ...any)) {
	var sawApp, sawFAQ bool
	for _, block := range blocks {
		var head struct {
			Type string `json:"@type"`
		}
		if err := json.Unmarshal([]byte(block), &head); err != nil {
			add(SeverityError, "structuredData", "invalid JSON-LD: %v", err)
			continue
		}
		switch head.Type {
		case "SoftwareApplication":
			sawApp = true
		case "FAQPage":
			sawFAQ = true
			var faq models.FAQPage
			if err := json.Unmarshal([]byte(block), &faq); err != nil {
				add(SeverityError, "structuredData", "invalid FAQPage: %v", err)
				continue
			}
			if len(faq.MainEntity) != len(rec.FAQ) {
				add(SeverityError, "structuredData", "FAQPage has %d questions, record has %d", len(faq.MainEntity), len(rec.FAQ))
				continue
			}
			for i, q := range faq.MainEntity {
				if q.Name != rec.FAQ[i].Question {
					add(SeverityError, "structuredData", "FAQPage question %d is %q, want %q", i, q.Name, rec.FAQ[i].Question)
				}
			}
		}
	}
	if !sawApp {
		add(SeverityError, "structuredData", "missing SoftwareApplication")
	}
	if !sawFAQ {
		add(SeverityError, "structuredData", "missing FAQPage")
	}
}

// CheckDir audits the prerendered page of every record under dir.
func (a *Auditor) CheckDir(dir string, records []models.ContentRecord) ([]Report, error) {
	reports := make([]Report, 0, len(records))
	for _, rec := range records {
		if rec.Slug == "" {
			continue
		}
		f, err := os.Open(prerender.PagePath(dir, rec.Slug))
		if err != nil {
			return nil, err
		}
		page, err := a.parser.Extract(f, "text/html; charset=utf-8")
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", rec.Slug, err)
		}
		reports = append(reports, a.Check(rec, page))
	}
	return reports, nil
}

func hasPrefix(got, want []string) bool {
	if len(got) < len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
