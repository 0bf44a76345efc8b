package prerender

import (
	"html/template"
	"io"
	"path/filepath"
	"strings"

	"freetoolz-blueprint/internal/ioformats"
	"freetoolz-blueprint/internal/models"
)

const robotsContent = "index, follow, max-snippet:-1, max-image-preview:large, max-video-preview:-1"

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Record.TitleTag}}</title>
  <meta name="title" content="{{.Record.TitleTag}}">
  <meta name="description" content="{{.Record.MetaDescription}}">
  <meta name="keywords" content="{{.Keywords}}">
  <meta name="robots" content="{{.Robots}}">
  <link rel="canonical" href="{{.Record.URL}}">
  <meta property="og:type" content="website">
  <meta property="og:url" content="{{.Record.URL}}">
  <meta property="og:title" content="{{.Record.TitleTag}}">
  <meta property="og:description" content="{{.Record.MetaDescription}}">
  <meta property="og:image" content="{{.Logo}}">
  <meta property="og:image:alt" content="{{.Record.ImageAlt}}">
  <meta property="og:site_name" content="{{.Site.Brand}}">
  <meta property="og:locale" content="en_US">
  <meta name="twitter:card" content="summary_large_image">
  <meta name="twitter:url" content="{{.Record.URL}}">
  <meta name="twitter:title" content="{{.Record.TitleTag}}">
  <meta name="twitter:description" content="{{.Record.MetaDescription}}">
  <script type="application/ld+json">{{.Record.Schema.SoftwareApplication}}</script>
  <script type="application/ld+json">{{.Record.Schema.FAQ}}</script>
</head>
<body>
  <main>
    <h1>{{.Record.H1}}</h1>
    <p>{{.Record.DirectAnswer}}</p>
    {{- range $i, $h := .Record.H2}}
    <section>
      <h2>{{$h}}</h2>
      {{- if eq $i 0}}{{range $.Record.Content}}
      <p>{{.}}</p>{{end}}{{end}}
      {{- if eq $i 1}}
      <ul>{{range $.Record.Features}}
        <li>{{.}}</li>{{end}}
      </ul>{{end}}
      {{- if eq $i 2}}
      <ul>{{range $.Record.UseCases}}
        <li>{{.}}</li>{{end}}
      </ul>{{end}}
      {{- if eq $i 3}}
      <ol>{{range $.Record.Steps}}
        <li>{{.}}</li>{{end}}
      </ol>{{end}}
      {{- if eq $i 4}}{{range $.Record.PAA}}
      <h3>{{.Question}}</h3>
      <p>{{.Answer}}</p>{{end}}{{end}}
    </section>
    {{- end}}
    <section>
      <h2>Frequently asked questions</h2>
      {{- range .Record.FAQ}}
      <h3>{{.Question}}</h3>
      <p>{{.Answer}}</p>
      {{- end}}
    </section>
    <nav>
      <ul>{{range .Record.InternalLinks}}
        <li><a href="{{.}}">{{.}}</a></li>{{end}}
      </ul>
    </nav>
    <a href="{{.Record.URL}}">{{.Record.CTA}}</a>
  </main>
</body>
</html>
`))

type pageData struct {
	Record   models.ContentRecord
	Site     models.Site
	Keywords string
	Robots   string
	Logo     string
}

// Render writes the static HTML page for one record.
func Render(w io.Writer, rec models.ContentRecord, site models.Site) error {
	kw := append([]string{rec.Keywords.Primary}, rec.Keywords.Secondary...)
	return pageTmpl.Execute(w, pageData{
		Record:   rec,
		Site:     site,
		Keywords: strings.Join(kw, ", "),
		Robots:   robotsContent,
		Logo:     site.BaseURL + site.LogoPath,
	})
}

// PagePath is where the page for slug lives under dir.
func PagePath(dir, slug string) string {
	return filepath.Join(dir, "tools", slug, "index.html")
}

// WriteAll renders every record to dir/tools/<slug>/index.html. Records
// with an empty slug are skipped since they have no page of their own. It
// returns the number of pages written.
func WriteAll(dir string, records []models.ContentRecord, site models.Site) (int, error) {
	n := 0
	for _, rec := range records {
		if rec.Slug == "" {
			continue
		}
		rec := rec
		if _, err := ioformats.WriteFile(PagePath(dir, rec.Slug), func(w io.Writer) error {
			return Render(w, rec, site)
		}); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
