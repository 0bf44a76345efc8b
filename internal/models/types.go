package models

// CategoryProfile is the static configuration attached to a category.
type CategoryProfile struct {
	Name                string   `json:"name" yaml:"name"`
	Slug                string   `json:"slug" yaml:"slug"`
	Audience            []string `json:"audience" yaml:"audience"`
	Blog                string   `json:"blog" yaml:"blog"`
	ApplicationCategory string   `json:"applicationCategory" yaml:"application_category"`
}

// Intent is the communicative angle used when composing copy for a tool.
type Intent struct {
	Verb    string `json:"verb" yaml:"verb"`
	Outcome string `json:"outcome" yaml:"outcome"`
	Benefit string `json:"benefit" yaml:"benefit"`
	Persona string `json:"persona" yaml:"persona"`
	Hook    string `json:"hook" yaml:"hook"`
}

type Keywords struct {
	Primary   string   `json:"primary"`
	Secondary []string `json:"secondary"`
	LSI       []string `json:"lsi"`
}

type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Rating value is kept as a two-decimal string, e.g. "4.87".
type Rating struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Logo string `json:"logo"`
}

type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	RatingCount int    `json:"ratingCount"`
}

type SoftwareApplication struct {
	Context             string          `json:"@context"`
	Type                string          `json:"@type"`
	Name                string          `json:"name"`
	ApplicationCategory string          `json:"applicationCategory"`
	OperatingSystem     string          `json:"operatingSystem"`
	URL                 string          `json:"url"`
	Description         string          `json:"description"`
	Offers              Offer           `json:"offers"`
	Publisher           Organization    `json:"publisher"`
	AggregateRating     AggregateRating `json:"aggregateRating"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

type Schema struct {
	SoftwareApplication SoftwareApplication `json:"softwareApplication"`
	FAQ                 FAQPage             `json:"faq"`
}

// ContentRecord is the full content bundle for one tool. InternalLinks is
// filled by a second pass once every record exists.
type ContentRecord struct {
	Tool                 string   `json:"tool"`
	Slug                 string   `json:"slug"`
	Category             string   `json:"category"`
	URL                  string   `json:"url"`
	TitleTag             string   `json:"titleTag"`
	MetaDescription      string   `json:"metaDescription"`
	H1                   string   `json:"h1"`
	H2                   []string `json:"h2"`
	Content              []string `json:"content"`
	Features             []string `json:"features"`
	UseCases             []string `json:"useCases"`
	Steps                []string `json:"steps"`
	Keywords             Keywords `json:"keywords"`
	PAA                  []QA     `json:"paa"`
	FAQ                  []QA     `json:"faq"`
	CTA                  string   `json:"cta"`
	DirectAnswer         string   `json:"directAnswer"`
	SnippetAnswer        string   `json:"snippetAnswer"`
	ConversationalAnswer string   `json:"conversationalAnswer"`
	VoiceAnswer          string   `json:"voiceAnswer"`
	ImageAlt             string   `json:"imageAlt"`
	Rating               Rating   `json:"rating"`
	Schema               Schema   `json:"schema"`
	InternalLinks        []string `json:"internalLinks"`
}

// Site identifies the brand every record is published under.
type Site struct {
	BaseURL  string `json:"baseUrl" yaml:"base_url"`
	Brand    string `json:"brand" yaml:"brand"`
	LogoPath string `json:"logoPath" yaml:"logo_path"`
}

// ToolPath is the site-relative path of a tool page.
func ToolPath(slug string) string { return "/tools/" + slug }

// Meta holds the head-level fields the parser extracts from a rendered page.
type Meta struct {
	Title          string            `json:"title,omitempty"`
	Description    string            `json:"description,omitempty"`
	Keywords       []string          `json:"keywords,omitempty"`
	OG             map[string]string `json:"og,omitempty"`
	Canonical      string            `json:"canonical,omitempty"`
	H1             string            `json:"h1,omitempty"`
	H2             []string          `json:"h2,omitempty"`
	StructuredData []string          `json:"structuredData,omitempty"`
}

type Content struct {
	Text      string   `json:"text,omitempty"`
	WordCount int      `json:"wordCount,omitempty"`
	Language  string   `json:"language,omitempty"`
	Headings  []string `json:"headings,omitempty"`
	Links     []string `json:"links,omitempty"`
}

type Page struct {
	Meta    Meta    `json:"meta"`
	Content Content `json:"content"`
}
