package composer

import (
	"fmt"
	"strings"

	"freetoolz-blueprint/internal/models"
	"freetoolz-blueprint/internal/seed"
)

const (
	paaCount     = 4
	useCaseCount = 3
)

var (
	adjectives = []string{"lightweight", "enterprise-ready", "privacy-first", "high-performance"}

	paaOpeners = []string{
		"How do I",
		"What makes it easy to",
		"Can I securely",
		"What is the fastest way to",
	}

	useCaseOpeners = []string{"Marketing teams", "Product squads", "Consultants", "Agencies", "Students", "Engineers", "Founders"}

	paragraphIntros = []string{
		"Built for modern workflows,",
		"Designed with on-page clarity in mind,",
		"Grounded in real product feedback,",
		"Obsessed with frictionless productivity,",
	}

	paragraphConnectors = []string{
		"It translates complex actions into two-click flows",
		"Every interaction is optimized for minimum cognitive load",
		"Live validation keeps errors from ever reaching production",
		"Accessible design patterns keep the UI inclusive",
	}
)

// Input is everything the composer needs for one tool. Composition reads
// nothing else: no clock, no randomness, no I/O.
type Input struct {
	Name    string
	Slug    string
	Profile models.CategoryProfile
	Intent  models.Intent
	Seed    int
}

type Composer struct {
	site models.Site
}

func New(site models.Site) *Composer { return &Composer{site: site} }

// Compose builds every text field of a record. Rating, Schema and
// InternalLinks are left for later stages.
func (c *Composer) Compose(in Input) models.ContentRecord {
	name, intent := in.Name, in.Intent
	category := in.Profile.Name
	brand := c.site.Brand
	lead := intent.Persona
	if len(in.Profile.Audience) > 0 {
		lead = in.Profile.Audience[0]
	}

	return models.ContentRecord{
		Tool:            name,
		Slug:            in.Slug,
		Category:        category,
		URL:             c.site.BaseURL + models.ToolPath(in.Slug),
		TitleTag:        fmt.Sprintf("%s | Free %s Tool by %s", name, singular(category), brand),
		MetaDescription: fmt.Sprintf("%s helps %s %s in seconds. Free, private, and tuned for %s.", name, lead, intent.Verb, intent.Persona),
		H1:              name,
		H2: []string{
			fmt.Sprintf("How %s Works", name),
			fmt.Sprintf("%s Features", name),
			fmt.Sprintf("%s Use Cases", name),
			"Step-by-step instructions",
			"Expert guidance",
		},
		Content:              c.Paragraphs(in),
		Features:             Features(intent),
		UseCases:             UseCases(name, category, in.Seed),
		Steps:                c.Steps(name, intent),
		Keywords:             BuildKeywords(name, intent),
		PAA:                  PeopleAlsoAsk(name, intent, in.Seed),
		FAQ:                  c.FAQ(name, intent),
		CTA:                  fmt.Sprintf("Launch %s now", name),
		DirectAnswer:         fmt.Sprintf("%s lets you %s inside %s with %s and zero installs.", name, intent.Verb, brand, intent.Outcome),
		SnippetAnswer:        fmt.Sprintf("Open %s, add your data, adjust presets, and export %s in under a minute.", name, intent.Outcome),
		ConversationalAnswer: fmt.Sprintf("%s lives inside %s, so I can walk you through the %s steps, highlight key settings, and share reusable presets.", name, brand, intent.Verb),
		VoiceAnswer:          fmt.Sprintf("Open %s %s, add your info, choose the preset, and your %s result is ready for sharing.", brand, name, intent.Verb),
		ImageAlt:             fmt.Sprintf("Screenshot of the %s interface on %s", name, brand),
	}
}

// Paragraphs always returns five paragraphs.
func (c *Composer) Paragraphs(in Input) []string {
	name, intent, s := in.Name, in.Intent, in.Seed
	adjective := seed.Pick(adjectives, s, 0)
	brand := c.site.Brand
	audience := intent.Persona
	if len(in.Profile.Audience) > 0 {
		audience = seed.Pick(in.Profile.Audience, s, 0)
	}

	return []string{
		fmt.Sprintf("%s is %s %s %s that helps %s %s without friction. It keeps work in the browser, preserves privacy, and %s.",
			name, article(adjective), adjective, strings.ToLower(singular(in.Profile.Name)), audience, intent.Verb, intent.Benefit),
		fmt.Sprintf("%s %s pairs thoughtful UI states with realtime guidance so %s can %s. %s while autosaving context for later.",
			seed.Pick(paragraphIntros, s, 0), brand, intent.Persona, intent.Hook, seed.Pick(paragraphConnectors, s, 0)),
		fmt.Sprintf("Across distributed teams, %s provides structured inputs, contextual helper text, and semantic color cues so teammates can %s. It supports keyboard-first control, WCAG AA color contrast, and responsive layouts for tablet-friendly reviews.",
			name, intent.Outcome),
		fmt.Sprintf("Need governance? Granular tooltips explain why results matter, plus inline docs link to %s for deeper dives. Pair it with the %s/categories/%s hub to discover adjacent utilities and extend your stack.",
			in.Profile.Blog, c.site.BaseURL, in.Profile.Slug),
		fmt.Sprintf("Because %s ships updates weekly, %s inherits the latest performance wins, localization improvements, and structured data markup for featured snippets. %s",
			brand, name, seed.Pick(c.closingCTAs(), s, 0)),
	}
}

func (c *Composer) closingCTAs() []string {
	return []string{
		"Launch it now and keep momentum high.",
		"Open the tool to power your next delivery.",
		"Drop it into your daily toolkit today.",
		fmt.Sprintf("Ship confidently with %s at your side.", c.site.Brand),
	}
}

func BuildKeywords(name string, intent models.Intent) models.Keywords {
	base := strings.ToLower(name)
	return models.Keywords{
		Primary:   base + " online",
		Secondary: []string{"best " + base, base + " tool", base + " free"},
		LSI:       []string{intent.Verb + " workflow", intent.Outcome, intent.Hook},
	}
}

// PeopleAlsoAsk offsets the opener pick by the item index so the questions
// differ from one another.
func PeopleAlsoAsk(name string, intent models.Intent, s int) []models.QA {
	out := make([]models.QA, 0, paaCount)
	for i := 0; i < paaCount; i++ {
		out = append(out, models.QA{
			Question: fmt.Sprintf("%s %s with %s?", seed.Pick(paaOpeners, s, i), intent.Verb, name),
			Answer:   fmt.Sprintf("%s lets you %s inside the browser: open the tool, drop your data, watch live validation, then export confident, %s.", name, intent.Verb, intent.Outcome),
		})
	}
	return out
}

func (c *Composer) FAQ(name string, intent models.Intent) []models.QA {
	brand := c.site.Brand
	return []models.QA{
		{
			Question: fmt.Sprintf("What makes %s reliable?", name),
			Answer:   fmt.Sprintf("%s runs entirely client-side on %s so nothing sensitive leaves your device, while smart defaults and validation guardrails %s.", name, brand, intent.Hook),
		},
		{
			Question: fmt.Sprintf("Can teams collaborate with %s?", name),
			Answer:   fmt.Sprintf("Yes. Saved presets, sharable URLs, and consistent UI copy let teammates replicate your exact %s workflow and review results quickly.", intent.Verb),
		},
		{
			Question: fmt.Sprintf("Is %s free forever?", name),
			Answer:   fmt.Sprintf("Every %s utility, including %s, stays 100%% free with no accounts while we finance development through premium partnerships and enterprise support.", brand, name),
		},
		{
			Question: fmt.Sprintf("Does %s work on mobile?", name),
			Answer:   fmt.Sprintf("The responsive layout and adaptive inputs keep %s fast on tablets and phones, so you can ship updates even when away from your desk.", name),
		},
		{
			Question: fmt.Sprintf("How accurate is %s?", name),
			Answer:   fmt.Sprintf("We unit test calculation logic, run regression monitors, and benchmark against industry formulas so %s remains trustworthy for professional work.", name),
		},
		{
			Question: fmt.Sprintf("Can I embed %s?", name),
			Answer:   fmt.Sprintf("Enterprise plans unlock lightweight embeds and white-label modes so teams can drop %s into intranets or knowledge bases.", name),
		},
	}
}

func (c *Composer) Steps(name string, intent models.Intent) []string {
	return []string{
		fmt.Sprintf("Launch %s at %s and skim the preset guidance banner.", name, c.site.Brand),
		fmt.Sprintf("Paste, upload, or key in the data you want to %s.", intent.Verb),
		"Toggle expert options to fine-tune accuracy, localization, or formatting.",
		"Review instant results, copy them, or download structured exports for your stakeholders.",
	}
}

func UseCases(name, category string, s int) []string {
	out := make([]string, 0, useCaseCount)
	for i := 0; i < useCaseCount; i++ {
		out = append(out, fmt.Sprintf("%s rely on %s to unblock %s requests in seconds.", seed.Pick(useCaseOpeners, s, i), name, strings.ToLower(category)))
	}
	return out
}

func Features(intent models.Intent) []string {
	return []string{
		fmt.Sprintf("Realtime validation surfaces edge cases before you %s.", intent.Verb),
		fmt.Sprintf("Preset templates tuned for the most common %s scenarios.", intent.Verb),
		fmt.Sprintf("Privacy-first execution keeps every %s step on your machine.", intent.Verb),
	}
}

// singular drops the trailing letter of a plural category name:
// "Calculators" -> "Calculator", "Text Tools" -> "Text Tool".
func singular(category string) string {
	if category == "" {
		return ""
	}
	return category[:len(category)-1]
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiouAEIOU", rune(word[0])) {
		return "an"
	}
	return "a"
}
