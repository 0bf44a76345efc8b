package catalog

import "freetoolz-blueprint/internal/models"

const FallbackCategory = "Utility Tools"

// Default returns the built-in catalog. Each call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Categories: []models.CategoryProfile{
			{
				Name:                "Text Tools",
				Slug:                "text-tools",
				Audience:            []string{"content teams", "UX writers", "students", "support specialists"},
				Blog:                "/blog/text-optimization-playbook",
				ApplicationCategory: "ProductivityApplication",
			},
			{
				Name:                "Calculators",
				Slug:                "calculators",
				Audience:            []string{"analysts", "operators", "finance leads", "founders"},
				Blog:                "/blog/calculator-usage-scenarios",
				ApplicationCategory: "FinancialApplication",
			},
			{
				Name:                "Generators",
				Slug:                "generators",
				Audience:            []string{"marketers", "engineers", "creators", "automation pros"},
				Blog:                "/blog/growth-with-generators",
				ApplicationCategory: "DeveloperApplication",
			},
			{
				Name:                "Converters",
				Slug:                "converters",
				Audience:            []string{"data teams", "ops managers", "devs", "agencies"},
				Blog:                "/blog/data-conversion-best-practices",
				ApplicationCategory: "UtilitiesApplication",
			},
			{
				Name:                "Developer Tools",
				Slug:                "developer-tools",
				Audience:            []string{"frontend teams", "QA engineers", "dev advocates", "platform leads"},
				Blog:                "/blog/devtoolkit-automation",
				ApplicationCategory: "DeveloperApplication",
			},
			{
				Name:                "PDF Tools",
				Slug:                "pdf-tools",
				Audience:            []string{"legal teams", "ops managers", "educators", "agency partners"},
				Blog:                "/blog/pdf-automation-guide",
				ApplicationCategory: "UtilitiesApplication",
			},
			{
				Name:                "Image Tools",
				Slug:                "image-tools",
				Audience:            []string{"designers", "brand leads", "photographers", "content studios"},
				Blog:                "/blog/image-optimization-guide",
				ApplicationCategory: "MultimediaApplication",
			},
			{
				Name:                "Utility Tools",
				Slug:                "utility-tools",
				Audience:            []string{"ops teams", "productivity hackers", "admins", "founders"},
				Blog:                "/blog/automation-utilities-stack",
				ApplicationCategory: "UtilitiesApplication",
			},
			{
				Name:                "Security & SEO Tools",
				Slug:                "security-seo-tools",
				Audience:            []string{"SEO managers", "security leads", "compliance teams", "consultants"},
				Blog:                "/blog/seo-security-roadmap",
				ApplicationCategory: "SecurityApplication",
			},
		},
		CategoryRules: []CategoryRule{
			{Keywords: []string{"PDF"}, Category: "PDF Tools"},
			{Keywords: []string{"Image", "Color", "SVG"}, Category: "Image Tools"},
			{Keywords: []string{"SEO", "Sitemap", "Robots", "Meta", "PWNED", "Security", "Hash"}, Category: "Security & SEO Tools"},
			{Keywords: []string{"Calculator", "Calc", "Interest", "Loan", "Tip", "Discount", "Percentage", "Fuel", "Energy", "GPA", "BMI", "BusinessDays", "TimeZone", "WorkingHours"}, Category: "Calculators"},
			{Keywords: []string{"Generator", "Picker", "UUID", "Lorem", "FakeData", "Password", "QRCode", "Random"}, Category: "Generators"},
			{Keywords: []string{"Converter", "Encoding", "Encoder", "Decoder", "Slug"}, Category: "Converters"},
			{Keywords: []string{"Tester", "Validator", "Inspector", "Minifier", "Formatter", "Analyzer", "Diff", "CORS", "Cookie", "Console", "Regex", "Dataset", "Header"}, Category: "Developer Tools"},
			{Keywords: []string{"Text", "Word", "Letter", "Sentence", "Line", "ASCII", "Lorem", "Readability", "Smart", "Splitter", "Counter", "Replace", "Reverser", "Randomizer"}, Category: "Text Tools"},
			{Keywords: []string{"Timer", "Stopwatch", "Clipboard", "Zone", "Hours"}, Category: "Utility Tools"},
		},
		FallbackCategory: FallbackCategory,
		IntentRules: []IntentRule{
			{
				Keywords: []string{"Calculator", "Calc"},
				Intent: models.Intent{
					Verb:    "calculate",
					Outcome: "precise answers",
					Benefit: "surface ready-to-share results",
					Persona: "analysts and operators",
					Hook:    "eliminate spreadsheet guesswork",
				},
			},
			{
				Keywords: []string{"Converter", "Encoder", "Decoder", "Slug", "Diff"},
				Intent: models.Intent{
					Verb:    "convert",
					Outcome: "clean outputs",
					Benefit: "respect every edge case",
					Persona: "developers and content teams",
					Hook:    "stay consistent across formats",
				},
			},
			{
				Keywords: []string{"Generator", "Picker", "Random", "UUID", "QRCode", "Lorem", "FakeData", "Password"},
				Intent: models.Intent{
					Verb:    "generate",
					Outcome: "studio-grade assets",
					Benefit: "ship deliverables faster",
					Persona: "marketers and makers",
					Hook:    "ditch manual prompts",
				},
			},
			{
				Keywords: []string{"Compressor", "Minifier", "Optimizer", "Resizer", "Cleaner", "Extractor", "Splitter", "Merger"},
				Intent: models.Intent{
					Verb:    "optimize",
					Outcome: "lean, compliant files",
					Benefit: "keep experiences fast",
					Persona: "performance-minded teams",
					Hook:    "protect page speed scores",
				},
			},
			{
				Keywords: []string{"Tester", "Validator", "Inspector", "Checker", "Analyzer"},
				Intent: models.Intent{
					Verb:    "audit",
					Outcome: "pass every QA gate",
					Benefit: "trust instant diagnostics",
					Persona: "QA and SEO pros",
					Hook:    "spot regressions before launch",
				},
			},
		},
		FallbackIntent: models.Intent{
			Verb:    "optimize",
			Outcome: "fast decisions",
			Benefit: "stay consistent across teams",
			Persona: "busy operators",
			Hook:    "keep every workflow aligned",
		},
	}
}
