package schema

import (
	"freetoolz-blueprint/internal/models"
)

const schemaContext = "https://schema.org"

// Emit builds the SoftwareApplication and FAQPage documents for a record.
// FAQ entries map 1:1, in order, onto FAQPage questions.
func Emit(rec models.ContentRecord, faq []models.QA, profile models.CategoryProfile, site models.Site) models.Schema {
	return models.Schema{
		SoftwareApplication: models.SoftwareApplication{
			Context:             schemaContext,
			Type:                "SoftwareApplication",
			Name:                rec.Tool,
			ApplicationCategory: profile.ApplicationCategory,
			OperatingSystem:     "Web",
			URL:                 rec.URL,
			Description:         rec.MetaDescription,
			Offers: models.Offer{
				Type:          "Offer",
				Price:         "0",
				PriceCurrency: "USD",
			},
			Publisher: models.Organization{
				Type: "Organization",
				Name: site.Brand,
				URL:  site.BaseURL,
				Logo: site.BaseURL + site.LogoPath,
			},
			AggregateRating: models.AggregateRating{
				Type:        "AggregateRating",
				RatingValue: rec.Rating.Value,
				RatingCount: rec.Rating.Count,
			},
		},
		FAQ: FAQPage(faq),
	}
}

func FAQPage(faq []models.QA) models.FAQPage {
	questions := make([]models.Question, 0, len(faq))
	for _, qa := range faq {
		questions = append(questions, models.Question{
			Type: "Question",
			Name: qa.Question,
			AcceptedAnswer: models.Answer{
				Type: "Answer",
				Text: qa.Answer,
			},
		})
	}
	return models.FAQPage{
		Context:    schemaContext,
		Type:       "FAQPage",
		MainEntity: questions,
	}
}
