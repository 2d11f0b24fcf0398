package collections

import "encoding/json"

// FAQPage is the schema.org FAQPage structured-data document.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is one schema.org Question entry.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is a schema.org Answer.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// FAQSchema mirrors the collection's FAQ as structured data.
func FAQSchema(cfg Config) FAQPage {
	page := FAQPage{
		Context:    "https://schema.org",
		Type:       "FAQPage",
		MainEntity: make([]Question, 0, len(cfg.FAQ)),
	}
	for _, f := range cfg.FAQ {
		page.MainEntity = append(page.MainEntity, Question{
			Type:           "Question",
			Name:           f.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: f.Answer},
		})
	}
	return page
}

// FAQJSON is FAQSchema encoded for a <script type="application/ld+json"> block.
func FAQJSON(cfg Config) ([]byte, error) {
	return json.Marshal(FAQSchema(cfg))
}
