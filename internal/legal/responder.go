package legal

import (
	"strings"

	"legalassist/internal/model"
)

// Source tells which branch produced a response.
type Source string

const (
	SourceTemplate  Source = "template"
	SourceKnowledge Source = "knowledge"
	SourceFallback  Source = "fallback"
)

// KnowledgeSearcher is the slice of the knowledge store the responder needs.
// An empty category means no category filter.
type KnowledgeSearcher interface {
	Search(keywords []string, category string) ([]model.LegalKnowledge, error)
}

type Response struct {
	Text        string   `json:"response"`
	Category    Category `json:"category"`
	Suggestions []string `json:"suggestions"`
	Source      Source   `json:"source"`
}

// Responder picks a templated, knowledge-based or fallback answer for a query.
type Responder struct {
	knowledge KnowledgeSearcher
}

func NewResponder(knowledge KnowledgeSearcher) *Responder {
	return &Responder{knowledge: knowledge}
}

// Respond never fails. A knowledge store error is treated as no match.
func (r *Responder) Respond(query string) Response {
	category := Classify(query)
	resp := Response{
		Category:    category,
		Suggestions: Suggestions(category),
	}

	if text, ok := matchTemplate(query); ok {
		resp.Text = text
		resp.Source = SourceTemplate
		return resp
	}

	if best, ok := r.searchBest(query, category); ok {
		resp.Text = FormatKnowledge(best.Question, best.Answer)
		resp.Source = SourceKnowledge
		return resp
	}

	resp.Text = FallbackResponse(category)
	resp.Source = SourceFallback
	return resp
}

func matchTemplate(query string) (string, bool) {
	text := FirstMatch(templateRules, strings.ToLower(query), "")
	return text, text != ""
}

func (r *Responder) searchBest(query string, category Category) (model.LegalKnowledge, bool) {
	if r.knowledge == nil {
		return model.LegalKnowledge{}, false
	}
	keywords := ExtractKeywords(query)
	if len(keywords) == 0 {
		return model.LegalKnowledge{}, false
	}

	filter := string(category)
	if category == General {
		filter = ""
	}
	matches, err := r.knowledge.Search(keywords, filter)
	if err != nil || len(matches) == 0 {
		return model.LegalKnowledge{}, false
	}
	return matches[0], true
}
