package knowledge

import (
	"sort"
	"strings"

	"legalassist/internal/model"
)

// Match filters records that belong to category (empty = any) and contain any
// keyword as a case-insensitive substring of their keywords, question or
// answer. The result is ordered by descending priority; equal priorities keep
// input order. Returned records do not share memory with records.
func Match(records []model.LegalKnowledge, keywords []string, category string) []model.LegalKnowledge {
	needles := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			needles = append(needles, kw)
		}
	}

	matched := make([]model.LegalKnowledge, 0)
	if len(needles) == 0 {
		return matched
	}
	for _, record := range records {
		if category != "" && record.Category != category {
			continue
		}
		if containsAnyKeyword(record, needles) {
			matched = append(matched, Clone(record))
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})
	return matched
}

// Clone copies a record including its keyword slice.
func Clone(record model.LegalKnowledge) model.LegalKnowledge {
	record.Keywords = append([]string(nil), record.Keywords...)
	return record
}

func containsAnyKeyword(record model.LegalKnowledge, needles []string) bool {
	question := strings.ToLower(record.Question)
	answer := strings.ToLower(record.Answer)
	for _, needle := range needles {
		for _, kw := range record.Keywords {
			if strings.Contains(strings.ToLower(kw), needle) {
				return true
			}
		}
		if strings.Contains(question, needle) || strings.Contains(answer, needle) {
			return true
		}
	}
	return false
}
