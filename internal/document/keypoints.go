package document

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`),
		regexp.MustCompile(`(?i)\d{1,2}(st|nd|rd|th)?\s+(january|february|march|april|may|june|july|august|september|october|november|december)`),
		regexp.MustCompile(`\d{4}[/\-]\d{1,2}[/\-]\d{1,2}`),
	}

	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`₹\s*\d+`),
		regexp.MustCompile(`(?i)rs\.?\s*\d+`),
		regexp.MustCompile(`(?i)rupees?\s+\d+`),
		regexp.MustCompile(`(?i)\d+\s*rupees?`),
		regexp.MustCompile(`(?i)\d+\s*lakhs?`),
		regexp.MustCompile(`(?i)\d+\s*crores?`),
	}

	namePattern = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+`)
)

const (
	minKeyPointLine = 10
	maxNameLine     = 100
)

type keyPointLine struct {
	text  string
	lower string
}

type detector struct {
	tag   string
	match func(line keyPointLine, docType string) bool
}

// Detectors run in this order on every line; a line is emitted once per
// detector it satisfies.
var detectors = []detector{
	{tag: "📅", match: func(l keyPointLine, _ string) bool { return anyPattern(datePatterns, l.text) }},
	{tag: "💰", match: func(l keyPointLine, _ string) bool { return anyPattern(amountPatterns, l.text) }},
	{tag: "👤", match: func(l keyPointLine, _ string) bool {
		return namePattern.MatchString(l.text) && utf8.RuneCountInString(l.text) < maxNameLine
	}},
	{tag: "🏠", match: func(l keyPointLine, _ string) bool {
		return containsAny(l.lower, "property", "address", "situated")
	}},
	{tag: "⚖️", match: func(l keyPointLine, _ string) bool {
		return containsAny(l.lower, "section", "act", "clause")
	}},
	{tag: "📋", match: func(l keyPointLine, docType string) bool {
		return docType == TypeSaleDeed && containsAny(l.lower, "consideration", "purchase")
	}},
	{tag: "🚨", match: func(l keyPointLine, docType string) bool {
		return docType == TypeFIR && containsAny(l.lower, "accused", "incident")
	}},
}

// ExtractKeyPoints tags informative lines of text. Lines are trimmed and must
// be longer than ten characters. At most eight points are returned; the same
// line may appear once per matching detector.
func ExtractKeyPoints(text, docType string) []string {
	points := make([]string, 0, maxKeyPoints)
	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if utf8.RuneCountInString(trimmed) <= minKeyPointLine {
			continue
		}
		line := keyPointLine{text: trimmed, lower: strings.ToLower(trimmed)}
		for _, d := range detectors {
			if !d.match(line, docType) {
				continue
			}
			points = append(points, d.tag+" "+line.text)
			if len(points) == maxKeyPoints {
				return points
			}
		}
	}
	return points
}

func anyPattern(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
