package legal

import (
	"regexp"
	"strings"
)

const maxKeywords = 10

var nonWord = regexp.MustCompile(`[^\w\s]`)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`the is at which on and a an as are was were been be
		have has had do does did can could should would may might will shall
		i you he she it we they me him her us them my your his its our their
		what when where why how who`) {
		stopWords[w] = struct{}{}
	}
}

// ExtractKeywords returns up to ten lower-cased tokens longer than two
// characters, stop words removed, in input order.
func ExtractKeywords(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	keywords := make([]string, 0, maxKeywords)
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// SplitSearchTerms tokenizes a raw search box query: whitespace split,
// lower-cased, tokens longer than two characters. Stop words are kept.
func SplitSearchTerms(q string) []string {
	var terms []string
	for _, word := range strings.Fields(strings.ToLower(q)) {
		if len(word) > 2 {
			terms = append(terms, word)
		}
	}
	return terms
}
