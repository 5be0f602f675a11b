package legal

import "strings"

// Matcher reports whether already lower-cased text satisfies a rule.
type Matcher func(text string) bool

// Rule pairs a predicate with the value it resolves to.
type Rule[T any] struct {
	Match  Matcher
	Result T
}

// FirstMatch evaluates rules in order and returns the result of the first one
// that matches. Rule order is the tie-break policy.
func FirstMatch[T any](rules []Rule[T], text string, fallback T) T {
	for _, rule := range rules {
		if rule.Match(text) {
			return rule.Result
		}
	}
	return fallback
}

// ContainsAny matches when any keyword is a substring of the text.
func ContainsAny(keywords ...string) Matcher {
	return func(text string) bool {
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				return true
			}
		}
		return false
	}
}

// AllOf matches when every matcher matches.
func AllOf(matchers ...Matcher) Matcher {
	return func(text string) bool {
		for _, m := range matchers {
			if !m(text) {
				return false
			}
		}
		return true
	}
}

// AnyOf matches when at least one matcher matches.
func AnyOf(matchers ...Matcher) Matcher {
	return func(text string) bool {
		for _, m := range matchers {
			if m(text) {
				return true
			}
		}
		return false
	}
}
