package legal

import "strings"

var queryRules = []Rule[Category]{
	{
		Result: Property,
		Match: ContainsAny(
			"property", "registration", "stamp duty", "registry", "land", "house", "apartment",
			"real estate", "deed", "title", "ownership", "possession", "sale deed", "lease",
			"rent", "tenant", "landlord", "eviction", "mortgage", "plot", "builder",
		),
	},
	{
		Result: Criminal,
		Match: ContainsAny(
			"fir", "police", "criminal", "theft", "assault", "crime", "arrest", "bail",
			"investigation", "court", "judge", "lawyer", "advocate", "case", "complaint",
			"fraud", "cheating", "dowry", "domestic violence", "murder", "robbery",
		),
	},
	{
		Result: Family,
		Match: ContainsAny(
			"divorce", "marriage", "custody", "maintenance", "alimony", "family",
			"child", "adoption", "guardian", "wife", "husband", "separation",
			"dowry", "wedding", "matrimonial", "inheritance", "succession",
		),
	},
	{
		Result: Civil,
		Match: ContainsAny(
			"contract", "agreement", "breach", "civil", "damages", "compensation",
			"suit", "litigation", "dispute", "injunction", "specific performance",
			"partnership", "company", "business", "employment", "labor",
		),
	},
	{
		Result: Consumer,
		Match: ContainsAny(
			"consumer", "complaint", "deficiency", "service", "goods", "product",
			"warranty", "guarantee", "refund", "exchange", "forum", "commission",
			"redressal", "defective", "quality", "price", "overcharge",
		),
	},
}

// Classify maps free text to a category. Empty or unmatched text is General.
func Classify(query string) Category {
	return FirstMatch(queryRules, strings.ToLower(query), General)
}
