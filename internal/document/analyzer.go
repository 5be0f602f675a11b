package document

import (
	"strings"

	"legalassist/internal/legal"
)

// Document type labels.
const (
	TypeSaleDeed               = "Sale Deed"
	TypeLeaseAgreement         = "Lease Agreement"
	TypePowerOfAttorney        = "Power of Attorney"
	TypeLegalNotice            = "Legal Notice"
	TypeFIR                    = "FIR"
	TypeConsumerComplaint      = "Consumer Complaint"
	TypeContract               = "Contract/Agreement"
	TypeEmploymentAgreement    = "Employment Agreement"
	TypeCourtPetition          = "Court Petition"
	TypeCourtOrder             = "Court Order/Judgment"
	TypeDivorcePetition        = "Divorce Petition"
	TypeMaintenanceApplication = "Maintenance Application"
	TypeGeneric                = "Legal Document"
)

const maxKeyPoints = 8

// Analysis is the result of classifying extracted document text.
type Analysis struct {
	DocumentType string         `json:"documentType"`
	LegalArea    legal.Category `json:"legalArea"`
	KeyPoints    []string       `json:"keyPoints"`
	Summary      string         `json:"summary"`
}

// TypeRules resolves the document type. The first matching rule wins.
var TypeRules = []legal.Rule[string]{
	{Result: TypeSaleDeed, Match: legal.ContainsAny("sale deed", "purchase deed", "conveyance deed")},
	{Result: TypeLeaseAgreement, Match: legal.ContainsAny("lease deed", "rent agreement", "rental agreement")},
	{Result: TypePowerOfAttorney, Match: legal.ContainsAny("power of attorney", "poa")},
	{Result: TypeLegalNotice, Match: legal.ContainsAny("legal notice", "notice under", "hereby give notice")},
	{Result: TypeFIR, Match: legal.ContainsAny("first information report", "fir", "police station")},
	{Result: TypeConsumerComplaint, Match: legal.ContainsAny("complaint", "consumer forum", "deficiency in service")},
	{Result: TypeContract, Match: legal.ContainsAny("agreement", "contract", "party of the first part", "party of the second part")},
	{Result: TypeEmploymentAgreement, Match: legal.ContainsAny("employment agreement", "service agreement", "appointment letter")},
	{Result: TypeCourtPetition, Match: legal.ContainsAny("petition", "application", "honorable court", "plaintiff", "defendant")},
	{Result: TypeCourtOrder, Match: legal.ContainsAny("judgment", "order", "court", "decided", "disposed")},
	{Result: TypeDivorcePetition, Match: legal.ContainsAny("divorce petition", "mutual consent", "dissolution of marriage")},
	{Result: TypeMaintenanceApplication, Match: legal.ContainsAny("maintenance", "alimony", "child custody")},
}

// AreaRules resolves the legal area of a document. Note the order differs from
// query classification: consumer is checked before civil.
var AreaRules = []legal.Rule[legal.Category]{
	{
		Result: legal.Property,
		Match: legal.ContainsAny(
			"property", "sale deed", "lease", "rent", "possession", "title", "registry",
			"stamp duty", "registration", "land", "plot", "apartment", "house",
		),
	},
	{
		Result: legal.Criminal,
		Match: legal.ContainsAny(
			"fir", "police", "crime", "theft", "assault", "bail", "arrest", "investigation",
			"criminal", "accused", "victim", "cognizable", "non-cognizable",
		),
	},
	{
		Result: legal.Family,
		Match: legal.ContainsAny(
			"marriage", "divorce", "custody", "maintenance", "alimony", "family",
			"child", "spouse", "matrimonial", "separation", "guardian",
		),
	},
	{
		Result: legal.Consumer,
		Match: legal.ContainsAny(
			"consumer", "deficiency", "service", "goods", "complaint", "forum",
			"redressal", "warranty", "guarantee", "refund", "compensation",
		),
	},
	{
		Result: legal.Civil,
		Match: legal.ContainsAny(
			"contract", "agreement", "breach", "damages", "compensation", "civil suit",
			"injunction", "specific performance", "dispute", "litigation",
		),
	},
}

// Analyze classifies OCR text. It never fails; unmatched text degrades to
// TypeGeneric and legal.General.
func Analyze(text string) Analysis {
	lower := strings.ToLower(text)
	docType := IdentifyType(lower)
	area := IdentifyArea(lower)

	return Analysis{
		DocumentType: docType,
		LegalArea:    area,
		KeyPoints:    ExtractKeyPoints(text, docType),
		Summary:      Summarize(text, docType, area),
	}
}

func IdentifyType(lower string) string {
	return legal.FirstMatch(TypeRules, lower, TypeGeneric)
}

func IdentifyArea(lower string) legal.Category {
	return legal.FirstMatch(AreaRules, lower, legal.General)
}
