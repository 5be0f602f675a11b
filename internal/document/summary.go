package document

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"legalassist/internal/legal"
)

const (
	minSummaryText = 100
	longText       = 2000
	mediumText     = 500

	InsufficientTextSummary = "Document appears to be incomplete or contains insufficient text for analysis."
)

var typeDescriptions = map[string]string{
	TypeSaleDeed:          "It documents the transfer of property ownership from seller to buyer. Key aspects include property details, consideration amount, and legal formalities for registration.",
	TypeLeaseAgreement:    "It establishes the terms and conditions for renting/leasing property. Important elements include rental amount, duration, and responsibilities of landlord and tenant.",
	TypeLegalNotice:       "It serves as a formal warning or demand before initiating legal proceedings. It outlines the grievance and provides opportunity for resolution.",
	TypeFIR:               "It records the first information about a cognizable offense reported to police. It initiates the criminal investigation process.",
	TypeConsumerComplaint: "It details grievances against deficient goods or services. It seeks redressal through consumer protection forums.",
	TypeContract:          "It defines the terms, conditions, and obligations between contracting parties. It creates legally binding commitments.",
	TypeCourtPetition:     "It presents a formal request to the court for legal remedy or relief. It outlines the facts, legal grounds, and prayers.",
	TypeDivorcePetition:   "It initiates the legal process for dissolution of marriage. It states grounds for divorce and seeks court intervention.",
}

const defaultTypeDescription = "It contains legal provisions and clauses relevant to the specified legal area. Professional legal advice is recommended for proper understanding."

// Summarize builds the templated summary for a classified document.
func Summarize(text, docType string, area legal.Category) string {
	length := utf8.RuneCountInString(text)
	if length < minSummaryText {
		return InsufficientTextSummary
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This is a %s related to %s law. ", docType, area)

	if desc, ok := typeDescriptions[docType]; ok {
		b.WriteString(desc)
	} else {
		b.WriteString(defaultTypeDescription)
	}

	switch {
	case length > longText:
		b.WriteString(" This is a comprehensive document with detailed clauses and provisions.")
	case length > mediumText:
		b.WriteString(" This document contains moderate detail with essential legal elements.")
	default:
		b.WriteString(" This appears to be a brief document or excerpt.")
	}

	b.WriteString(" Please consult a qualified lawyer for specific legal advice and interpretation.")
	return b.String()
}

// Report renders an analysis as the markdown stored with an uploaded document.
func Report(a Analysis) string {
	return fmt.Sprintf("**Document Type:** %s\n**Legal Area:** %s\n\n**Summary:** %s\n\n**Key Points:**\n%s",
		a.DocumentType, a.LegalArea, a.Summary, strings.Join(a.KeyPoints, "\n"))
}
