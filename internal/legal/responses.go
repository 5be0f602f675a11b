package legal

import "fmt"

const knowledgeDisclaimer = "*Please note: This is general legal information. For specific legal advice, consult with a qualified attorney.*"

var fallbackResponses = map[Category]string{
	Property: "I can help you with property-related queries including registration, documentation, stamp duty, and property laws in India. Could you please be more specific about your property concern?",
	Criminal: "I can assist with criminal law matters including FIR filing, police procedures, and criminal case information. What specific criminal law issue would you like help with?",
	Family:   "I'm here to help with family law matters such as marriage, divorce, custody, and maintenance issues. Could you provide more details about your family law question?",
	Civil:    "I can help with civil law matters including contracts, agreements, and civil procedures. What specific civil law issue can I assist you with?",
	Consumer: "I can guide you through consumer protection laws, complaint procedures, and consumer rights. What consumer issue would you like help with?",
	General:  "I'm your AI legal assistant trained on Indian legal documents. I can help with property law, criminal law, family law, civil law, and consumer protection. Could you please specify your legal query or the area of law you need assistance with?",
}

var suggestions = map[Category][]string{
	Property: {
		"Property registration process",
		"Documents required for property purchase",
		"Stamp duty calculation",
		"Property verification checklist",
	},
	Criminal: {
		"How to file an FIR",
		"Police investigation process",
		"Bail procedures",
		"Criminal case timeline",
	},
	Family: {
		"Divorce procedure in India",
		"Child custody laws",
		"Maintenance and alimony",
		"Marriage registration",
	},
	Civil: {
		"Contract law basics",
		"Civil suit procedure",
		"Legal notice format",
		"Property disputes",
	},
	Consumer: {
		"Consumer complaint procedure",
		"Consumer forums in India",
		"Product warranty rights",
		"Service deficiency claims",
	},
	General: {
		"Property law queries",
		"Criminal law assistance",
		"Family law guidance",
		"Consumer protection",
	},
}

// FallbackResponse is the one-paragraph answer used when neither a template
// nor a knowledge record matched.
func FallbackResponse(c Category) string {
	if text, ok := fallbackResponses[c]; ok {
		return text
	}
	return fallbackResponses[General]
}

// Suggestions returns the four follow-up questions for a category.
func Suggestions(c Category) []string {
	list, ok := suggestions[c]
	if !ok {
		list = suggestions[General]
	}
	return append([]string(nil), list...)
}

// FormatKnowledge renders a knowledge record as a chat answer.
func FormatKnowledge(question, answer string) string {
	return fmt.Sprintf("**%s**\n\n%s\n\n%s", question, answer, knowledgeDisclaimer)
}

// WelcomeMessage is shown when a chat session opens.
func WelcomeMessage() string {
	return welcomeMessage
}

const welcomeMessage = `🙏 **Welcome to AI Legal ChatBot!**

I'm your intelligent legal assistant specializing in **Indian law**. I can help you with:

✅ **Legal Queries & Guidance**
• Property registration & documentation
• Criminal law procedures (FIR, bail applications)
• Family law matters (divorce, custody, maintenance)
• Consumer protection & complaints
• Civil law contracts & agreements

✅ **Document Analysis & OCR**
• Upload legal documents for instant analysis
• Extract text from scanned images
• Get summaries and key points
• Identify document types and legal areas

✅ **Step-by-Step Procedures**
• Detailed legal process explanations
• Required documents checklists
• Court procedures and timelines
• Legal notices and applications

**Try asking me:**
• "How to file an FIR?"
• "Property registration process"
• "Divorce procedure in India"
• Or upload a legal document for analysis

*Please note: This is general legal information. For specific cases, consult a qualified lawyer.*

How can I assist you today? 🤖⚖️`
