package knowledge

import "legalassist/internal/model"

// Seed returns the built-in knowledge base loaded into an empty store at
// startup. Each call returns a fresh copy.
func Seed() []model.LegalKnowledge {
	out := make([]model.LegalKnowledge, len(seed))
	for i, record := range seed {
		record.Keywords = append([]string(nil), record.Keywords...)
		out[i] = record
	}
	return out
}

var seed = []model.LegalKnowledge{
	// property
	{
		Category: "property",
		Keywords: []string{"property", "registration", "documents", "stamp duty", "registry"},
		Question: "What is the property registration process in India?",
		Answer:   "Property registration in India involves: 1) Document verification and stamp duty payment 2) Visit to Sub-Registrar's office 3) Biometric verification of parties 4) Registration fee payment 5) Document registration and receipt. Required documents include sale deed, NOC, property card, and identity proofs.",
		Priority: 1,
	},
	{
		Category: "property",
		Keywords: []string{"sale deed", "purchase", "property", "buyer", "seller"},
		Question: "What is a sale deed and why is it important?",
		Answer:   "A sale deed is a legal document that transfers ownership of property from seller to buyer. It's important because: 1) Provides legal proof of ownership 2) Required for property registration 3) Needed for bank loans 4) Establishes clear title 5) Protects against future disputes.",
		Priority: 1,
	},
	{
		Category: "property",
		Keywords: []string{"tenant", "landlord", "rent", "eviction", "lease"},
		Question: "What are tenant rights in India?",
		Answer:   "Tenant rights in India include: 1) Right to peaceful enjoyment 2) Protection from illegal eviction 3) Right to reasonable notice 4) Right to essential services 5) Right to privacy 6) Right to maintenance and repairs. Eviction requires proper legal notice and court proceedings.",
		Priority: 1,
	},

	// criminal
	{
		Category: "criminal",
		Keywords: []string{"FIR", "police", "complaint", "criminal", "case"},
		Question: "How to file an FIR?",
		Answer:   "To file an FIR: 1) Visit the nearest police station 2) Provide written complaint with details 3) Include time, place, and nature of offense 4) Get FIR copy with registration number 5) Follow up on investigation. FIR should be filed immediately after the incident.",
		Priority: 1,
	},
	{
		Category: "criminal",
		Keywords: []string{"bail", "arrest", "custody", "court", "accused"},
		Question: "What are the types of bail in India?",
		Answer:   "Types of bail in India: 1) Regular Bail - after arrest and custody 2) Anticipatory Bail - before arrest when anticipating arrest 3) Interim Bail - temporary relief. Bail application should include personal details, case details, grounds for bail, and surety arrangements.",
		Priority: 1,
	},
	{
		Category: "criminal",
		Keywords: []string{"domestic violence", "protection", "women", "harassment"},
		Question: "What protection is available for domestic violence?",
		Answer:   "Protection under Domestic Violence Act 2005: 1) File complaint with magistrate 2) Get protection order 3) Residence order for shared household 4) Monetary relief for expenses 5) Custody order for children 6) Compensation order. Help available through women helplines and legal aid.",
		Priority: 1,
	},

	// family
	{
		Category: "family",
		Keywords: []string{"divorce", "marriage", "custody", "maintenance", "alimony"},
		Question: "What are the grounds for divorce in India?",
		Answer:   "Grounds for divorce under Hindu Marriage Act include: adultery, cruelty, desertion for 2+ years, conversion to another religion, mental disorder, communicable disease, and irretrievable breakdown. Mutual consent divorce is also available.",
		Priority: 1,
	},
	{
		Category: "family",
		Keywords: []string{"child custody", "children", "guardian", "parent"},
		Question: "How is child custody decided in India?",
		Answer:   "Child custody in India is decided based on: 1) Best interest of the child 2) Child's age and preference 3) Financial stability of parents 4) Moral character 5) Ability to provide care. Courts prefer joint custody when possible. Children below 5 years usually stay with mother.",
		Priority: 1,
	},
	{
		Category: "family",
		Keywords: []string{"marriage registration", "certificate", "wedding"},
		Question: "How to register marriage in India?",
		Answer:   "Marriage registration process: 1) Apply to marriage registrar 2) Submit required documents 3) Publish notice for 30 days 4) Appear before registrar with witnesses 5) Sign marriage register 6) Obtain marriage certificate. Required documents include age proof, address proof, photos, and affidavit.",
		Priority: 1,
	},

	// civil
	{
		Category: "civil",
		Keywords: []string{"contract", "agreement", "breach", "damages", "civil suit"},
		Question: "What constitutes a valid contract?",
		Answer:   "A valid contract requires: 1) Offer and acceptance 2) Lawful consideration 3) Capacity to contract 4) Free consent 5) Lawful object 6) Not expressly declared void. All parties must be competent and the agreement must be enforceable by law.",
		Priority: 1,
	},
	{
		Category: "civil",
		Keywords: []string{"legal notice", "demand", "breach", "contract"},
		Question: "When should you send a legal notice?",
		Answer:   "Send legal notice when: 1) Breach of contract occurs 2) Payment dues are pending 3) Property disputes arise 4) Service deficiency occurs 5) Before filing suit. Legal notice provides opportunity to resolve dispute without court intervention and is often mandatory before filing suit.",
		Priority: 1,
	},
	{
		Category: "civil",
		Keywords: []string{"employment", "termination", "wrongful", "dismissal"},
		Question: "What are employee rights in case of wrongful termination?",
		Answer:   "Employee rights for wrongful termination: 1) Notice pay or pay in lieu 2) Gratuity if eligible 3) Pending salary and benefits 4) Provident fund withdrawal 5) Relief under labor laws 6) Approach labor court for reinstatement. Industrial Disputes Act provides protection against unfair dismissal.",
		Priority: 1,
	},

	// consumer
	{
		Category: "consumer",
		Keywords: []string{"consumer", "complaint", "deficiency", "service", "goods"},
		Question: "How to file a consumer complaint?",
		Answer:   "Consumer complaints can be filed: 1) District Consumer Forum (up to ₹20 lakhs) 2) State Consumer Commission (₹20 lakhs to ₹1 crore) 3) National Consumer Commission (above ₹1 crore). Include purchase proof, deficiency details, and relief sought.",
		Priority: 1,
	},
	{
		Category: "consumer",
		Keywords: []string{"online shopping", "ecommerce", "refund", "return"},
		Question: "What are consumer rights for online shopping?",
		Answer:   "Consumer rights for online shopping: 1) Right to return within specified period 2) Right to refund for defective products 3) Right to replacement 4) Protection against unfair practices 5) Right to cancel order before delivery 6) Compensation for delayed delivery. Consumer Protection Act 2019 covers e-commerce transactions.",
		Priority: 1,
	},
	{
		Category: "consumer",
		Keywords: []string{"medical negligence", "doctor", "hospital", "treatment"},
		Question: "How to file complaint for medical negligence?",
		Answer:   "Medical negligence complaint process: 1) Collect medical records and evidence 2) Get expert medical opinion 3) File complaint in consumer forum 4) Include details of negligence and damages 5) Seek compensation for loss. Medical negligence includes wrong treatment, delayed diagnosis, surgical errors, and lack of informed consent.",
		Priority: 1,
	},

	// general
	{
		Category: "general",
		Keywords: []string{"legal aid", "free", "lawyer", "poor", "helpline"},
		Question: "How to get free legal aid in India?",
		Answer:   "Free legal aid available through: 1) Legal Services Authority (NALSA) 2) District Legal Services Authority 3) Lok Adalats 4) Legal aid clinics 5) NGO legal aid programs. Eligible persons include women, children, disabled persons, SC/ST, and those with annual income below prescribed limit.",
		Priority: 1,
	},
	{
		Category: "general",
		Keywords: []string{"right to information", "RTI", "government", "transparency"},
		Question: "How to file RTI application?",
		Answer:   "RTI application process: 1) Identify correct public authority 2) Draft application clearly stating information required 3) Pay prescribed fee 4) Submit to Public Information Officer 5) Receive information within 30 days. RTI fee is ₹10 for central government and varies for states.",
		Priority: 1,
	},
}
