package legal

// Detailed explainers returned verbatim when a query hits one of the phrase
// patterns below. Checked in order, before the knowledge base.
var templateRules = []Rule[string]{
	{
		Match:  AllOf(ContainsAny("how to file"), ContainsAny("fir")),
		Result: firTemplate,
	},
	{
		Match: AnyOf(
			ContainsAny("property registration"),
			AllOf(ContainsAny("property"), ContainsAny("register")),
		),
		Result: propertyRegistrationTemplate,
	},
	{
		Match:  AllOf(ContainsAny("divorce"), ContainsAny("procedure", "process", "how")),
		Result: divorceTemplate,
	},
	{
		Match: AnyOf(
			ContainsAny("consumer complaint"),
			AllOf(ContainsAny("consumer"), ContainsAny("file")),
		),
		Result: consumerComplaintTemplate,
	},
	{
		Match:  AllOf(ContainsAny("bail"), ContainsAny("application", "how", "apply")),
		Result: bailTemplate,
	},
}

const firTemplate = `**How to File an FIR (First Information Report)**

To file an FIR in India, follow these steps:

**Step 1: Visit the Police Station**
- Go to the nearest police station in your jurisdiction
- You can file an FIR at any police station if it's an emergency

**Step 2: Provide Details**
- Give a written complaint with complete details
- Include: Date, time, place of incident, names of accused (if known)
- Describe the incident clearly and factually

**Step 3: FIR Registration**
- Police officer will record your statement
- You'll get a copy of the FIR with registration number
- Ensure you get the acknowledgment receipt

**Step 4: Follow Up**
- Keep the FIR copy safe for future reference
- You can inquire about investigation progress
- Contact investigating officer for updates

**Important Notes:**
- FIR should be filed immediately after the incident
- Police cannot refuse to register FIR for cognizable offenses
- You can approach higher authorities if police refuse to file FIR

*Disclaimer: This is general legal information. For specific cases, consult a qualified lawyer.*`

const propertyRegistrationTemplate = `**Property Registration Process in India**

**Documents Required:**
- Sale Deed/Agreement to Sell
- Title Documents of the property
- NOC from builder/society (if applicable)
- Property card/Survey settlement
- Identity and address proof of buyer and seller
- PAN cards of all parties
- Passport size photographs

**Step-by-Step Process:**

**1. Document Verification**
- Verify all property documents
- Check for clear title and no disputes
- Ensure NOC from relevant authorities

**2. Stamp Duty Payment**
- Calculate stamp duty based on state rates
- Pay stamp duty online or at designated centers
- Get stamp duty certificate

**3. Visit Sub-Registrar Office**
- Book appointment online (in most states)
- Visit with all original documents
- Carry two witnesses with valid ID

**4. Registration Process**
- Biometric verification of all parties
- Document verification by registrar
- Payment of registration fees
- Signing of documents

**5. Receipt and Completion**
- Get registered document copy
- Obtain registration receipt
- Update property records

**Important:** Registration must be done within 4 months of signing the agreement.

*Consult a legal expert for state-specific requirements and procedures.*`

const divorceTemplate = `**Divorce Procedures in India**

**Types of Divorce:**

**1. Mutual Consent Divorce**
- Both parties agree to divorce
- Faster process (6-18 months)
- Less expensive and less stressful

**Procedure:**
- File joint petition in family court
- First motion hearing (cooling period of 6 months)
- Second motion hearing (final decree)

**2. Contested Divorce**
- One party files against the other
- Longer process (2-5 years)
- Requires valid grounds

**Grounds for Divorce (Hindu Marriage Act):**
- Adultery
- Cruelty (physical or mental)
- Desertion for 2+ years
- Conversion to another religion
- Mental disorder
- Communicable disease (leprosy/VD)
- Renunciation of world

**Documents Required:**
- Marriage certificate
- Address proof
- Income proof
- Photos of marriage ceremony
- Evidence supporting grounds (if contested)

**Process:**
1. File petition in family court
2. Serve notice to other party
3. Response filing by respondent
4. Evidence and witness examination
5. Court judgment and decree

**Child Custody & Maintenance:**
- Child's welfare is paramount consideration
- Both parents have equal rights
- Maintenance based on income and needs

*Different personal laws apply to different religions. Consult a family law expert for specific guidance.*`

const consumerComplaintTemplate = `**How to File a Consumer Complaint**

**Consumer Forums in India:**

**1. District Consumer Forum**
- For complaints up to ₹20 lakhs
- Fastest resolution (usually 3-6 months)

**2. State Consumer Commission**
- For complaints between ₹20 lakhs to ₹1 crore
- Appeals from District Forum

**3. National Consumer Commission**
- For complaints above ₹1 crore
- Final appellate authority

**Documents Required:**
- Purchase receipt/bill
- Warranty/guarantee documents
- Correspondence with seller/service provider
- Photos/videos of defective product
- Medical certificates (if applicable)

**Filing Process:**

**Step 1: Prepare Complaint**
- Clearly state the deficiency in goods/services
- Mention relief sought (refund/replacement/compensation)
- Attach supporting documents

**Step 2: Submit Complaint**
- File online through e-Daakhil portal
- Or submit physical copy to forum
- Pay nominal filing fee

**Step 3: Hearing Process**
- Forum issues notice to opposite party
- Both parties present evidence
- Forum passes order

**Relief Available:**
- Refund of price paid
- Replacement of defective goods
- Compensation for loss/injury
- Punitive damages
- Discontinuation of unfair practices

**Time Limit:**
- Complaint must be filed within 2 years of cause of action
- Extensions possible in exceptional cases

*Keep all purchase documents safe and act within time limits for better chances of success.*`

const bailTemplate = `**Bail Application Process in India**

**Types of Bail:**

**1. Regular Bail**
- Applied when arrested and in custody
- Filed in Sessions Court or High Court

**2. Anticipatory Bail**
- Applied before arrest when apprehending arrest
- Filed in Sessions Court or High Court under Section 438 CrPC

**3. Interim Bail**
- Temporary bail for short period
- Usually granted pending regular bail application

**Bail Application Process:**

**Step 1: Engage a Lawyer**
- Criminal lawyer experienced in bail matters
- Lawyer will assess the case and chances

**Step 2: Prepare Application**
- Draft bail application with grounds
- Attach relevant documents
- Include undertaking and surety details

**Step 3: File in Appropriate Court**
- Magistrate Court (for bailable offenses)
- Sessions Court (for non-bailable offenses)
- High Court (if Sessions Court rejects)

**Step 4: Court Hearing**
- Arguments by defense lawyer
- Prosecution may oppose
- Court decides based on merits

**Factors Considered by Court:**
- Nature and gravity of offense
- Character and antecedents of accused
- Possibility of fleeing from justice
- Likelihood of repeating offense
- Tampering with evidence or witnesses

**Bail Conditions:**
- Personal bond and surety
- Surrender passport
- Regular reporting to police
- Not to leave jurisdiction
- Not to contact witnesses

**Documents Required:**
- Copy of FIR
- Identity and address proof
- Income proof of surety
- Character certificate
- Medical certificate (if required)

*Bail is a right for bailable offenses and discretionary for non-bailable offenses. Time is crucial in bail applications.*`
