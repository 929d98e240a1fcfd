package lessons

// seedLessons returns the built-in lesson catalog. Order values are spaced
// by 10 so content updates can insert between existing lessons.
func seedLessons() []Lesson {
	return []Lesson{
		// FAR — Financial Accounting & Reporting.
		{ID: "far-conceptual-framework", Section: SectionFAR, Title: "The Conceptual Framework and Standard Setting", Topics: []string{"Conceptual Framework", "GAAP"}, DurationMinutes: 35, Order: 10},
		{ID: "far-financial-statements", Section: SectionFAR, Title: "Financial Statements and Disclosures", Topics: []string{"Financial Statements", "Disclosures"}, DurationMinutes: 45, Order: 20},
		{ID: "far-revenue-recognition", Section: SectionFAR, Title: "Revenue Recognition", Topics: []string{"Revenue Recognition"}, DurationMinutes: 50, Order: 30},
		{ID: "far-receivables", Section: SectionFAR, Title: "Cash and Receivables", Topics: []string{"Receivables", "Cash Equivalents"}, DurationMinutes: 40, Order: 40},
		{ID: "far-inventory", Section: SectionFAR, Title: "Inventory Costing and Valuation", Topics: []string{"Inventory"}, DurationMinutes: 45, Order: 50},
		{ID: "far-ppe", Section: SectionFAR, Title: "Property, Plant and Equipment", Topics: []string{"PP&E", "Depreciation"}, DurationMinutes: 50, Order: 60},
		{ID: "far-intangibles", Section: SectionFAR, Title: "Intangible Assets and Impairment", Topics: []string{"Intangible Assets", "Impairment"}, DurationMinutes: 40, Order: 70},
		{ID: "far-leases", Section: SectionFAR, Title: "Leases", Topics: []string{"Leases"}, DurationMinutes: 55, Order: 80},
		{ID: "far-bonds", Section: SectionFAR, Title: "Bonds and Long-Term Debt", Topics: []string{"Bonds", "Long-Term Debt"}, DurationMinutes: 50, Order: 90},
		{ID: "far-equity", Section: SectionFAR, Title: "Stockholders' Equity", Topics: []string{"Stockholders Equity"}, DurationMinutes: 40, Order: 100},
		{ID: "far-income-taxes", Section: SectionFAR, Title: "Accounting for Income Taxes", Topics: []string{"Deferred Taxes"}, DurationMinutes: 45, Order: 110},
		{ID: "far-cash-flows", Section: SectionFAR, Title: "Statement of Cash Flows", Topics: []string{"Cash Flow Statement"}, DurationMinutes: 45, Order: 120},
		{ID: "far-consolidations", Section: SectionFAR, Title: "Business Combinations and Consolidations", Topics: []string{"Consolidations"}, DurationMinutes: 55, Order: 130},
		{ID: "far-governmental", Section: SectionFAR, Title: "Governmental Accounting", Topics: []string{"Governmental Accounting"}, DurationMinutes: 50, Order: 140},
		{ID: "far-nfp", Section: SectionFAR, Title: "Not-for-Profit Accounting", Topics: []string{"Not-for-Profit Accounting"}, DurationMinutes: 40, Order: 150},

		// AUD — Auditing & Attestation.
		{ID: "aud-engagement-planning", Section: SectionAUD, Title: "Engagement Acceptance and Planning", Topics: []string{"Audit Planning"}, DurationMinutes: 40, Order: 10},
		{ID: "aud-risk-assessment", Section: SectionAUD, Title: "Risk Assessment and Materiality", Topics: []string{"Risk Assessment", "Materiality"}, DurationMinutes: 45, Order: 20},
		{ID: "aud-internal-control", Section: SectionAUD, Title: "Internal Control", Topics: []string{"Internal Control"}, DurationMinutes: 50, Order: 30},
		{ID: "aud-evidence", Section: SectionAUD, Title: "Audit Evidence and Procedures", Topics: []string{"Audit Evidence"}, DurationMinutes: 45, Order: 40},
		{ID: "aud-sampling", Section: SectionAUD, Title: "Audit Sampling", Topics: []string{"Audit Sampling"}, DurationMinutes: 35, Order: 50},
		{ID: "aud-analytical", Section: SectionAUD, Title: "Analytical Procedures", Topics: []string{"Analytical Procedures"}, DurationMinutes: 30, Order: 60},
		{ID: "aud-reports", Section: SectionAUD, Title: "Audit Reports and Opinions", Topics: []string{"Audit Reports"}, DurationMinutes: 45, Order: 70},
		{ID: "aud-ethics", Section: SectionAUD, Title: "Professional Ethics and Independence", Topics: []string{"Ethics", "Independence"}, DurationMinutes: 35, Order: 80},

		// REG — Regulation.
		{ID: "reg-individual-tax", Section: SectionREG, Title: "Individual Taxation", Topics: []string{"Individual Taxation"}, DurationMinutes: 55, Order: 10},
		{ID: "reg-property-tx", Section: SectionREG, Title: "Property Transactions", Topics: []string{"Property Transactions", "Basis"}, DurationMinutes: 45, Order: 20},
		{ID: "reg-corporate-tax", Section: SectionREG, Title: "Corporate Taxation", Topics: []string{"Corporate Taxation"}, DurationMinutes: 55, Order: 30},
		{ID: "reg-partnership-tax", Section: SectionREG, Title: "Partnership Taxation", Topics: []string{"Partnership Taxation"}, DurationMinutes: 45, Order: 40},
		{ID: "reg-entity-choice", Section: SectionREG, Title: "Entity Selection and S Corporations", Topics: []string{"S Corporations", "Entity Selection"}, DurationMinutes: 40, Order: 50},
		{ID: "reg-business-law", Section: SectionREG, Title: "Business Law: Contracts and Agency", Topics: []string{"Contracts", "Agency"}, DurationMinutes: 45, Order: 60},
		{ID: "reg-debtor-creditor", Section: SectionREG, Title: "Debtor-Creditor Relationships", Topics: []string{"Secured Transactions", "Bankruptcy"}, DurationMinutes: 40, Order: 70},
		{ID: "reg-ethics", Section: SectionREG, Title: "Ethics and Professional Responsibilities", Topics: []string{"Circular 230", "Tax Ethics"}, DurationMinutes: 30, Order: 80},
	}
}
