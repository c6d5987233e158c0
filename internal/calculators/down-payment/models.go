package downpayment

type Input struct {
	PurchasePrice       float64 `json:"purchase_price"`
	ProposedDownPayment float64 `json:"proposed_down_payment"`
}

type Output struct {
	PurchasePrice         float64 `json:"purchase_price"`
	MinDownPayment        float64 `json:"min_down_payment"`
	ActualDownPayment     float64 `json:"actual_down_payment"`
	DownPaymentPct        float64 `json:"down_payment_pct"`
	Sufficient            bool    `json:"sufficient"`
	CMHCInsuranceRequired bool    `json:"cmhc_insurance_required"`
	CMHCPremium           float64 `json:"cmhc_premium"`
	CMHCRatePct           float64 `json:"cmhc_rate_pct"`
	TotalLoanAmount       float64 `json:"total_loan_amount"`
	Shortfall             float64 `json:"shortfall"`
	Recommendation        string  `json:"recommendation"`
}
