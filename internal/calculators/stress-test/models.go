package stresstest

// Input carries the purchase terms. ContractInterestRate and
// AmortizationYears are pre-seeded with defaults before decoding, so absent
// fields fall back to 3.5% and 25 years respectively.
type Input struct {
	PurchasePrice        float64 `json:"purchase_price"`
	DownPayment          float64 `json:"down_payment"`
	ContractInterestRate float64 `json:"contract_interest_rate"`
	AmortizationYears    int     `json:"amortization_years"`
}

func defaultInput() Input {
	return Input{
		ContractInterestRate: 3.5,
		AmortizationYears:    25,
	}
}

type Output struct {
	ContractRate               float64 `json:"contract_rate"`
	QualifyingRate             float64 `json:"qualifying_rate"`
	StressTestApplied          bool    `json:"stress_test_applied"`
	QualifyingPayment          float64 `json:"qualifying_payment"`
	ActualPayment              float64 `json:"actual_payment"`
	AdditionalQualifyingAmount float64 `json:"additional_qualifying_amount"`
	LoanAmount                 float64 `json:"loan_amount"`
	AmortizationYears          int     `json:"amortization_years"`
	Message                    string  `json:"message"`
}
