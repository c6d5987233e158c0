package creditcheck

// Input carries the applicant's credit score and the intended down payment
// percentage. The percentage defaults to 5 when absent, which implies a
// CMHC-insured mortgage.
type Input struct {
	CreditScore           int     `json:"credit_score"`
	DownPaymentPercentage float64 `json:"down_payment_percentage"`
}

func defaultInput() Input {
	return Input{DownPaymentPercentage: 5}
}

type Output struct {
	CreditScore        int    `json:"credit_score"`
	Category           string `json:"category"`
	MinRequiredScore   int    `json:"min_required_score"`
	MortgageType       string `json:"mortgage_type"`
	Approved           bool   `json:"approved"`
	PointsAboveMinimum int    `json:"points_above_minimum"`
	Recommendation     string `json:"recommendation"`
}
