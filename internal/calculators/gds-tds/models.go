package gdstds

// Input carries the borrower's income and monthly obligations. All monthly
// amounts default to 0 when absent from the request.
type Input struct {
	GrossAnnualIncome      float64 `json:"gross_annual_income"`
	MonthlyMortgagePayment float64 `json:"monthly_mortgage_payment"`
	MonthlyPropertyTaxes   float64 `json:"monthly_property_taxes"`
	MonthlyHeating         float64 `json:"monthly_heating"`
	MonthlyCondoFees       float64 `json:"monthly_condo_fees"`
	MonthlyOtherDebts      float64 `json:"monthly_other_debts"`
}

type Output struct {
	GDSRatio       float64 `json:"gds_ratio"`
	TDSRatio       float64 `json:"tds_ratio"`
	GDSLimit       float64 `json:"gds_limit"`
	TDSLimit       float64 `json:"tds_limit"`
	GDSPass        bool    `json:"gds_pass"`
	TDSPass        bool    `json:"tds_pass"`
	OverallPass    bool    `json:"overall_pass"`
	MonthlyIncome  float64 `json:"monthly_income"`
	GDSCosts       float64 `json:"gds_costs"`
	TDSCosts       float64 `json:"tds_costs"`
	Recommendation string  `json:"recommendation"`
}
