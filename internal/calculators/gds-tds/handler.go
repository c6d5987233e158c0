package gdstds

import (
	"context"
	"fmt"

	"mortgage-prequal/internal/common/args"
	apperrors "mortgage-prequal/internal/common/errors"
	"mortgage-prequal/internal/common/logger"
	"mortgage-prequal/internal/common/money"
)

const (
	ToolName  = "calculate_gds_tds"
	toolLabel = "GDS/TDS"
)

// Handler computes Gross and Total Debt Service ratios against CMHC limits.
//
// GDS = (mortgage payment + property taxes + heating + 50% condo fees) / gross income
// TDS = (GDS costs + other debts) / gross income
type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"toolName": ToolName}),
	}
}

func (h *Handler) ToolName() string { return ToolName }

func (h *Handler) Execute(ctx context.Context, rawArgs map[string]interface{}) (interface{}, error) {
	var input Input
	if err := args.Decode(rawArgs, &input); err != nil {
		return nil, apperrors.NewCalculationFailedError(toolLabel, err)
	}

	if input.GrossAnnualIncome == 0 {
		return nil, apperrors.NewMissingFieldError(
			apperrors.ErrCodeMissingGrossIncome, "Gross annual income is required")
	}

	monthlyIncome := input.GrossAnnualIncome / 12

	gdsCosts := input.MonthlyMortgagePayment + input.MonthlyPropertyTaxes +
		input.MonthlyHeating + 0.5*input.MonthlyCondoFees
	gdsRatio := gdsCosts / monthlyIncome * 100

	tdsCosts := gdsCosts + input.MonthlyOtherDebts
	tdsRatio := tdsCosts / monthlyIncome * 100

	if !money.Finite(monthlyIncome, gdsRatio, tdsRatio) {
		return nil, apperrors.NewCalculationFailedError(toolLabel,
			fmt.Errorf("non-finite ratio from inputs"))
	}

	gdsPass := gdsRatio <= h.config.GDSLimit
	tdsPass := tdsRatio <= h.config.TDSLimit
	overallPass := gdsPass && tdsPass

	recommendation := "Approved - Debt ratios within CMHC limits"
	if !overallPass {
		recommendation = "Denied - Debt ratios exceed CMHC limits"
	}

	h.logger.Info("debt service ratios calculated", map[string]interface{}{
		"gdsRatio":    money.Round2(gdsRatio),
		"tdsRatio":    money.Round2(tdsRatio),
		"overallPass": overallPass,
	})

	return &Output{
		GDSRatio:       money.Round2(gdsRatio),
		TDSRatio:       money.Round2(tdsRatio),
		GDSLimit:       h.config.GDSLimit,
		TDSLimit:       h.config.TDSLimit,
		GDSPass:        gdsPass,
		TDSPass:        tdsPass,
		OverallPass:    overallPass,
		MonthlyIncome:  money.Round2(monthlyIncome),
		GDSCosts:       money.Round2(gdsCosts),
		TDSCosts:       money.Round2(tdsCosts),
		Recommendation: recommendation,
	}, nil
}
