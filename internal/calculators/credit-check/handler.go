package creditcheck

import (
	"context"
	"fmt"

	"mortgage-prequal/internal/common/args"
	apperrors "mortgage-prequal/internal/common/errors"
	"mortgage-prequal/internal/common/logger"
)

const (
	ToolName  = "check_credit_threshold"
	toolLabel = "Credit check"
)

// Minimum credit scores by mortgage type. A down payment of 20% or more means
// a conventional (uninsured) mortgage with the higher threshold.
const (
	minScoreConventional = 650
	minScoreInsured      = 600
)

// Handler checks the credit score against the minimum required for the
// mortgage type implied by the down payment percentage.
type Handler struct {
	logger logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	return &Handler{
		logger: log.WithFields(map[string]interface{}{"toolName": ToolName}),
	}
}

func (h *Handler) ToolName() string { return ToolName }

func (h *Handler) Execute(ctx context.Context, rawArgs map[string]interface{}) (interface{}, error) {
	input := defaultInput()
	if err := args.Decode(rawArgs, &input); err != nil {
		return nil, apperrors.NewCalculationFailedError(toolLabel, err)
	}

	if input.CreditScore == 0 {
		return nil, apperrors.NewMissingFieldError(
			apperrors.ErrCodeMissingCreditScore, "Credit score is required")
	}

	minScore := minScoreInsured
	mortgageType := "CMHC Insured"
	if input.DownPaymentPercentage >= 20 {
		minScore = minScoreConventional
		mortgageType = "Conventional"
	}

	approved := input.CreditScore >= minScore

	recommendation := "Approved - Credit score meets requirements"
	if !approved {
		recommendation = fmt.Sprintf(
			"Denied - Credit score too low (need %d+ for %s mortgage)", minScore, mortgageType)
	}

	h.logger.Info("credit threshold checked", map[string]interface{}{
		"creditScore":  input.CreditScore,
		"mortgageType": mortgageType,
		"approved":     approved,
	})

	return &Output{
		CreditScore:        input.CreditScore,
		Category:           category(input.CreditScore),
		MinRequiredScore:   minScore,
		MortgageType:       mortgageType,
		Approved:           approved,
		PointsAboveMinimum: input.CreditScore - minScore,
		Recommendation:     recommendation,
	}, nil
}

// category maps a score to its band; the highest matching band wins.
func category(score int) string {
	switch {
	case score >= 800:
		return "Excellent"
	case score >= 720:
		return "Very Good"
	case score >= 650:
		return "Good"
	case score >= 600:
		return "Fair"
	default:
		return "Poor"
	}
}
