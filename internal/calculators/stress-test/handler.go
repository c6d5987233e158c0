package stresstest

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"mortgage-prequal/internal/common/args"
	apperrors "mortgage-prequal/internal/common/errors"
	"mortgage-prequal/internal/common/logger"
	"mortgage-prequal/internal/common/money"
)

const (
	ToolName  = "osfi_b20_stress_test"
	toolLabel = "Stress test"
)

// Handler applies the OSFI B-20 stress test: the borrower must qualify at the
// higher of the contract rate plus a buffer, or the minimum qualifying rate.
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
	input := defaultInput()
	if err := args.Decode(rawArgs, &input); err != nil {
		return nil, apperrors.NewCalculationFailedError(toolLabel, err)
	}

	if input.PurchasePrice == 0 {
		return nil, apperrors.NewMissingFieldError(
			apperrors.ErrCodeMissingPurchasePrice, "Purchase price is required")
	}

	loanAmount := input.PurchasePrice - input.DownPayment
	qualifyingRate := math.Max(input.ContractInterestRate+h.config.RateBuffer, h.config.QualifyingFloor)

	numPayments := input.AmortizationYears * 12
	if numPayments <= 0 {
		return nil, apperrors.NewCalculationFailedError(toolLabel,
			errors.New("amortization period must be positive"))
	}

	qualifyingPayment := monthlyPayment(loanAmount, qualifyingRate, numPayments)
	actualPayment := monthlyPayment(loanAmount, input.ContractInterestRate, numPayments)

	if !money.Finite(qualifyingPayment, actualPayment) {
		return nil, apperrors.NewCalculationFailedError(toolLabel,
			fmt.Errorf("non-finite payment at %v%% over %d months", qualifyingRate, numPayments))
	}

	h.logger.Info("stress test applied", map[string]interface{}{
		"contractRate":   input.ContractInterestRate,
		"qualifyingRate": qualifyingRate,
		"loanAmount":     loanAmount,
	})

	return &Output{
		ContractRate:               input.ContractInterestRate,
		QualifyingRate:             qualifyingRate,
		StressTestApplied:          qualifyingRate > input.ContractInterestRate,
		QualifyingPayment:          money.Round2(qualifyingPayment),
		ActualPayment:              money.Round2(actualPayment),
		AdditionalQualifyingAmount: money.Round2(qualifyingPayment - actualPayment),
		LoanAmount:                 money.Round2(loanAmount),
		AmortizationYears:          input.AmortizationYears,
		Message: fmt.Sprintf(
			"Must qualify at %s%% per OSFI B-20 stress test (higher of contract rate + %s%% or %s%%)",
			strconv.FormatFloat(qualifyingRate, 'f', -1, 64),
			strconv.FormatFloat(h.config.RateBuffer, 'f', -1, 64),
			strconv.FormatFloat(h.config.QualifyingFloor, 'f', -1, 64)),
	}, nil
}

// monthlyPayment computes the standard amortizing-loan payment
// P = L*r(1+r)^n / ((1+r)^n - 1). A zero rate degenerates to straight-line
// repayment, avoiding the division by zero in the formula.
func monthlyPayment(loanAmount, annualRatePct float64, numPayments int) float64 {
	monthlyRate := annualRatePct / 100 / 12
	if monthlyRate > 0 {
		factor := math.Pow(1+monthlyRate, float64(numPayments))
		return loanAmount * (monthlyRate * factor) / (factor - 1)
	}
	return loanAmount / float64(numPayments)
}
