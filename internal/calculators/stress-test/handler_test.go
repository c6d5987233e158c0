package stresstest

import (
	"context"
	"testing"

	"mortgage-prequal/internal/common/config"
	"mortgage-prequal/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func execute(t *testing.T, args map[string]interface{}) *Output {
	out, err := newHandler(t).Execute(context.Background(), args)
	require.NoError(t, err)
	output, ok := out.(*Output)
	require.True(t, ok)
	return output
}

func TestHandler_Execute_QualifyingRate(t *testing.T) {
	tests := []struct {
		name          string
		contractRate  float64
		expectedRate  float64
		stressApplied bool
	}{
		{"low contract rate hits the 5.25 floor", 2.0, 5.25, true},
		{"default-ish rate uses contract plus buffer", 3.5, 5.5, true},
		{"high contract rate uses contract plus buffer", 5.0, 7.0, true},
		{"floor exactly reached", 3.25, 5.25, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := execute(t, map[string]interface{}{
				"purchase_price":         500000,
				"down_payment":           100000,
				"contract_interest_rate": tt.contractRate,
			})

			assert.Equal(t, tt.expectedRate, output.QualifyingRate)
			assert.Equal(t, tt.contractRate, output.ContractRate)
			assert.Equal(t, tt.stressApplied, output.StressTestApplied)
		})
	}
}

func TestHandler_Execute_PaymentComputation(t *testing.T) {
	// Loan 400000 over 300 months: 7.00% qualifying vs 5.00% contract.
	output := execute(t, map[string]interface{}{
		"purchase_price":         500000,
		"down_payment":           100000,
		"contract_interest_rate": 5.0,
	})

	assert.Equal(t, 400000.0, output.LoanAmount)
	assert.Equal(t, 25, output.AmortizationYears)
	assert.InDelta(t, 2827.12, output.QualifyingPayment, 0.01)
	assert.InDelta(t, 2338.36, output.ActualPayment, 0.01)
	assert.InDelta(t, 488.76, output.AdditionalQualifyingAmount, 0.01)
	assert.Equal(t, "Must qualify at 7% per OSFI B-20 stress test (higher of contract rate + 2% or 5.25%)", output.Message)
}

func TestHandler_Execute_Defaults(t *testing.T) {
	// Only the purchase price: contract rate defaults to 3.5, amortization to
	// 25 years, down payment to 0.
	output := execute(t, map[string]interface{}{
		"purchase_price": 650000,
		"down_payment":   50000,
	})

	assert.Equal(t, 3.5, output.ContractRate)
	assert.Equal(t, 5.5, output.QualifyingRate)
	assert.Equal(t, 25, output.AmortizationYears)
	assert.Equal(t, 600000.0, output.LoanAmount)
	assert.InDelta(t, 3684.52, output.QualifyingPayment, 0.01)
	assert.InDelta(t, 3003.74, output.ActualPayment, 0.01)
	assert.InDelta(t, 680.78, output.AdditionalQualifyingAmount, 0.01)
}

func TestHandler_Execute_ZeroContractRate(t *testing.T) {
	// A 0% contract rate degenerates to straight-line repayment for the
	// actual payment; the qualifying side still amortizes at the floor.
	output := execute(t, map[string]interface{}{
		"purchase_price":         300000,
		"contract_interest_rate": 0,
		"amortization_years":     10,
	})

	assert.Equal(t, 5.25, output.QualifyingRate)
	assert.Equal(t, 2500.0, output.ActualPayment)
	assert.InDelta(t, 3218.75, output.QualifyingPayment, 0.01)
}

func TestFromConfig_ConfiguredFloorAndBuffer(t *testing.T) {
	cfg := FromConfig(config.CalculatorConfig{
		Limits: map[string]float64{"qualifying_floor": 4.75, "rate_buffer": 1.0},
	})
	h := NewHandler(cfg, logger.NewTestLogger(t))

	out, err := h.Execute(context.Background(), map[string]interface{}{
		"purchase_price":         500000,
		"down_payment":           100000,
		"contract_interest_rate": 3.0,
	})
	require.NoError(t, err)

	output := out.(*Output)
	assert.Equal(t, 4.75, output.QualifyingRate)
	assert.Equal(t,
		"Must qualify at 4.75% per OSFI B-20 stress test (higher of contract rate + 1% or 4.75%)",
		output.Message)
}

func TestFromConfig_AbsentLimitsKeepDefaults(t *testing.T) {
	assert.Equal(t, LoadConfig(), FromConfig(config.CalculatorConfig{}))
	assert.Equal(t, LoadConfig(), FromConfig(config.CalculatorConfig{
		Limits: map[string]float64{"qualifying_floor": 0},
	}))
}

func TestHandler_Execute_MissingPurchasePrice(t *testing.T) {
	h := newHandler(t)

	out, err := h.Execute(context.Background(), map[string]interface{}{"down_payment": 50000})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.Equal(t, "Purchase price is required", err.Error())
}

func TestHandler_Execute_ZeroAmortization(t *testing.T) {
	h := newHandler(t)

	out, err := h.Execute(context.Background(), map[string]interface{}{
		"purchase_price":     500000,
		"amortization_years": 0,
	})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stress test calculation failed")
}

func TestHandler_Execute_MalformedInput(t *testing.T) {
	h := newHandler(t)

	out, err := h.Execute(context.Background(), map[string]interface{}{
		"purchase_price": []string{"oops"},
	})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stress test calculation failed")
}
