package downpayment

import (
	"context"
	"testing"

	"mortgage-prequal/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args map[string]interface{}) *Output {
	h := NewHandler(logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), args)
	require.NoError(t, err)
	output, ok := out.(*Output)
	require.True(t, ok)
	return output
}

func TestHandler_Execute_MinimumTiers(t *testing.T) {
	tests := []struct {
		name          string
		purchasePrice float64
		expectedMin   float64
	}{
		{"5 percent below 500k", 400000, 20000},
		{"exactly 500k", 500000, 25000},
		{"blended tier at 650k", 650000, 40000},
		{"blended tier just below 1M", 1000000, 75000},
		{"20 percent above 1M", 1200000, 240000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := execute(t, map[string]interface{}{
				"purchase_price": tt.purchasePrice,
			})
			assert.Equal(t, tt.expectedMin, output.MinDownPayment)
		})
	}
}

func TestHandler_Execute_CMHCPremiumBands(t *testing.T) {
	tests := []struct {
		name            string
		purchasePrice   float64
		downPayment     float64
		expectedRate    float64
		expectedPremium float64
	}{
		// 7.69% down -> 4.00% band on the 600k financed amount
		{"5 to 10 percent band", 650000, 50000, 4.00, 24000},
		// 12% down -> 3.10% band
		{"10 to 15 percent band", 500000, 60000, 3.10, 13640},
		// 16% down -> 2.80% band
		{"15 to 20 percent band", 500000, 80000, 2.80, 11760},
		// 25% down -> no insurance at all
		{"20 percent or more", 500000, 125000, 0, 0},
		// below 5% down -> not eligible, premium stays 0
		{"below minimum band", 650000, 30000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := execute(t, map[string]interface{}{
				"purchase_price":        tt.purchasePrice,
				"proposed_down_payment": tt.downPayment,
			})
			assert.Equal(t, tt.expectedRate, output.CMHCRatePct)
			assert.Equal(t, tt.expectedPremium, output.CMHCPremium)
		})
	}
}

func TestHandler_Execute_SpecExample(t *testing.T) {
	// 650k purchase with 50k down: blended minimum 40k, 7.69% down payment,
	// insured at the 4.00% band on the 600k financed.
	output := execute(t, map[string]interface{}{
		"purchase_price":        650000,
		"proposed_down_payment": 50000,
	})

	assert.Equal(t, 40000.0, output.MinDownPayment)
	assert.Equal(t, 7.69, output.DownPaymentPct)
	assert.True(t, output.Sufficient)
	assert.True(t, output.CMHCInsuranceRequired)
	assert.Equal(t, 4.00, output.CMHCRatePct)
	assert.Equal(t, 24000.0, output.CMHCPremium)
	assert.Equal(t, 624000.0, output.TotalLoanAmount)
	assert.Equal(t, 0.0, output.Shortfall)
	assert.Equal(t, "Approved - Down payment sufficient", output.Recommendation)
}

func TestHandler_Execute_InsufficientDownPayment(t *testing.T) {
	output := execute(t, map[string]interface{}{
		"purchase_price":        650000,
		"proposed_down_payment": 30000,
	})

	assert.False(t, output.Sufficient)
	assert.Equal(t, 10000.0, output.Shortfall)
	assert.Equal(t, "Need $10,000.00 more for minimum down payment", output.Recommendation)
}

func TestHandler_Execute_OverOneMillionNoInsurance(t *testing.T) {
	// CMHC insurance is unavailable above $1M even when under 20% down.
	output := execute(t, map[string]interface{}{
		"purchase_price":        1200000,
		"proposed_down_payment": 150000,
	})

	assert.Equal(t, 12.5, output.DownPaymentPct)
	assert.True(t, output.CMHCInsuranceRequired)
	assert.Equal(t, 0.0, output.CMHCPremium)
	assert.Equal(t, 0.0, output.CMHCRatePct)
	assert.False(t, output.Sufficient)
	assert.Equal(t, 90000.0, output.Shortfall)
	assert.Equal(t, 1050000.0, output.TotalLoanAmount)
}

func TestHandler_Execute_MissingPurchasePrice(t *testing.T) {
	h := NewHandler(logger.NewTestLogger(t))

	out, err := h.Execute(context.Background(), map[string]interface{}{
		"proposed_down_payment": 50000,
	})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.Equal(t, "Purchase price is required", err.Error())
}

func TestHandler_Execute_MalformedInput(t *testing.T) {
	h := NewHandler(logger.NewTestLogger(t))

	out, err := h.Execute(context.Background(), map[string]interface{}{
		"purchase_price": map[string]interface{}{"amount": 650000},
	})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Down payment calculation failed")
}
