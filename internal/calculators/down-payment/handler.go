package downpayment

import (
	"context"
	"fmt"
	"math"

	"mortgage-prequal/internal/common/args"
	apperrors "mortgage-prequal/internal/common/errors"
	"mortgage-prequal/internal/common/logger"
	"mortgage-prequal/internal/common/money"
)

const (
	ToolName  = "calculate_down_payment"
	toolLabel = "Down payment"
)

// Statutory minimum down payment tiers (federal rule, not configurable):
// 5% up to $500K, 5% on the first $500K plus 10% on the remainder up to $1M,
// 20% above $1M (no CMHC insurance available there).
const (
	tierOneCeiling = 500_000
	tierTwoCeiling = 1_000_000
)

// Handler verifies minimum down payment compliance and estimates the CMHC
// insurance premium.
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
	var input Input
	if err := args.Decode(rawArgs, &input); err != nil {
		return nil, apperrors.NewCalculationFailedError(toolLabel, err)
	}

	if input.PurchasePrice == 0 {
		return nil, apperrors.NewMissingFieldError(
			apperrors.ErrCodeMissingPurchasePrice, "Purchase price is required")
	}

	price := input.PurchasePrice
	actual := input.ProposedDownPayment

	var minDownPayment float64
	switch {
	case price <= tierOneCeiling:
		minDownPayment = price * 0.05
	case price <= tierTwoCeiling:
		minDownPayment = tierOneCeiling*0.05 + (price-tierOneCeiling)*0.10
	default:
		minDownPayment = price * 0.20
	}

	downPaymentPct := actual / price * 100
	cmhcRequired := downPaymentPct < 20

	// Premium rate band by down payment percentage. Below 5% the borrower is
	// not eligible for insurance at all; the rate stays 0 and sufficiency is
	// reported through the min_down_payment check instead.
	var cmhcRate, cmhcPremium float64
	if cmhcRequired && price < tierTwoCeiling {
		switch {
		case downPaymentPct >= 20:
			cmhcRate = 0
		case downPaymentPct >= 15:
			cmhcRate = 2.80
		case downPaymentPct >= 10:
			cmhcRate = 3.10
		case downPaymentPct >= 5:
			cmhcRate = 4.00
		default:
			cmhcRate = 0
		}
		cmhcPremium = (price - actual) * (cmhcRate / 100)
	}

	if !money.Finite(downPaymentPct, cmhcPremium) {
		return nil, apperrors.NewCalculationFailedError(toolLabel,
			fmt.Errorf("non-finite amount from price %v", price))
	}

	sufficient := actual >= minDownPayment

	recommendation := "Approved - Down payment sufficient"
	if !sufficient {
		recommendation = fmt.Sprintf("Need $%s more for minimum down payment",
			money.Format(minDownPayment-actual))
	}

	h.logger.Info("down payment checked", map[string]interface{}{
		"purchasePrice":  price,
		"downPaymentPct": money.Round2(downPaymentPct),
		"sufficient":     sufficient,
		"cmhcRequired":   cmhcRequired,
	})

	return &Output{
		PurchasePrice:         money.Round2(price),
		MinDownPayment:        money.Round2(minDownPayment),
		ActualDownPayment:     money.Round2(actual),
		DownPaymentPct:        money.Round2(downPaymentPct),
		Sufficient:            sufficient,
		CMHCInsuranceRequired: cmhcRequired,
		CMHCPremium:           money.Round2(cmhcPremium),
		CMHCRatePct:           cmhcRate,
		TotalLoanAmount:       money.Round2((price - actual) + cmhcPremium),
		Shortfall:             money.Round2(math.Max(0, minDownPayment-actual)),
		Recommendation:        recommendation,
	}, nil
}
