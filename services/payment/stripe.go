package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fittribe/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeGateway charges cards through Stripe PaymentIntents.
type StripeGateway struct {
	logger *zap.Logger
}

// NewStripeGateway creates a Stripe-backed Gateway. The global stripe.Key must
// already be set from configuration.
func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{logger: logger}
}

// ProcessPayment creates and confirms a PaymentIntent for the requested amount.
func (g *StripeGateway) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount * 100)),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	if req.Idempotency != "" {
		params.IdempotencyKey = stripe.String(req.Idempotency)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		g.logger.Error("Stripe payment intent failed",
			zap.String("userID", req.UserID), zap.Error(err))
		return nil, mapStripeError(err)
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "paid",
		CreatedAt: now,
		UpdatedAt: now,
		PaymentID: pi.ID,
	}

	g.logger.Info("Stripe payment created",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID))
	return inv, nil
}

// mapStripeError converts Stripe API errors into messages safe to surface.
func mapStripeError(err error) error {
	if stripeErr, ok := err.(*stripe.Error); ok {
		switch stripeErr.Type {
		case stripe.ErrorTypeCard:
			return fmt.Errorf("card declined: %s", stripeErr.Msg)
		case stripe.ErrorTypeInvalidRequest:
			return fmt.Errorf("invalid payment request: %s", stripeErr.Msg)
		default:
			return fmt.Errorf("payment provider error: %s", stripeErr.Msg)
		}
	}
	return fmt.Errorf("payment provider unreachable: %w", err)
}
