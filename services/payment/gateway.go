package payment

import (
	"context"
	"errors"
	"time"

	"fittribe/models"
)

// gatewayTimeout bounds every outbound charge attempt.
const gatewayTimeout = 15 * time.Second

// Gateway is the port for submitting a payment. Production wires the Stripe
// implementation; tests and local development use the simulated one.
type Gateway interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// validateRequest checks the payment request fields before any charge attempt.
func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.UserID == "" {
		return errors.New("missing user ID")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	return nil
}
