package payment

import (
	"context"
	"fmt"
	"time"

	"fittribe/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SimulatedGateway approves every valid request after a short fixed delay.
// It stands in for the real gateway in development and tests.
type SimulatedGateway struct {
	logger *zap.Logger
	// Delay before approval. Zero means no delay.
	Delay time.Duration
	// FailWith, when set, makes every charge attempt fail with this error.
	FailWith error
}

// NewSimulatedGateway creates a simulated Gateway with a 2 second delay,
// matching the latency of a real gateway round trip.
func NewSimulatedGateway(logger *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{logger: logger, Delay: 2 * time.Second}
}

// ProcessPayment validates the request, waits the configured delay and
// returns a paid invoice.
func (g *SimulatedGateway) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}
	if g.FailWith != nil {
		return nil, g.FailWith
	}

	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
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
		PaymentID: "sim_" + uuid.New().String(),
	}

	if g.logger != nil {
		g.logger.Info("Simulated payment approved", zap.String("invoice", inv.InvoiceID))
	}
	return inv, nil
}
