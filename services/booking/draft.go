package booking

import (
	"context"
	"fmt"
	"time"

	"fittribe/models"
	"fittribe/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateDraft validates the booking form input, builds a pending draft and
// writes it into the store, overwriting any prior draft for the client.
func (p *DefaultDraftPipeline) CreateDraft(ctx context.Context, clientID string, input models.DraftInput) (*models.BookingDraft, error) {
	logger := utils.GetLogger()

	if clientID == "" {
		return nil, NewValidationError("clientId", "client is required")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	trainerName := ""
	if p.TrainerRepo != nil {
		trainer, err := p.TrainerRepo.GetByID(input.TrainerID)
		if err != nil {
			return nil, &TransientError{Op: "failed to look up trainer", Err: err}
		}
		if trainer == nil {
			return nil, NewValidationError("trainerId", "trainer not found")
		}
		trainerName = trainer.FullName()
	}

	draft := models.BookingDraft{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		TrainerID:   input.TrainerID,
		TrainerName: trainerName,
		Date:        input.Date,
		Time:        input.Time,
		Duration:    input.Duration,
		SessionType: input.SessionType,
		Notes:       input.Notes,
		Price:       p.Prices.PriceFor(input.SessionType),
		Currency:    p.Prices.Currency,
		Status:      models.DraftStatusPending,
		CreatedAt:   time.Now(),
	}

	if err := p.Store.Put(ctx, clientID, draft); err != nil {
		return nil, err
	}

	logger.Debug("Booking draft created",
		zap.String("draftID", draft.ID),
		zap.String("clientID", clientID),
		zap.String("trainerID", draft.TrainerID))
	return &draft, nil
}

// GetDraft retrieves the client's current draft. Returns ErrDraftNotFound
// when the store is empty.
func (p *DefaultDraftPipeline) GetDraft(ctx context.Context, clientID string) (*models.BookingDraft, error) {
	return p.Store.Get(ctx, clientID)
}

// CancelDraft empties the client's draft slot. Used on explicit cancel and on
// "book another" after success; deleting an absent draft is not an error.
func (p *DefaultDraftPipeline) CancelDraft(ctx context.Context, clientID string) error {
	return p.Store.Delete(ctx, clientID)
}

// notifyPaymentSuccess appends a payment notification to the client's account.
// Failures here do not fail the payment itself.
func (p *DefaultDraftPipeline) notifyPaymentSuccess(draft models.BookingDraft, inv *models.Invoice) {
	if p.UserRepo == nil {
		return
	}
	notification := models.Notification{
		ID:   uuid.New().String(),
		Type: "payment_confirmation",
		Message: fmt.Sprintf("Payment of %s %.2f for session with %s was successful.",
			inv.Currency, inv.Amount, draft.TrainerName),
		Data: map[string]any{
			"invoiceId": inv.InvoiceID,
			"bookingId": draft.ID,
			"amount":    inv.Amount,
		},
		CreatedAt: time.Now(),
		Read:      false,
	}
	if err := p.UserRepo.AppendNotification(draft.ClientID, notification); err != nil {
		utils.GetLogger().Error("Failed to append payment notification",
			zap.String("clientID", draft.ClientID), zap.Error(err))
	}
}
