package booking

import (
	"context"

	"fittribe/models"
	"fittribe/utils"

	"go.uber.org/zap"
)

// MarkPaid transitions the client's draft from pending to paid. The policy is
// strict: paying an already-paid draft fails with a StateError rather than
// succeeding silently. On success the confirmed booking is persisted, a
// notification is appended and a session reminder is scheduled; the paid draft
// stays in the store so the success view can still read it.
func (p *DefaultDraftPipeline) MarkPaid(ctx context.Context, clientID, draftID string) (*models.BookingDraft, error) {
	logger := utils.GetLogger()

	draft, err := p.Store.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if draft.ID != draftID {
		return nil, &DraftMismatchError{Requested: draftID, Stored: draft.ID}
	}
	if draft.Status != models.DraftStatusPending {
		return nil, &StateError{Status: draft.Status, Message: "draft has already been paid"}
	}

	inv, err := p.Gateway.ProcessPayment(ctx, models.PaymentRequest{
		UserID:      clientID,
		Amount:      draft.Price,
		Currency:    draft.Currency,
		Idempotency: draft.ID,
		Description: "Training session with " + draft.TrainerName,
		Metadata: map[string]string{
			"bookingId": draft.ID,
			"trainerId": draft.TrainerID,
			"date":      draft.Date,
			"time":      draft.Time,
		},
	})
	if err != nil {
		return nil, &TransientError{Op: "payment failed", Err: err}
	}

	draft.Status = models.DraftStatusPaid
	if err := p.Store.Put(ctx, clientID, *draft); err != nil {
		return nil, err
	}

	if p.BookingRepo != nil {
		booking := models.Booking{
			ID:          draft.ID,
			ClientID:    draft.ClientID,
			TrainerID:   draft.TrainerID,
			TrainerName: draft.TrainerName,
			Date:        draft.Date,
			Time:        draft.Time,
			Duration:    draft.Duration,
			SessionType: draft.SessionType,
			Notes:       draft.Notes,
			Price:       draft.Price,
			Currency:    draft.Currency,
			Status:      models.BookingStatusUpcoming,
			InvoiceID:   inv.InvoiceID,
		}
		if err := p.BookingRepo.Create(&booking); err != nil {
			logger.Error("Failed to persist confirmed booking",
				zap.String("bookingID", booking.ID), zap.Error(err))
		} else if p.Reminders != nil {
			if err := p.Reminders.ScheduleReminder(ctx, booking); err != nil {
				logger.Error("Failed to schedule session reminder",
					zap.String("bookingID", booking.ID), zap.Error(err))
			}
		}
	}

	p.notifyPaymentSuccess(*draft, inv)

	logger.Info("Booking paid",
		zap.String("draftID", draft.ID),
		zap.String("invoiceID", inv.InvoiceID))
	return draft, nil
}
