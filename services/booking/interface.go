package booking

import (
	"context"

	bookingRepo "fittribe/database/repository/booking"
	trainerRepo "fittribe/database/repository/trainer"
	userRepo "fittribe/database/repository/user"
	"fittribe/models"
	"fittribe/services/payment"
)

// DraftPipeline defines the interface for the booking draft flow between
// creation, confirmation and payment.
type DraftPipeline interface {
	CreateDraft(ctx context.Context, clientID string, input models.DraftInput) (*models.BookingDraft, error)
	GetDraft(ctx context.Context, clientID string) (*models.BookingDraft, error)
	MarkPaid(ctx context.Context, clientID, draftID string) (*models.BookingDraft, error)
	CancelDraft(ctx context.Context, clientID string) error
}

// ReminderScheduler enqueues a session reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, booking models.Booking) error
}

// DefaultDraftPipeline implements DraftPipeline.
type DefaultDraftPipeline struct {
	Store       DraftStore
	Prices      PriceTable
	TrainerRepo trainerRepo.TrainerRepository
	BookingRepo bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
	Gateway     payment.Gateway
	Reminders   ReminderScheduler
}
