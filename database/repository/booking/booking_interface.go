package bookingRepo

import "fittribe/models"

// BookingRepository abstracts persistence for confirmed bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByClient(clientID string) ([]models.Booking, error)
	GetByTrainer(trainerID string) ([]models.Booking, error)
	GetByStatus(status string) ([]models.Booking, error)
	UpdateStatus(id, status string) error
}
