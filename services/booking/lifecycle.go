package booking

import (
	"fmt"
	"time"

	bookingRepo "fittribe/database/repository/booking"
	"fittribe/models"
	"fittribe/utils"

	"go.uber.org/zap"
)

const sessionTimeLayout = "2006-01-02 03:04 PM"

// SessionEnd returns the moment the booked session finishes.
func SessionEnd(b models.Booking) (time.Time, error) {
	start, err := time.ParseInLocation(sessionTimeLayout, b.Date+" "+b.Time, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse session time: %w", err)
	}
	return start.Add(time.Duration(b.Duration) * time.Minute), nil
}

// CompleteElapsed flips upcoming bookings whose session has ended to
// completed, so dashboards separate past and future sessions. Bookings with
// unparseable session times are skipped, not failed. Returns the number of
// bookings transitioned.
func CompleteElapsed(repo bookingRepo.BookingRepository, now time.Time) (int, error) {
	logger := utils.GetLogger()

	upcoming, err := repo.GetByStatus(models.BookingStatusUpcoming)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch upcoming bookings: %w", err)
	}

	completed := 0
	for _, b := range upcoming {
		end, err := SessionEnd(b)
		if err != nil {
			logger.Warn("Skipping booking with unparseable session time",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		if end.After(now) {
			continue
		}
		if err := repo.UpdateStatus(b.ID, models.BookingStatusCompleted); err != nil {
			logger.Error("Failed to complete booking",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		completed++
	}
	return completed, nil
}
