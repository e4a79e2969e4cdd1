package booking

import (
	"errors"
	"testing"
	"time"

	"fittribe/models"
)

// lifecycleRepo keeps bookings in memory and tracks status updates.
type lifecycleRepo struct {
	bookings map[string]*models.Booking
}

func newLifecycleRepo(bookings ...models.Booking) *lifecycleRepo {
	r := &lifecycleRepo{bookings: make(map[string]*models.Booking)}
	for i := range bookings {
		b := bookings[i]
		r.bookings[b.ID] = &b
	}
	return r
}

func (r *lifecycleRepo) Create(booking *models.Booking) error {
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *lifecycleRepo) GetByID(id string) (*models.Booking, error) {
	return r.bookings[id], nil
}

func (r *lifecycleRepo) GetByClient(clientID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *lifecycleRepo) GetByTrainer(trainerID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *lifecycleRepo) GetByStatus(status string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *lifecycleRepo) UpdateStatus(id, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	return nil
}

func upcomingBooking(id, date, slot string, duration int) models.Booking {
	return models.Booking{
		ID:       id,
		Date:     date,
		Time:     slot,
		Duration: duration,
		Status:   models.BookingStatusUpcoming,
	}
}

func TestSessionEnd(t *testing.T) {
	end, err := SessionEnd(upcomingBooking("b1", "2026-03-01", "10:00 AM", 60))
	if err != nil {
		t.Fatalf("SessionEnd failed: %v", err)
	}
	want := time.Date(2026, 3, 1, 11, 0, 0, 0, time.Local)
	if !end.Equal(want) {
		t.Fatalf("expected session end %v, got %v", want, end)
	}

	if _, err := SessionEnd(upcomingBooking("b2", "not-a-date", "10:00 AM", 60)); err == nil {
		t.Fatalf("expected error for unparseable session time")
	}
}

func TestCompleteElapsedMarksPastSessions(t *testing.T) {
	repo := newLifecycleRepo(
		upcomingBooking("past", "2026-03-01", "09:00 AM", 60),
		upcomingBooking("future", "2026-03-02", "09:00 AM", 60),
	)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)

	n, err := CompleteElapsed(repo, now)
	if err != nil {
		t.Fatalf("CompleteElapsed failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 completed booking, got %d", n)
	}

	past, _ := repo.GetByID("past")
	if past.Status != models.BookingStatusCompleted {
		t.Fatalf("expected past booking completed, got %q", past.Status)
	}
	future, _ := repo.GetByID("future")
	if future.Status != models.BookingStatusUpcoming {
		t.Fatalf("expected future booking untouched, got %q", future.Status)
	}
}

func TestCompleteElapsedLeavesRunningSessions(t *testing.T) {
	repo := newLifecycleRepo(upcomingBooking("running", "2026-03-01", "10:00 AM", 90))
	// The session runs 10:00-11:30; the sweep fires mid-session.
	now := time.Date(2026, 3, 1, 10, 45, 0, 0, time.Local)

	n, err := CompleteElapsed(repo, now)
	if err != nil {
		t.Fatalf("CompleteElapsed failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no completions mid-session, got %d", n)
	}

	running, _ := repo.GetByID("running")
	if running.Status != models.BookingStatusUpcoming {
		t.Fatalf("expected running booking to stay upcoming, got %q", running.Status)
	}
}

func TestCompleteElapsedIgnoresOtherStatuses(t *testing.T) {
	cancelled := upcomingBooking("cancelled", "2026-03-01", "09:00 AM", 30)
	cancelled.Status = models.BookingStatusCancelled
	done := upcomingBooking("done", "2026-03-01", "09:00 AM", 30)
	done.Status = models.BookingStatusCompleted
	repo := newLifecycleRepo(cancelled, done)

	n, err := CompleteElapsed(repo, time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("CompleteElapsed failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no transitions, got %d", n)
	}

	got, _ := repo.GetByID("cancelled")
	if got.Status != models.BookingStatusCancelled {
		t.Fatalf("expected cancelled booking untouched, got %q", got.Status)
	}
}

func TestCompleteElapsedSkipsUnparseableSessions(t *testing.T) {
	repo := newLifecycleRepo(
		upcomingBooking("bad", "03/01/2026", "09:00 AM", 60),
		upcomingBooking("good", "2026-03-01", "09:00 AM", 60),
	)

	n, err := CompleteElapsed(repo, time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("CompleteElapsed failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 completion alongside the skipped booking, got %d", n)
	}

	bad, _ := repo.GetByID("bad")
	if bad.Status != models.BookingStatusUpcoming {
		t.Fatalf("expected unparseable booking left untouched, got %q", bad.Status)
	}
}
