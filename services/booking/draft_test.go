package booking

import (
	"context"
	"errors"
	"testing"

	"fittribe/models"

	"go.mongodb.org/mongo-driver/bson"
)

// stubTrainerRepo serves a fixed trainer and fails lookups on demand.
type stubTrainerRepo struct {
	trainer *models.Trainer
	err     error
}

func (s *stubTrainerRepo) Create(trainer *models.Trainer) error   { return nil }
func (s *stubTrainerRepo) Update(trainer *models.Trainer) error   { return nil }
func (s *stubTrainerRepo) Delete(id string) error                 { return nil }
func (s *stubTrainerRepo) GetAll() ([]models.Trainer, error)      { return nil, nil }
func (s *stubTrainerRepo) GetFeatured(int) ([]models.Trainer, error) {
	return nil, nil
}
func (s *stubTrainerRepo) UpdateFields(id string, fields bson.M) error { return nil }
func (s *stubTrainerRepo) GetByID(id string) (*models.Trainer, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.trainer != nil && s.trainer.ID == id {
		return s.trainer, nil
	}
	return nil, nil
}

// stubBookingRepo records created bookings in memory.
type stubBookingRepo struct {
	created []models.Booking
}

func (s *stubBookingRepo) Create(booking *models.Booking) error {
	s.created = append(s.created, *booking)
	return nil
}
func (s *stubBookingRepo) GetByID(id string) (*models.Booking, error)    { return nil, nil }
func (s *stubBookingRepo) GetByClient(string) ([]models.Booking, error)  { return nil, nil }
func (s *stubBookingRepo) GetByTrainer(string) ([]models.Booking, error) { return nil, nil }
func (s *stubBookingRepo) GetByStatus(string) ([]models.Booking, error)  { return nil, nil }
func (s *stubBookingRepo) UpdateStatus(id, status string) error          { return nil }

// stubGateway approves or rejects charges and counts attempts.
type stubGateway struct {
	calls int
	fail  error
}

func (g *stubGateway) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	g.calls++
	if g.fail != nil {
		return nil, g.fail
	}
	return &models.Invoice{
		InvoiceID: "inv-" + req.Idempotency,
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "paid",
	}, nil
}

// stubScheduler records scheduled reminders.
type stubScheduler struct {
	scheduled []models.Booking
}

func (s *stubScheduler) ScheduleReminder(ctx context.Context, booking models.Booking) error {
	s.scheduled = append(s.scheduled, booking)
	return nil
}

func testPrices() PriceTable {
	return PriceTable{Virtual: 50, InPerson: 75, Currency: "USD"}
}

func testPipeline() (*DefaultDraftPipeline, *stubBookingRepo, *stubGateway, *stubScheduler) {
	bookings := &stubBookingRepo{}
	gateway := &stubGateway{}
	scheduler := &stubScheduler{}
	pipeline := &DefaultDraftPipeline{
		Store:  NewMemoryDraftStore(),
		Prices: testPrices(),
		TrainerRepo: &stubTrainerRepo{trainer: &models.Trainer{
			ID: "1", FirstName: "John", LastName: "Smith",
		}},
		BookingRepo: bookings,
		Gateway:     gateway,
		Reminders:   scheduler,
	}
	return pipeline, bookings, gateway, scheduler
}

func validInput() models.DraftInput {
	return models.DraftInput{
		TrainerID:   "1",
		Date:        "2026-09-15",
		Time:        "10:00 AM",
		Duration:    60,
		SessionType: models.SessionVirtual,
		Notes:       "first session",
	}
}

func TestCreateDraftThenGetReturnsSameDraft(t *testing.T) {
	pipeline, _, _, _ := testPipeline()
	ctx := context.Background()

	created, err := pipeline.CreateDraft(ctx, "client-1", validInput())
	if err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated draft ID")
	}
	if created.Status != models.DraftStatusPending {
		t.Fatalf("expected status pending, got %q", created.Status)
	}
	if created.Price != 50 || created.Currency != "USD" {
		t.Fatalf("expected virtual price 50 USD, got %.2f %s", created.Price, created.Currency)
	}
	if created.TrainerName != "John Smith" {
		t.Fatalf("expected trainer name John Smith, got %q", created.TrainerName)
	}

	got, err := pipeline.GetDraft(ctx, "client-1")
	if err != nil {
		t.Fatalf("GetDraft failed: %v", err)
	}
	if got.ID != created.ID || got.Date != created.Date || got.Time != created.Time ||
		got.Duration != created.Duration || got.SessionType != created.SessionType {
		t.Fatalf("stored draft does not match created draft: %+v vs %+v", got, created)
	}
}

func TestCreateDraftInPersonPrice(t *testing.T) {
	pipeline, _, _, _ := testPipeline()
	input := validInput()
	input.SessionType = models.SessionInPerson

	created, err := pipeline.CreateDraft(context.Background(), "client-1", input)
	if err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}
	if created.Price != 75 {
		t.Fatalf("expected in-person price 75, got %.2f", created.Price)
	}
}

func TestCreateDraftOverwritesPriorDraft(t *testing.T) {
	pipeline, _, _, _ := testPipeline()
	ctx := context.Background()

	first, err := pipeline.CreateDraft(ctx, "client-1", validInput())
	if err != nil {
		t.Fatalf("first CreateDraft failed: %v", err)
	}
	input := validInput()
	input.Time = "02:00 PM"
	second, err := pipeline.CreateDraft(ctx, "client-1", input)
	if err != nil {
		t.Fatalf("second CreateDraft failed: %v", err)
	}

	got, err := pipeline.GetDraft(ctx, "client-1")
	if err != nil {
		t.Fatalf("GetDraft failed: %v", err)
	}
	if got.ID == first.ID || got.ID != second.ID {
		t.Fatalf("expected the second draft to replace the first")
	}
	if got.Time != "02:00 PM" {
		t.Fatalf("expected replaced time slot, got %q", got.Time)
	}
}

func TestCreateDraftValidationDoesNotTouchStore(t *testing.T) {
	pipeline, _, _, _ := testPipeline()
	ctx := context.Background()

	cases := []struct {
		field  string
		mutate func(*models.DraftInput)
	}{
		{"trainerId", func(in *models.DraftInput) { in.TrainerID = "" }},
		{"date", func(in *models.DraftInput) { in.Date = "" }},
		{"time", func(in *models.DraftInput) { in.Time = "08:00 AM" }},
		{"duration", func(in *models.DraftInput) { in.Duration = 45 }},
		{"sessionType", func(in *models.DraftInput) { in.SessionType = "hybrid" }},
	}
	for _, tc := range cases {
		input := validInput()
		tc.mutate(&input)
		_, err := pipeline.CreateDraft(ctx, "client-1", input)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError for %s, got %v", tc.field, err)
		}
		if verr.Field != tc.field {
			t.Fatalf("expected failure on field %s, got %s", tc.field, verr.Field)
		}
	}

	if _, err := pipeline.GetDraft(ctx, "client-1"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected empty store after rejected input, got %v", err)
	}
}

func TestCreateDraftUnknownTrainer(t *testing.T) {
	pipeline, _, _, _ := testPipeline()
	input := validInput()
	input.TrainerID = "999"

	_, err := pipeline.CreateDraft(context.Background(), "client-1", input)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "trainerId" {
		t.Fatalf("expected trainerId validation error, got %v", err)
	}
}

func TestCreateDraftTrainerLookupFailure(t *testing.T) {
	pipeline, _, _, _ := testPipeline()
	pipeline.TrainerRepo = &stubTrainerRepo{err: errors.New("mongo down")}

	_, err := pipeline.CreateDraft(context.Background(), "client-1", validInput())
	var terr *TransientError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransientError, got %v", err)
	}
}

func TestGetDraftWhenNoneExists(t *testing.T) {
	pipeline, _, _, _ := testPipeline()
	if _, err := pipeline.GetDraft(context.Background(), "client-1"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestCancelDraftClearsStore(t *testing.T) {
	pipeline, _, _, _ := testPipeline()
	ctx := context.Background()

	if _, err := pipeline.CreateDraft(ctx, "client-1", validInput()); err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}
	if err := pipeline.CancelDraft(ctx, "client-1"); err != nil {
		t.Fatalf("CancelDraft failed: %v", err)
	}
	if _, err := pipeline.GetDraft(ctx, "client-1"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound after cancel, got %v", err)
	}
	// Cancelling again is not an error.
	if err := pipeline.CancelDraft(ctx, "client-1"); err != nil {
		t.Fatalf("repeated CancelDraft failed: %v", err)
	}
}

func TestMarkPaidTransitionsAndPersists(t *testing.T) {
	pipeline, bookings, gateway, scheduler := testPipeline()
	ctx := context.Background()

	draft, err := pipeline.CreateDraft(ctx, "client-1", validInput())
	if err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}

	paid, err := pipeline.MarkPaid(ctx, "client-1", draft.ID)
	if err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}
	if paid.Status != models.DraftStatusPaid {
		t.Fatalf("expected status paid, got %q", paid.Status)
	}
	if gateway.calls != 1 {
		t.Fatalf("expected one charge attempt, got %d", gateway.calls)
	}
	if len(bookings.created) != 1 {
		t.Fatalf("expected one persisted booking, got %d", len(bookings.created))
	}
	booking := bookings.created[0]
	if booking.ID != draft.ID || booking.Status != models.BookingStatusUpcoming {
		t.Fatalf("unexpected persisted booking: %+v", booking)
	}
	if booking.InvoiceID == "" {
		t.Fatalf("expected invoice reference on the persisted booking")
	}
	if len(scheduler.scheduled) != 1 {
		t.Fatalf("expected one reminder scheduled, got %d", len(scheduler.scheduled))
	}

	// The paid draft stays readable for the success view.
	got, err := pipeline.GetDraft(ctx, "client-1")
	if err != nil {
		t.Fatalf("GetDraft after payment failed: %v", err)
	}
	if got.Status != models.DraftStatusPaid {
		t.Fatalf("expected stored draft to be paid, got %q", got.Status)
	}
}

func TestMarkPaidTwiceIsRejected(t *testing.T) {
	pipeline, _, gateway, _ := testPipeline()
	ctx := context.Background()

	draft, err := pipeline.CreateDraft(ctx, "client-1", validInput())
	if err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}
	if _, err := pipeline.MarkPaid(ctx, "client-1", draft.ID); err != nil {
		t.Fatalf("first MarkPaid failed: %v", err)
	}

	_, err = pipeline.MarkPaid(ctx, "client-1", draft.ID)
	var serr *StateError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StateError on second payment, got %v", err)
	}
	if serr.Status != models.DraftStatusPaid {
		t.Fatalf("expected offending status paid, got %q", serr.Status)
	}
	if gateway.calls != 1 {
		t.Fatalf("expected no second charge attempt, got %d", gateway.calls)
	}
}

func TestMarkPaidWithStaleDraftID(t *testing.T) {
	pipeline, _, gateway, _ := testPipeline()
	ctx := context.Background()

	if _, err := pipeline.CreateDraft(ctx, "client-1", validInput()); err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}

	_, err := pipeline.MarkPaid(ctx, "client-1", "stale-id")
	var merr *DraftMismatchError
	if !errors.As(err, &merr) {
		t.Fatalf("expected DraftMismatchError, got %v", err)
	}
	if merr.Requested != "stale-id" {
		t.Fatalf("expected requested id in error, got %q", merr.Requested)
	}
	if gateway.calls != 0 {
		t.Fatalf("expected no charge attempt on mismatch, got %d", gateway.calls)
	}
}

func TestMarkPaidWithoutDraft(t *testing.T) {
	pipeline, _, _, _ := testPipeline()
	if _, err := pipeline.MarkPaid(context.Background(), "client-1", "any"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestMarkPaidGatewayFailureKeepsDraftPending(t *testing.T) {
	pipeline, bookings, gateway, _ := testPipeline()
	gateway.fail = errors.New("card declined")
	ctx := context.Background()

	draft, err := pipeline.CreateDraft(ctx, "client-1", validInput())
	if err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}

	_, err = pipeline.MarkPaid(ctx, "client-1", draft.ID)
	var terr *TransientError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransientError, got %v", err)
	}

	got, err := pipeline.GetDraft(ctx, "client-1")
	if err != nil {
		t.Fatalf("GetDraft failed: %v", err)
	}
	if got.Status != models.DraftStatusPending {
		t.Fatalf("expected draft to stay pending after failed charge, got %q", got.Status)
	}
	if len(bookings.created) != 0 {
		t.Fatalf("expected no persisted booking after failed charge")
	}

	// The draft is still payable after the failure.
	gateway.fail = nil
	if _, err := pipeline.MarkPaid(ctx, "client-1", draft.ID); err != nil {
		t.Fatalf("retry after gateway recovery failed: %v", err)
	}
}

func TestDraftsAreIsolatedPerClient(t *testing.T) {
	pipeline, _, _, _ := testPipeline()
	ctx := context.Background()

	a, err := pipeline.CreateDraft(ctx, "client-a", validInput())
	if err != nil {
		t.Fatalf("CreateDraft for client-a failed: %v", err)
	}
	input := validInput()
	input.SessionType = models.SessionInPerson
	b, err := pipeline.CreateDraft(ctx, "client-b", input)
	if err != nil {
		t.Fatalf("CreateDraft for client-b failed: %v", err)
	}

	if err := pipeline.CancelDraft(ctx, "client-a"); err != nil {
		t.Fatalf("CancelDraft failed: %v", err)
	}
	got, err := pipeline.GetDraft(ctx, "client-b")
	if err != nil {
		t.Fatalf("client-b draft should survive client-a cancel: %v", err)
	}
	if got.ID != b.ID || got.ID == a.ID {
		t.Fatalf("client-b draft was disturbed: %+v", got)
	}
}
