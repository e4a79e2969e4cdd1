package models

import "time"

// Draft lifecycle statuses.
const (
	DraftStatusPending = "pending"
	DraftStatusPaid    = "paid"
)

// Session types.
const (
	SessionVirtual  = "virtual"
	SessionInPerson = "in-person"
)

// Booking statuses as shown on dashboards.
const (
	BookingStatusUpcoming  = "upcoming"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// DraftInput is the raw booking form payload, validated before a draft is built.
type DraftInput struct {
	TrainerID   string `json:"trainerId"`
	Date        string `json:"date"` // "YYYY-MM-DD"
	Time        string `json:"time"` // One of the offered slots, e.g. "10:00 AM".
	Duration    int    `json:"duration"`
	SessionType string `json:"sessionType"`
	Notes       string `json:"notes"`
}

// BookingDraft is an unconfirmed, unpaid booking held in the transient draft store.
type BookingDraft struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	TrainerID   string    `json:"trainerId"`
	TrainerName string    `json:"trainerName"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Duration    int       `json:"duration"`
	SessionType string    `json:"sessionType"`
	Notes       string    `json:"notes"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Booking represents a confirmed booking record persisted after payment.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	ClientID    string    `bson:"clientId" json:"clientId"`
	TrainerID   string    `bson:"trainerId" json:"trainerId"`
	TrainerName string    `bson:"trainerName" json:"trainerName"`
	Date        string    `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	Duration    int       `bson:"duration" json:"duration"`
	SessionType string    `bson:"sessionType" json:"sessionType"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Currency    string    `bson:"currency" json:"currency"`
	Status      string    `bson:"status" json:"status"`
	InvoiceID   string    `bson:"invoiceId" json:"invoiceId"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
