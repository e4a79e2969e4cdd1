package models

import "time"

type Notification struct {
	ID        string         `json:"id" bson:"id"`
	Type      string         `json:"type" bson:"type"`
	Message   string         `json:"message" bson:"message"`
	Data      map[string]any `json:"data,omitempty" bson:"data,omitempty"`
	Read      bool           `json:"read" bson:"read"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// ReminderPayload is the asynq task payload for session reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	ClientID  string `json:"clientId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
