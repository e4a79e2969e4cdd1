package models

import "time"

// Roles.
const (
	RoleClient  = "client"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// User represents a platform account (client, trainer or admin).
type User struct {
	ID            string         `bson:"id" json:"id"`
	FirstName     string         `bson:"firstName" json:"firstName"`
	LastName      string         `bson:"lastName" json:"lastName"`
	Email         string         `bson:"email" json:"email"`
	Role          string         `bson:"role" json:"role"`
	PasswordHash  string         `bson:"passwordHash" json:"-"`
	TokenHash     string         `bson:"tokenHash,omitempty" json:"-"`
	ProfileImage  string         `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID           string `json:"id"`
	Token        string `json:"token"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}
