package models

import "time"

// SpecialtyAll is the sentinel value that disables specialty filtering.
const SpecialtyAll = "All Specialties"

// Specialties is the canonical list offered by the platform.
var Specialties = []string{
	"Yoga",
	"Pilates",
	"HIIT",
	"Strength Training",
	"Cardio",
	"Nutrition",
	"Weight Loss",
	"Meditation",
	"Flexibility",
}

// Trainer represents a trainer profile in the directory.
type Trainer struct {
	ID           string    `bson:"id" json:"id"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	ProfileImage string    `bson:"profileImage" json:"profileImage"`
	Specialties  []string  `bson:"specialties" json:"specialties"`
	Bio          string    `bson:"bio" json:"bio"`
	HourlyRate   float64   `bson:"hourlyRate" json:"hourlyRate"`
	Rating       float64   `bson:"rating" json:"rating"`             // Aggregate rating, 0.0-5.0.
	TotalReviews int       `bson:"totalReviews" json:"totalReviews"` // Non-negative.
	Featured     bool      `bson:"featured,omitempty" json:"featured,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FullName returns the display name used for name matching.
func (t Trainer) FullName() string {
	return t.FirstName + " " + t.LastName
}

// SearchCriteria holds the user-supplied directory filters. The zero value of
// Name and Specialty matches everything; MaxPrice must be set explicitly by
// callers that want a ceiling (DefaultMaxPrice when none was supplied).
type SearchCriteria struct {
	Name      string  `form:"name" json:"name"`
	Specialty string  `form:"specialty" json:"specialty"`
	MinRating float64 `form:"minRating" json:"minRating"`
	MaxPrice  float64 `form:"maxPrice" json:"maxPrice"`
}
