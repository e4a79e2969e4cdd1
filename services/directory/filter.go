package directory

import (
	"strings"

	"fittribe/models"
)

// DefaultMaxPrice is the price ceiling applied when the client supplies none.
const DefaultMaxPrice = 200

// Filter returns the trainers matching every criterion, preserving roster
// order. It is a pure function: the roster is never mutated and no external
// state is touched.
//
// Matching rules:
//   - Name: case-insensitive substring over "First Last"; empty matches all.
//   - Specialty: empty or the "All Specialties" sentinel matches all;
//     otherwise exact (case-sensitive) membership in the trainer's set.
//   - Rating: trainer rating >= MinRating, inclusive.
//   - Price: hourly rate <= MaxPrice, inclusive.
//
// Inverted bounds (negative MaxPrice, MinRating above 5) fall through the
// plain comparisons and simply yield no results.
func Filter(trainers []models.Trainer, criteria models.SearchCriteria) []models.Trainer {
	fragment := strings.ToLower(strings.TrimSpace(criteria.Name))

	matched := make([]models.Trainer, 0, len(trainers))
	for _, t := range trainers {
		if !matchesName(t, fragment) {
			continue
		}
		if !matchesSpecialty(t, criteria.Specialty) {
			continue
		}
		if t.Rating < criteria.MinRating {
			continue
		}
		if t.HourlyRate > criteria.MaxPrice {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

func matchesName(t models.Trainer, fragment string) bool {
	if fragment == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.FullName()), fragment)
}

func matchesSpecialty(t models.Trainer, specialty string) bool {
	if specialty == "" || specialty == models.SpecialtyAll {
		return true
	}
	for _, s := range t.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}
