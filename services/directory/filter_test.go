package directory

import (
	"testing"

	"fittribe/models"
)

func fixtureRoster() []models.Trainer {
	return []models.Trainer{
		{ID: "1", FirstName: "John", LastName: "Smith", Specialties: []string{"Yoga", "Meditation"}, HourlyRate: 75, Rating: 4.8},
		{ID: "2", FirstName: "Sarah", LastName: "Johnson", Specialties: []string{"HIIT", "Strength Training"}, HourlyRate: 85, Rating: 4.9},
		{ID: "3", FirstName: "Michael", LastName: "Brown", Specialties: []string{"Nutrition", "Weight Loss"}, HourlyRate: 70, Rating: 4.7},
		{ID: "4", FirstName: "Emily", LastName: "Davis", Specialties: []string{"Pilates", "Flexibility"}, HourlyRate: 80, Rating: 4.9},
		{ID: "5", FirstName: "David", LastName: "Wilson", Specialties: []string{"Strength Training", "Cardio"}, HourlyRate: 90, Rating: 4.6},
		{ID: "6", FirstName: "Jessica", LastName: "Martinez", Specialties: []string{"Yoga", "Meditation", "Flexibility"}, HourlyRate: 75, Rating: 4.8},
		{ID: "7", FirstName: "Robert", LastName: "Taylor", Specialties: []string{"HIIT", "Weight Loss", "Cardio"}, HourlyRate: 95, Rating: 4.7},
		{ID: "8", FirstName: "Amanda", LastName: "Clark", Specialties: []string{"Nutrition", "Weight Loss", "Strength Training"}, HourlyRate: 85, Rating: 4.9},
	}
}

func openCriteria() models.SearchCriteria {
	return models.SearchCriteria{MaxPrice: DefaultMaxPrice}
}

func ids(trainers []models.Trainer) []string {
	out := make([]string, 0, len(trainers))
	for _, t := range trainers {
		out = append(out, t.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []models.Trainer, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected trainers %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected trainers %v, got %v", want, gotIDs)
		}
	}
}

func TestFilterOpenCriteriaReturnsFullRoster(t *testing.T) {
	roster := fixtureRoster()
	got := Filter(roster, openCriteria())
	if len(got) != len(roster) {
		t.Fatalf("expected full roster of %d, got %d", len(roster), len(got))
	}
	assertIDs(t, got, "1", "2", "3", "4", "5", "6", "7", "8")
}

func TestFilterSentinelSpecialtyMatchesAll(t *testing.T) {
	criteria := openCriteria()
	criteria.Specialty = models.SpecialtyAll
	got := Filter(fixtureRoster(), criteria)
	if len(got) != 8 {
		t.Fatalf("expected 8 trainers for sentinel specialty, got %d", len(got))
	}
}

func TestFilterBySpecialtyYoga(t *testing.T) {
	criteria := openCriteria()
	criteria.Specialty = "Yoga"
	got := Filter(fixtureRoster(), criteria)
	assertIDs(t, got, "1", "6")
	if got[0].FirstName != "John" || got[1].FirstName != "Jessica" {
		t.Fatalf("expected John Smith and Jessica Martinez, got %s and %s", got[0].FullName(), got[1].FullName())
	}
}

func TestFilterSpecialtyIsCaseSensitive(t *testing.T) {
	criteria := openCriteria()
	criteria.Specialty = "yoga"
	got := Filter(fixtureRoster(), criteria)
	if len(got) != 0 {
		t.Fatalf("expected no matches for lowercase specialty, got %d", len(got))
	}
}

func TestFilterByNameFragmentIsCaseInsensitive(t *testing.T) {
	criteria := openCriteria()
	criteria.Name = "jOhN"
	got := Filter(fixtureRoster(), criteria)
	// Matches both "John Smith" and "Sarah Johnson".
	assertIDs(t, got, "1", "2")
}

func TestFilterByMinRating(t *testing.T) {
	criteria := openCriteria()
	criteria.MinRating = 4.9
	got := Filter(fixtureRoster(), criteria)
	assertIDs(t, got, "2", "4", "8")
	for _, tr := range got {
		if tr.Rating < 4.9 {
			t.Fatalf("trainer %s has rating %.1f below threshold", tr.ID, tr.Rating)
		}
	}
}

func TestFilterByMaxPriceIsInclusive(t *testing.T) {
	criteria := openCriteria()
	criteria.MaxPrice = 75
	got := Filter(fixtureRoster(), criteria)
	assertIDs(t, got, "1", "3", "6")
}

func TestFilterCombinesAllPredicates(t *testing.T) {
	got := Filter(fixtureRoster(), models.SearchCriteria{
		Name:      "a",
		Specialty: "Weight Loss",
		MinRating: 4.7,
		MaxPrice:  90,
	})
	// "a" appears in Michael Brown and Amanda Clark among Weight Loss trainers;
	// Robert Taylor is excluded on price.
	assertIDs(t, got, "3", "8")
}

func TestFilterPreservesRosterOrder(t *testing.T) {
	criteria := openCriteria()
	criteria.MinRating = 4.8
	got := Filter(fixtureRoster(), criteria)
	assertIDs(t, got, "1", "2", "4", "6", "8")
}

func TestFilterInvertedBoundsYieldNoResults(t *testing.T) {
	criteria := openCriteria()
	criteria.MaxPrice = -10
	if got := Filter(fixtureRoster(), criteria); len(got) != 0 {
		t.Fatalf("expected no results for negative price ceiling, got %d", len(got))
	}

	criteria = openCriteria()
	criteria.MinRating = 5.5
	if got := Filter(fixtureRoster(), criteria); len(got) != 0 {
		t.Fatalf("expected no results for impossible rating floor, got %d", len(got))
	}
}

func TestFilterDoesNotMutateRoster(t *testing.T) {
	roster := fixtureRoster()
	criteria := openCriteria()
	criteria.Specialty = "Yoga"
	Filter(roster, criteria)
	if len(roster) != 8 || roster[0].ID != "1" || roster[7].ID != "8" {
		t.Fatalf("roster was mutated by Filter")
	}
}

func TestFilterEmptyRoster(t *testing.T) {
	if got := Filter(nil, openCriteria()); len(got) != 0 {
		t.Fatalf("expected empty result for empty roster, got %d", len(got))
	}
}
