package booking

import (
	"fittribe/config"
	"fittribe/models"
)

// TimeSlots is the fixed list of bookable time-of-day values. Slots are not
// validated against individual trainer calendars.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// Durations is the set of allowed session lengths in minutes.
var Durations = []int{30, 60, 90}

// PriceTable maps a session type to its base price.
type PriceTable struct {
	Virtual  float64
	InPerson float64
	Currency string
}

// PriceTableFromConfig builds the price table from application configuration.
func PriceTableFromConfig() PriceTable {
	return PriceTable{
		Virtual:  config.AppConfig.VirtualSessionPrice,
		InPerson: config.AppConfig.InPersonSessionPrice,
		Currency: config.AppConfig.Currency,
	}
}

// PriceFor returns the base price for a session type. The type must already
// have passed validation.
func (p PriceTable) PriceFor(sessionType string) float64 {
	if sessionType == models.SessionInPerson {
		return p.InPerson
	}
	return p.Virtual
}

// validateInput checks the raw booking form fields against the enumerated
// rules. The first failing field is reported.
func validateInput(input models.DraftInput) error {
	if input.TrainerID == "" {
		return NewValidationError("trainerId", "trainer is required")
	}
	if input.Date == "" {
		return NewValidationError("date", "date is required")
	}
	if !isOfferedSlot(input.Time) {
		return NewValidationError("time", "time must be one of the offered slots")
	}
	if !isAllowedDuration(input.Duration) {
		return NewValidationError("duration", "duration must be 30, 60 or 90 minutes")
	}
	if input.SessionType != models.SessionVirtual && input.SessionType != models.SessionInPerson {
		return NewValidationError("sessionType", "session type must be virtual or in-person")
	}
	return nil
}

func isOfferedSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func isAllowedDuration(minutes int) bool {
	for _, d := range Durations {
		if d == minutes {
			return true
		}
	}
	return false
}
