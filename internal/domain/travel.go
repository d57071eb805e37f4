package domain

import (
	"time"

	"github.com/google/uuid"
)

// TravelLog represents one day's travel entry for an employee.
// Records are append-only: owners create them and never edit or delete them.
// TotalKm is derived from the meter readings at creation time; OfficialKm and
// PrivateKm are entered independently by the user and are not required to sum
// to TotalKm.
type TravelLog struct {
	ID         uuid.UUID `json:"id"`
	UserEmail  string    `json:"user_email"`
	Date       time.Time `json:"date"` // calendar date, no time component
	MeterStart float64   `json:"meter_start"`
	MeterEnd   float64   `json:"meter_end"`
	OfficialKm float64   `json:"official_km"`
	PrivateKm  float64   `json:"private_km"`
	TotalKm    float64   `json:"total_km"`
	Remarks    string    `json:"remarks,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ComputeTotal derives the total distance from a pair of meter readings.
// The result is meterEnd - meterStart, clamped to zero when the readings run
// backwards. This is the single authority for the derived field: every caller
// (live preview, submission, reporting) must use it so displayed and stored
// values can never diverge.
func ComputeTotal(meterStart, meterEnd float64) float64 {
	total := meterEnd - meterStart
	if total < 0 {
		return 0
	}
	return total
}
