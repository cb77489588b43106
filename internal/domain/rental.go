package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Rental represents a booking of a caftan for a date range.
//
// TotalPrice is a snapshot computed at creation time from the caftan's
// price per day. Later price changes never affect existing rentals.
type Rental struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	CaftanID     uuid.UUID `json:"caftan_id" db:"caftan_id"`
	StartDate    time.Time `json:"start_date" db:"start_date"`
	EndDate      time.Time `json:"end_date" db:"end_date"`
	TotalPrice   float64   `json:"total_price" db:"total_price"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RentalWithCaftan is a rental joined with its caftan for listing responses
type RentalWithCaftan struct {
	Rental
	Caftan Caftan `json:"caftan"`
}

// DurationDays returns the inclusive day count of the rental: the number of
// whole days between start and end date plus one, so both endpoints count.
func (r *Rental) DurationDays() int {
	start := truncateToDay(r.StartDate)
	end := truncateToDay(r.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// TotalPriceFor computes the rental price for a given per-day rate,
// rounded to two decimals
func (r *Rental) TotalPriceFor(pricePerDay float64) float64 {
	total := float64(r.DurationDays()) * pricePerDay
	return math.Round(total*100) / 100
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
