package domain

import (
	"time"

	"github.com/google/uuid"
)

// Caftan represents a rentable catalog item
type Caftan struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Size         string    `json:"size" db:"size"`
	PricePerDay  float64   `json:"price_per_day" db:"price_per_day"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	Availability bool      `json:"availability" db:"availability"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
