package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"caftan-rent/internal/domain"
	"caftan-rent/internal/repository"

	"github.com/google/uuid"
)

const (
	// DateLayout is the wire format for rental dates
	DateLayout = "2006-01-02"

	// MaxCustomerNameLength bounds the customer name field
	MaxCustomerNameLength = 255
)

// ValidationErrors carries field-level validation messages for a rejected
// request. All rules are checked before any write, so a rejected request
// never leaves a partial record behind.
type ValidationErrors struct {
	Fields map[string]string
}

func (e *ValidationErrors) Error() string {
	return "validation failed"
}

func newValidationErrors() *ValidationErrors {
	return &ValidationErrors{Fields: make(map[string]string)}
}

func (e *ValidationErrors) add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// CreateRentalInput is the typed request for creating a rental
type CreateRentalInput struct {
	CustomerName string
	CaftanID     string
	StartDate    string
	EndDate      string
}

// RentalService defines the interface for rental business logic
type RentalService interface {
	CreateRental(ctx context.Context, input CreateRentalInput) (*domain.RentalWithCaftan, error)
	ListRentals(ctx context.Context) ([]*domain.RentalWithCaftan, error)
	DeleteRental(ctx context.Context, id uuid.UUID) error
}

type rentalService struct {
	rentalRepo repository.RentalRepository
	caftanRepo repository.CaftanRepository

	// now is injectable so the today check is testable
	now func() time.Time
}

// NewRentalService creates a new instance of RentalService
func NewRentalService(rentalRepo repository.RentalRepository, caftanRepo repository.CaftanRepository) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		caftanRepo: caftanRepo,
		now:        time.Now,
	}
}

// CreateRental validates the input, computes the total price from the
// caftan's per-day rate and the inclusive day count, and persists the
// rental.
//
// Availability is deliberately never consulted or mutated: rentals are
// unlimited, and overlapping rentals on the same caftan are accepted.
func (s *rentalService) CreateRental(ctx context.Context, input CreateRentalInput) (*domain.RentalWithCaftan, error) {
	verrs := newValidationErrors()

	customerName := strings.TrimSpace(input.CustomerName)
	if customerName == "" {
		verrs.add("customer_name", "The customer name field is required.")
	} else if utf8.RuneCountInString(customerName) > MaxCustomerNameLength {
		verrs.add("customer_name", fmt.Sprintf("The customer name may not be greater than %d characters.", MaxCustomerNameLength))
	}

	startDate, startErr := time.Parse(DateLayout, input.StartDate)
	if startErr != nil {
		verrs.add("start_date", "The start date is not a valid date.")
	} else {
		today := truncateToDay(s.now())
		if startDate.Before(today) {
			verrs.add("start_date", "The start date must be a date after or equal to today.")
		}
	}

	endDate, endErr := time.Parse(DateLayout, input.EndDate)
	if endErr != nil {
		verrs.add("end_date", "The end date is not a valid date.")
	} else if startErr == nil && !endDate.After(startDate) {
		verrs.add("end_date", "The end date must be a date after the start date.")
	}

	// The caftan must exist before any price computation can happen
	var caftan *domain.Caftan
	caftanID, err := uuid.Parse(input.CaftanID)
	if err != nil {
		verrs.add("caftan_id", "The selected caftan is invalid.")
	} else {
		caftan, err = s.caftanRepo.FindByID(ctx, caftanID)
		if err != nil {
			if err == repository.ErrCaftanNotFound {
				verrs.add("caftan_id", "The selected caftan is invalid.")
			} else {
				return nil, fmt.Errorf("failed to resolve caftan: %w", err)
			}
		}
	}

	if len(verrs.Fields) > 0 {
		return nil, verrs
	}

	rental := &domain.Rental{
		ID:           uuid.New(),
		CustomerName: customerName,
		CaftanID:     caftan.ID,
		StartDate:    startDate,
		EndDate:      endDate,
		CreatedAt:    time.Now(),
	}
	rental.TotalPrice = rental.TotalPriceFor(caftan.PricePerDay)

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, fmt.Errorf("failed to create rental: %w", err)
	}

	return &domain.RentalWithCaftan{Rental: *rental, Caftan: *caftan}, nil
}

// ListRentals returns all rentals newest first, each with its caftan embedded
func (s *rentalService) ListRentals(ctx context.Context) ([]*domain.RentalWithCaftan, error) {
	rentals, err := s.rentalRepo.ListWithCaftans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	return rentals, nil
}

// DeleteRental removes a rental by id, or repository.ErrRentalNotFound.
// The caftan's availability flag is left untouched.
func (s *rentalService) DeleteRental(ctx context.Context, id uuid.UUID) error {
	if err := s.rentalRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrRentalNotFound {
			return err
		}
		return fmt.Errorf("failed to delete rental: %w", err)
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
