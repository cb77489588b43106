package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"caftan-rent/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrRentalNotFound = errors.New("rental not found")
)

// RentalRepository defines the interface for rental data access
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListWithCaftans(ctx context.Context) ([]*domain.RentalWithCaftan, error)
}

type rentalRepository struct {
	db *sql.DB
}

// NewRentalRepository creates a new instance of RentalRepository
func NewRentalRepository(db *sql.DB) RentalRepository {
	return &rentalRepository{db: db}
}

// Create inserts a new rental into the database using parameterized queries
func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `
		INSERT INTO rentals (id, customer_name, caftan_id, start_date, end_date, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		rental.ID,
		rental.CustomerName,
		rental.CaftanID,
		rental.StartDate,
		rental.EndDate,
		rental.TotalPrice,
		rental.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create rental: %w", err)
	}

	return nil
}

// Delete removes a rental from the database using parameterized queries
func (r *rentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rentals WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete rental: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrRentalNotFound
	}

	return nil
}

// ListWithCaftans retrieves all rentals joined with their caftan,
// newest first
func (r *rentalRepository) ListWithCaftans(ctx context.Context) ([]*domain.RentalWithCaftan, error) {
	query := `
		SELECT r.id, r.customer_name, r.caftan_id, r.start_date, r.end_date, r.total_price, r.created_at,
		       c.id, c.name, c.size, c.price_per_day, c.image_url, c.availability, c.created_at
		FROM rentals r
		INNER JOIN caftans c ON c.id = r.caftan_id
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	defer rows.Close()

	rentals := []*domain.RentalWithCaftan{}
	for rows.Next() {
		rental := &domain.RentalWithCaftan{}
		err := rows.Scan(
			&rental.ID,
			&rental.CustomerName,
			&rental.CaftanID,
			&rental.StartDate,
			&rental.EndDate,
			&rental.TotalPrice,
			&rental.CreatedAt,
			&rental.Caftan.ID,
			&rental.Caftan.Name,
			&rental.Caftan.Size,
			&rental.Caftan.PricePerDay,
			&rental.Caftan.ImageURL,
			&rental.Caftan.Availability,
			&rental.Caftan.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rental: %w", err)
		}
		rentals = append(rentals, rental)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rentals: %w", err)
	}

	return rentals, nil
}
