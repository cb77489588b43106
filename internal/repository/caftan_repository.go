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
	ErrCaftanNotFound = errors.New("caftan not found")
)

// CaftanRepository defines the interface for caftan data access
type CaftanRepository interface {
	Create(ctx context.Context, caftan *domain.Caftan) error
	List(ctx context.Context) ([]*domain.Caftan, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Caftan, error)
	Count(ctx context.Context) (int, error)
}

type caftanRepository struct {
	db *sql.DB
}

// NewCaftanRepository creates a new instance of CaftanRepository
func NewCaftanRepository(db *sql.DB) CaftanRepository {
	return &caftanRepository{db: db}
}

// Create inserts a new caftan into the database using parameterized queries.
// Only the seed loader writes caftans; the API surface is read-only.
func (r *caftanRepository) Create(ctx context.Context, caftan *domain.Caftan) error {
	query := `
		INSERT INTO caftans (id, name, size, price_per_day, image_url, availability, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		caftan.ID,
		caftan.Name,
		caftan.Size,
		caftan.PricePerDay,
		caftan.ImageURL,
		caftan.Availability,
		caftan.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create caftan: %w", err)
	}

	return nil
}

// List retrieves all caftans in storage order
func (r *caftanRepository) List(ctx context.Context) ([]*domain.Caftan, error) {
	query := `
		SELECT id, name, size, price_per_day, image_url, availability, created_at
		FROM caftans
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list caftans: %w", err)
	}
	defer rows.Close()

	caftans := []*domain.Caftan{}
	for rows.Next() {
		caftan := &domain.Caftan{}
		err := rows.Scan(
			&caftan.ID,
			&caftan.Name,
			&caftan.Size,
			&caftan.PricePerDay,
			&caftan.ImageURL,
			&caftan.Availability,
			&caftan.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan caftan: %w", err)
		}
		caftans = append(caftans, caftan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating caftans: %w", err)
	}

	return caftans, nil
}

// FindByID retrieves a caftan by ID using parameterized queries
func (r *caftanRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Caftan, error) {
	query := `
		SELECT id, name, size, price_per_day, image_url, availability, created_at
		FROM caftans
		WHERE id = $1
	`

	caftan := &domain.Caftan{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&caftan.ID,
		&caftan.Name,
		&caftan.Size,
		&caftan.PricePerDay,
		&caftan.ImageURL,
		&caftan.Availability,
		&caftan.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCaftanNotFound
		}
		return nil, fmt.Errorf("failed to find caftan by ID: %w", err)
	}

	return caftan, nil
}

// Count returns the number of caftans in the catalog
func (r *caftanRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM caftans`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count caftans: %w", err)
	}
	return count, nil
}
