package service

import (
	"context"
	"fmt"

	"caftan-rent/internal/domain"
	"caftan-rent/internal/repository"

	"github.com/google/uuid"
)

// CaftanService defines the interface for catalog business logic
type CaftanService interface {
	ListCaftans(ctx context.Context) ([]*domain.Caftan, error)
	GetCaftan(ctx context.Context, id uuid.UUID) (*domain.Caftan, error)
}

type caftanService struct {
	caftanRepo repository.CaftanRepository
}

// NewCaftanService creates a new instance of CaftanService
func NewCaftanService(caftanRepo repository.CaftanRepository) CaftanService {
	return &caftanService{caftanRepo: caftanRepo}
}

// ListCaftans returns the full catalog
func (s *caftanService) ListCaftans(ctx context.Context) ([]*domain.Caftan, error) {
	caftans, err := s.caftanRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list caftans: %w", err)
	}
	return caftans, nil
}

// GetCaftan returns a single caftan or repository.ErrCaftanNotFound
func (s *caftanService) GetCaftan(ctx context.Context, id uuid.UUID) (*domain.Caftan, error) {
	caftan, err := s.caftanRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrCaftanNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get caftan: %w", err)
	}
	return caftan, nil
}
