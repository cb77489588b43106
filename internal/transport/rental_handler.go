package transport

import (
	"errors"
	"net/http"
	"time"

	"caftan-rent/internal/domain"
	"caftan-rent/internal/middleware"
	"caftan-rent/internal/repository"
	"caftan-rent/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRentalRequest represents the rental creation payload
type CreateRentalRequest struct {
	CustomerName string `json:"customer_name" validate:"required,max=255"`
	CaftanID     string `json:"caftan_id" validate:"required"`
	StartDate    string `json:"start_date" validate:"required"`
	EndDate      string `json:"end_date" validate:"required"`
}

// RentalPayload represents a rental in API responses. Dates are rendered
// as YYYY-MM-DD and duration_days is computed at serialization time.
type RentalPayload struct {
	ID           string         `json:"id"`
	CustomerName string         `json:"customer_name"`
	CaftanID     string         `json:"caftan_id"`
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
	DurationDays int            `json:"duration_days"`
	TotalPrice   float64        `json:"total_price"`
	CreatedAt    time.Time      `json:"created_at"`
	Caftan       *CaftanPayload `json:"caftan,omitempty"`
}

func toRentalPayload(r *domain.Rental) RentalPayload {
	return RentalPayload{
		ID:           r.ID.String(),
		CustomerName: r.CustomerName,
		CaftanID:     r.CaftanID.String(),
		StartDate:    r.StartDate.Format(service.DateLayout),
		EndDate:      r.EndDate.Format(service.DateLayout),
		DurationDays: r.DurationDays(),
		TotalPrice:   r.TotalPrice,
		CreatedAt:    r.CreatedAt,
	}
}

// RentalHandler handles HTTP requests for rentals
type RentalHandler struct {
	rentalService service.RentalService
	logger        *zap.Logger
}

// NewRentalHandler creates a new RentalHandler
func NewRentalHandler(rentalService service.RentalService, logger *zap.Logger) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
		logger:        logger,
	}
}

// RegisterRoutes registers all rental routes
func (h *RentalHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/rentals", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/rentals
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalService.ListRentals(r.Context())
	if err != nil {
		h.logger.Error("Failed to list rentals", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve rentals")
		return
	}

	payloads := make([]RentalPayload, 0, len(rentals))
	for _, rental := range rentals {
		payload := toRentalPayload(&rental.Rental)
		caftan := toCaftanPayload(&rental.Caftan)
		payload.Caftan = &caftan
		payloads = append(payloads, payload)
	}

	middleware.RespondWithSuccess(w, http.StatusOK, "Rentals retrieved successfully", payloads)
}

// Create handles POST /api/rentals
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRentalRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrors := middleware.FormatValidationErrors(err); len(fieldErrors) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrors)
			return
		}

		// JSON decode error
		middleware.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.rentalService.CreateRental(r.Context(), service.CreateRentalInput{
		CustomerName: req.CustomerName,
		CaftanID:     req.CaftanID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		var verrs *service.ValidationErrors
		if errors.As(err, &verrs) {
			middleware.RespondWithValidationErrors(w, verrs.Fields)
			return
		}

		h.logger.Error("Failed to create rental", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Failed to create rental")
		return
	}

	h.logger.Info("Rental created",
		zap.String("rental_id", result.ID.String()),
		zap.String("caftan_id", result.Caftan.ID.String()),
		zap.Float64("total_price", result.TotalPrice),
	)

	caftan := toCaftanPayload(&result.Caftan)
	middleware.RespondWithSuccess(w, http.StatusCreated, "Rental created successfully", map[string]interface{}{
		"rental": toRentalPayload(&result.Rental),
		"caftan": caftan,
	})
}

// Delete handles DELETE /api/rentals/{id}
func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "Rental not found")
		return
	}

	if err := h.rentalService.DeleteRental(r.Context(), id); err != nil {
		if err == repository.ErrRentalNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "Rental not found")
			return
		}

		h.logger.Error("Failed to delete rental", zap.Error(err), zap.String("rental_id", id.String()))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Failed to delete rental")
		return
	}

	h.logger.Info("Rental deleted", zap.String("rental_id", id.String()))
	middleware.RespondWithSuccess(w, http.StatusOK, "Rental deleted successfully", map[string]string{
		"rental_id": id.String(),
	})
}
