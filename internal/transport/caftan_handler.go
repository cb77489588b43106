package transport

import (
	"net/http"

	"caftan-rent/internal/domain"
	"caftan-rent/internal/middleware"
	"caftan-rent/internal/repository"
	"caftan-rent/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CaftanPayload represents a caftan in API responses
type CaftanPayload struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Size         string  `json:"size"`
	PricePerDay  float64 `json:"price_per_day"`
	ImageURL     string  `json:"image_url"`
	Availability bool    `json:"availability"`
}

func toCaftanPayload(c *domain.Caftan) CaftanPayload {
	return CaftanPayload{
		ID:           c.ID.String(),
		Name:         c.Name,
		Size:         c.Size,
		PricePerDay:  c.PricePerDay,
		ImageURL:     c.ImageURL,
		Availability: c.Availability,
	}
}

// CaftanHandler handles HTTP requests for the caftan catalog
type CaftanHandler struct {
	caftanService service.CaftanService
	logger        *zap.Logger
}

// NewCaftanHandler creates a new CaftanHandler
func NewCaftanHandler(caftanService service.CaftanService, logger *zap.Logger) *CaftanHandler {
	return &CaftanHandler{
		caftanService: caftanService,
		logger:        logger,
	}
}

// RegisterRoutes registers all caftan routes
func (h *CaftanHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/caftans", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})
}

// List handles GET /api/caftans
func (h *CaftanHandler) List(w http.ResponseWriter, r *http.Request) {
	caftans, err := h.caftanService.ListCaftans(r.Context())
	if err != nil {
		h.logger.Error("Failed to list caftans", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve caftans")
		return
	}

	payloads := make([]CaftanPayload, 0, len(caftans))
	for _, c := range caftans {
		payloads = append(payloads, toCaftanPayload(c))
	}

	middleware.RespondWithSuccess(w, http.StatusOK, "Caftans retrieved successfully", payloads)
}

// Get handles GET /api/caftans/{id}
func (h *CaftanHandler) Get(w http.ResponseWriter, r *http.Request) {
	// A malformed id can never match a stored caftan
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "Caftan not found")
		return
	}

	caftan, err := h.caftanService.GetCaftan(r.Context(), id)
	if err != nil {
		if err == repository.ErrCaftanNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "Caftan not found")
			return
		}

		h.logger.Error("Failed to get caftan", zap.Error(err), zap.String("caftan_id", id.String()))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve caftan")
		return
	}

	middleware.RespondWithSuccess(w, http.StatusOK, "Caftan retrieved successfully", toCaftanPayload(caftan))
}
