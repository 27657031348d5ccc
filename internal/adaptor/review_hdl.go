package adaptor

import (
	"encoding/json"
	"net/http"

	"coffee-directory/internal/dto/request"
	"coffee-directory/internal/usecase"
	"coffee-directory/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// Add handles POST /shops/{id}/reviews
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	shopID := chi.URLParam(r, "id")

	var req request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.AddReview(r.Context(), userID, shopID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "add review")
		return
	}

	utils.ResponseCreated(w, "Review successfully added", response)
}
