package adaptor

import (
	"encoding/json"
	"net/http"

	"coffee-directory/internal/data/repository"
	"coffee-directory/internal/dto/request"
	"coffee-directory/internal/usecase"
	"coffee-directory/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShopHandler struct {
	service usecase.ShopService
	log     *zap.Logger
}

func NewShopHandler(service usecase.ShopService, log *zap.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /shops
func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.ShopFilter{}

	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}
	if city := r.URL.Query().Get("city"); city != "" {
		filter.City = &city
	}
	if state := r.URL.Query().Get("state"); state != "" {
		filter.State = &state
	}

	shops, err := h.service.ListShops(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.log, err, "list shops")
		return
	}

	utils.ResponseSuccess(w, "Shops retrieved", shops)
}

// Create handles POST /shops
func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ShopRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateShop(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create shop")
		return
	}

	utils.ResponseCreated(w, "Shop successfully created", response)
}

// Get handles GET /shops/{id}
func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "id")

	response, err := h.service.GetShop(r.Context(), shopID)
	if err != nil {
		writeServiceError(w, h.log, err, "get shop")
		return
	}

	utils.ResponseSuccess(w, "Shop retrieved", response)
}

// Update handles PUT /shops/{id}
func (h *ShopHandler) Update(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "id")

	var req request.ShopUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateShop(r.Context(), shopID, &req); err != nil {
		writeServiceError(w, h.log, err, "update shop")
		return
	}

	utils.ResponseSuccess(w, "Successfully updated", nil)
}

// Delete handles DELETE /shops/{id}
func (h *ShopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "id")

	if err := h.service.DeleteShop(r.Context(), shopID); err != nil {
		writeServiceError(w, h.log, err, "delete shop")
		return
	}

	utils.ResponseSuccess(w, "Shop deleted", nil)
}

// AddLocation handles POST /shops/{id}/locations
func (h *ShopHandler) AddLocation(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "id")

	var req request.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.AddLocation(r.Context(), shopID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "add location")
		return
	}

	utils.ResponseCreated(w, "Location successfully added", response)
}

// AddMenuItem handles POST /shops/{id}/menu
func (h *ShopHandler) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "id")

	var req request.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.AddMenuItem(r.Context(), shopID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "add menu item")
		return
	}

	utils.ResponseCreated(w, "Menu item successfully added", response)
}
