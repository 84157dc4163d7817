package handler

import (
	"net/http"

	"github.com/waypost/api/internal/middleware"
	"github.com/waypost/api/internal/model"
	"github.com/waypost/api/internal/service"
)

// PlaceHandler handles place endpoints
type PlaceHandler struct {
	placeService *service.PlaceService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(placeService *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{placeService: placeService}
}

// createPlaceRequest is the request body for POST /v1/places
type createPlaceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Image       string `json:"image,omitempty"`
}

// updatePlaceRequest is the request body for PATCH /v1/places/{placeId}
type updatePlaceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GetByID handles GET /v1/places/{placeId}
func (h *PlaceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	placeID := "place:" + r.PathValue("placeId")

	place, err := h.placeService.GetByID(r.Context(), placeID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, place)
}

// ListByUser handles GET /v1/users/{userId}/places
func (h *PlaceHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := "user:" + r.PathValue("userId")

	places, err := h.placeService.ListByCreator(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, places)
}

// Create handles POST /v1/places
func (h *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("not authenticated"))
		return
	}

	var req createPlaceRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	place, err := h.placeService.Create(r.Context(), service.CreatePlaceRequest{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Image:       req.Image,
		CreatorID:   userID,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, place)
}

// Update handles PATCH /v1/places/{placeId}
func (h *PlaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("not authenticated"))
		return
	}

	placeID := "place:" + r.PathValue("placeId")

	var req updatePlaceRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	place, err := h.placeService.Update(r.Context(), placeID, userID, service.UpdatePlaceRequest{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, place)
}

// Delete handles DELETE /v1/places/{placeId}
func (h *PlaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("not authenticated"))
		return
	}

	placeID := "place:" + r.PathValue("placeId")

	if err := h.placeService.Delete(r.Context(), placeID, userID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
