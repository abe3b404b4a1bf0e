package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"leetdeck/internal/app/service"
	"leetdeck/internal/common"

	"github.com/go-chi/chi/v5"
)

type PopupHandler struct {
	tracker *service.TrackerService
}

func NewPopupHandler(tracker *service.TrackerService) *PopupHandler {
	return &PopupHandler{tracker: tracker}
}

func (h *PopupHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.snapshot)
	r.Post("/search", h.search)
	r.Delete("/users/{username}", h.removeUser)
}

func (h *PopupHandler) snapshot(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, h.tracker.Snapshot())
}

type SearchRequest struct {
	Username string `json:"username"`
}

func (h *PopupHandler) search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	card, err := h.tracker.Search(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, common.ErrEmptyInput) {
			// Blank input is ignored, not surfaced as an error.
			common.RespondWithJSON(w, http.StatusOK, h.tracker.Snapshot())
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), bannerMessage(err))
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, card)
}

func (h *PopupHandler) removeUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if _, err := h.tracker.Remove(r.Context(), username); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	// Removal is idempotent; absent usernames still get 204.
	w.WriteHeader(http.StatusNoContent)
}

// bannerMessage keeps API error texts identical to the popup banner texts.
func bannerMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateUser):
		return service.BannerDuplicateUser
	case errors.Is(err, common.ErrFetchFailed):
		return service.BannerFetchFailed
	}
	return err.Error()
}
