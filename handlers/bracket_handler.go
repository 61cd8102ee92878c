package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dosada05/padel-live/middleware"
	"github.com/Dosada05/padel-live/services"
)

type BracketHandler struct {
	bracketService services.BracketService
	displayService services.DisplayService
}

func NewBracketHandler(bs services.BracketService, ds services.DisplayService) *BracketHandler {
	return &BracketHandler{
		bracketService: bs,
		displayService: ds,
	}
}

// LayoutHandler serves GET /tournaments/{tournamentID}/bracket. The optional
// hide_byes query parameter overrides the saved display settings.
func (h *BracketHandler) LayoutHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var hideByes *bool
	if raw := r.URL.Query().Get("hide_byes"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			badRequestResponse(w, r, errors.New("invalid hide_byes query parameter"))
			return
		}
		hideByes = &v
	}

	layout, err := h.bracketService.Layout(r.Context(), id, middleware.BackendTokenFromContext(r.Context()), hideByes)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": layout}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetDisplayHandler serves GET /tournaments/{tournamentID}/display.
func (h *BracketHandler) GetDisplayHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	settings, err := h.displayService.Get(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"display": settings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateDisplayHandler serves PUT /tournaments/{tournamentID}/display.
func (h *BracketHandler) UpdateDisplayHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateDisplaySettingsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	settings, err := h.displayService.Update(r.Context(), id, middleware.BackendTokenFromContext(r.Context()), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"display": settings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetDisplayHandler serves DELETE /tournaments/{tournamentID}/display.
func (h *BracketHandler) ResetDisplayHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	settings, err := h.displayService.Reset(r.Context(), id, middleware.BackendTokenFromContext(r.Context()))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"display": settings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
