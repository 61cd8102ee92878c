package handlers

import (
	"net/http"

	"github.com/Dosada05/padel-live/middleware"
	"github.com/Dosada05/padel-live/services"
)

type TVHandler struct {
	tvService services.TVService
}

func NewTVHandler(tv services.TVService) *TVHandler {
	return &TVHandler{tvService: tv}
}

// BoardHandler serves GET /tv/tournaments/{tournamentID}.
func (h *TVHandler) BoardHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	board, err := h.tvService.Board(r.Context(), id, middleware.BackendTokenFromContext(r.Context()))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	headers := http.Header{"Cache-Control": []string{"no-store"}}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"board": board}, headers); err != nil {
		serverErrorResponse(w, r, err)
	}
}
