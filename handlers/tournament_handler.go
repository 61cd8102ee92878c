package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Dosada05/padel-live/middleware"
	"github.com/Dosada05/padel-live/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

// ListHandler serves GET /tournaments.
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.ListTournaments(r.Context(), middleware.BackendTokenFromContext(r.Context()))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler serves GET /tournaments/{tournamentID}. Callers the backend
// refuses are sent to the read-only public view instead of an error page.
func (h *TournamentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.GetTournament(r.Context(), id, middleware.BackendTokenFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, services.ErrForbiddenOperation) || errors.Is(err, services.ErrAuthenticationRequired) {
			http.Redirect(w, r, publicTournamentPath(id), http.StatusSeeOther)
			return
		}
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PublicHandler serves GET /public/tournaments/{tournamentID}.
func (h *TournamentHandler) PublicHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.GetPublicTournament(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrForbiddenOperation) || errors.Is(err, services.ErrAuthenticationRequired) {
			notFoundResponse(w, r)
			return
		}
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament, "read_only": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PairsHandler serves GET /tournaments/{tournamentID}/pairs.
func (h *TournamentHandler) PairsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pairs, err := h.tournamentService.ListPlayerPairs(r.Context(), id, middleware.BackendTokenFromContext(r.Context()))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairs": pairs}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MatchFormatsHandler serves GET /match-formats.
func (h *TournamentHandler) MatchFormatsHandler(w http.ResponseWriter, r *http.Request) {
	formats, err := h.tournamentService.ListMatchFormats(r.Context(), middleware.BackendTokenFromContext(r.Context()))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match_formats": formats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GameHandler serves GET /games/{gameID} for the results view.
func (h *TournamentHandler) GameHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.tournamentService.GetGame(r.Context(), id, middleware.BackendTokenFromContext(r.Context()))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func publicTournamentPath(id int) string {
	return fmt.Sprintf("/public/tournaments/%d", id)
}
