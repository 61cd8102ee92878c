package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/padel-live/middleware"
	"github.com/Dosada05/padel-live/services"
)

type ExportHandler struct {
	exportService services.ExportService
}

func NewExportHandler(es services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: es}
}

// PairsCSVHandler serves GET /tournaments/{tournamentID}/pairs.csv.
func (h *ExportHandler) PairsCSVHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	// Buffer so a backend failure can still be reported as JSON.
	var buf bytes.Buffer
	if err := h.exportService.WritePairsCSV(r.Context(), id, middleware.BackendTokenFromContext(r.Context()), &buf); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", services.CSVContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="tournament-%d-pairs.csv"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// UploadHandler serves POST /tournaments/{tournamentID}/exports.
func (h *ExportHandler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.exportService.UploadPairsCSV(r.Context(), id, middleware.BackendTokenFromContext(r.Context()))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	headers := http.Header{"Location": []string{result.URL}}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"export": result}, headers); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHandler serves DELETE /tournaments/{tournamentID}/exports/{name}.
func (h *ExportHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	err = h.exportService.DeleteExport(r.Context(), id, middleware.BackendTokenFromContext(r.Context()), chi.URLParam(r, "name"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
