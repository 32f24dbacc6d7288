package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/services"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

type ExportHandler struct {
	export *services.ExportService
	logger *slog.Logger
}

func NewExportHandler(export *services.ExportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{export: export, logger: logger}
}

// Export handles GET /trips/{id}/export
// @Summary Download a trip as PDF
// @Tags trips
// @Produce application/pdf
// @Param id path string true "Trip ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/export [get]
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	pdf, trip, err := h.export.RenderPDF(r.Context(), userID, id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(trip.ID.String())))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		h.logger.Warn("writing export failed", "trip_id", trip.ID, "error", err)
	}
}

// Archive handles POST /trips/{id}/export/archive
// @Summary Store a trip PDF and return a download link
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 201 {object} utils.Envelope{data=dto.ArchiveResponse}
// @Failure 400 {object} dto.ErrorResponse "Storage not configured"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/export/archive [post]
func (h *ExportHandler) Archive(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	res, err := h.export.Archive(r.Context(), userID, id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, dto.ArchiveResponse{Key: res.Key, URL: res.URL}, "Trip archived")
}

func exportFilename(tripID string) string {
	return "trip-" + strings.ReplaceAll(tripID, "-", "")[:8] + ".pdf"
}
