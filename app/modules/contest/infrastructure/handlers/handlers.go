package contesthandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/artfest/gallery-api/app/httputil"
	contestservice "github.com/artfest/gallery-api/app/modules/contest/application"
	contesttime "github.com/artfest/gallery-api/app/modules/contest/timeutil"
)

// Handlers exposes the contest clock over HTTP.
type Handlers struct {
	service contestservice.Service
	parser  *contesttime.EndTimeParser
	logger  *slog.Logger
}

func NewHandlers(service contestservice.Service, parser *contesttime.EndTimeParser, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, parser: parser, logger: logger}
}

type statusResponse struct {
	State            string  `json:"state"`
	EndTime          *string `json:"end_time,omitempty"`
	RemainingSeconds *int64  `json:"remaining_seconds,omitempty"`
	WinnerArtworkID  *string `json:"winner_artwork_id,omitempty"`
	WinnerScore      *int    `json:"winner_score,omitempty"`
}

// GetStatus serves the public countdown: remaining time while open, the
// winner once ended.
func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.service.Status()

	resp := statusResponse{State: string(status.State)}
	if !status.EndTime.IsZero() {
		endTime := status.EndTime.Format(time.RFC3339)
		resp.EndTime = &endTime
	}
	if status.State == contestservice.StateOpen {
		remaining := int64(status.Remaining / time.Second)
		resp.RemainingSeconds = &remaining
	}
	if status.Winner != nil {
		resp.WinnerArtworkID = &status.Winner.ArtworkID
		resp.WinnerScore = &status.Winner.TotalScore
	}

	httputil.Respond(w, http.StatusOK, resp)
}

type updateEndTimeRequest struct {
	EndTime string `json:"end_time"`
}

// UpdateEndTime sets a new contest deadline. Accepts RFC3339 or natural
// language ("friday 6pm").
func (h *Handlers) UpdateEndTime(w http.ResponseWriter, r *http.Request) {
	var req updateEndTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	endTime, err := h.parser.Parse(req.EndTime, time.Now())
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdateEndTime(r.Context(), endTime); err != nil {
		h.logger.Error("Failed to update end time", slog.Any("error", err))
		httputil.ServiceError(w, err)
		return
	}

	httputil.Respond(w, http.StatusOK, map[string]string{
		"end_time": endTime.Format(time.RFC3339),
	})
}

// StandingsPNG renders the current standings as a bar chart.
func (h *Handlers) StandingsPNG(w http.ResponseWriter, r *http.Request) {
	png, err := h.service.StandingsChartPNG(r.Context())
	if err != nil {
		h.logger.Error("Failed to render standings chart", slog.Any("error", err))
		httputil.ServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// StandingsXLSX exports the current standings as a spreadsheet.
func (h *Handlers) StandingsXLSX(w http.ResponseWriter, r *http.Request) {
	workbook, err := h.service.StandingsWorkbook(r.Context())
	if err != nil {
		h.logger.Error("Failed to export standings workbook", slog.Any("error", err))
		httputil.ServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="standings.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}
