package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/suppa/taox-brain/internal/domain"
	"github.com/suppa/taox-brain/internal/importer"
	"github.com/suppa/taox-brain/internal/service"
)

// 10 MB is plenty for a scrim sheet
const maxUploadSize = 10 << 20

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

type MatchResponse struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Hero       string `json:"hero"`
	Result     string `json:"result"`
	Win        bool   `json:"win"`
	Note       string `json:"note"`
	UploadedAt string `json:"uploadedAt"`
}

type MatchesResponse struct {
	Matches []MatchResponse `json:"matches"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

func matchResponse(m *domain.MatchRecord) MatchResponse {
	return MatchResponse{
		ID:         m.ID,
		Date:       m.Date,
		Hero:       m.Hero,
		Result:     m.Result,
		Win:        m.IsWin(),
		Note:       m.Note,
		UploadedAt: m.UploadedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (h *AnalyticsHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.analyticsService.ListMatches(r.Context())
	if err != nil {
		log.Printf("ERROR [analytics.List]: %v", err)
		http.Error(w, "Failed to list matches", http.StatusInternalServerError)
		return
	}

	resp := MatchesResponse{Matches: make([]MatchResponse, len(matches))}
	for i, m := range matches {
		resp.Matches[i] = matchResponse(m)
	}
	writeJSON(w, resp)
}

func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.Stats(r.Context())
	if err != nil {
		log.Printf("ERROR [analytics.Stats]: %v", err)
		http.Error(w, "Failed to compute stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, summary)
}

// Import accepts a multipart xlsx upload of scrim results.
func (h *AnalyticsHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Upload file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := importer.ParseWorkbook(file)
	if err != nil {
		var missingErr *importer.MissingColumnsError
		if errors.As(err, &missingErr) {
			http.Error(w, missingErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Could not read workbook: "+err.Error(), http.StatusBadRequest)
		return
	}

	count, err := h.analyticsService.AddMatches(r.Context(), rows)
	if err != nil {
		log.Printf("ERROR [analytics.Import]: %v", err)
		http.Error(w, "Failed to store matches", http.StatusInternalServerError)
		return
	}

	writeJSON(w, ImportResponse{Imported: count})
}
