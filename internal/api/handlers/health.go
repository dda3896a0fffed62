package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/suppa/taox-brain/internal/service"
)

// HealthHandler reports the status of the server and its collaborators.
type HealthHandler struct {
	db           *gorm.DB
	mediaService *service.MediaService
}

func NewHealthHandler(db *gorm.DB, mediaService *service.MediaService) *HealthHandler {
	return &HealthHandler{db: db, mediaService: mediaService}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Media    string `json:"media"`
}

// Status returns 200 with per-collaborator states. A degraded collaborator
// does not fail the endpoint; clients decide which features to disable.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Database: "ok", Media: "ok"}

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(r.Context()) != nil {
		resp.Database = "unavailable"
		resp.Status = "degraded"
	}
	if !h.mediaService.Available() {
		resp.Media = "unconfigured"
		if resp.Status == "ok" {
			resp.Status = "degraded"
		}
	}

	writeJSON(w, resp)
}
