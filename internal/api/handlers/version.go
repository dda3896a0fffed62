package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suppa/taox-brain/internal/domain"
	"github.com/suppa/taox-brain/internal/service"
)

type VersionHandler struct {
	versionService *service.VersionService
}

func NewVersionHandler(versionService *service.VersionService) *VersionHandler {
	return &VersionHandler{versionService: versionService}
}

type VersionRequest struct {
	Name string `json:"name"`
}

type VersionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

type VersionsResponse struct {
	Versions []VersionResponse `json:"versions"`
}

type CloneResponse struct {
	Version      VersionResponse `json:"version"`
	HeroesCopied int             `json:"heroesCopied"`
}

func versionResponse(v *domain.PatchVersion) VersionResponse {
	return VersionResponse{
		ID:        v.ID,
		Name:      v.Name,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (h *VersionHandler) List(w http.ResponseWriter, r *http.Request) {
	versions, err := h.versionService.ListVersions(r.Context())
	if err != nil {
		log.Printf("ERROR [version.List]: %v", err)
		http.Error(w, "Failed to list versions", http.StatusInternalServerError)
		return
	}

	resp := VersionsResponse{Versions: make([]VersionResponse, len(versions))}
	for i, v := range versions {
		resp.Versions[i] = versionResponse(v)
	}
	writeJSON(w, resp)
}

func (h *VersionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req VersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	version, err := h.versionService.CreateVersion(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrVersionNameRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [version.Create]: %v", err)
		http.Error(w, "Failed to create version", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(versionResponse(version))
}

func (h *VersionHandler) Clone(w http.ResponseWriter, r *http.Request) {
	sourceID := chi.URLParam(r, "id")

	var req VersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	version, copied, err := h.versionService.CloneVersion(r.Context(), sourceID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrVersionNameRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, service.ErrVersionNotFound) {
			http.Error(w, "Source version not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [version.Clone] sourceID=%s: %v", sourceID, err)
		http.Error(w, "Failed to clone version", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CloneResponse{
		Version:      versionResponse(version),
		HeroesCopied: copied,
	})
}
