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

type HeroHandler struct {
	heroService  *service.HeroService
	mediaService *service.MediaService
}

func NewHeroHandler(heroService *service.HeroService, mediaService *service.MediaService) *HeroHandler {
	return &HeroHandler{heroService: heroService, mediaService: mediaService}
}

type HeroRequest struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Tier        string   `json:"tier"`
	MetaScore   int      `json:"metaScore"`
	Counters    []string `json:"counters"`
	WeakAgainst []string `json:"weakAgainst"`
	ImageURL    string   `json:"imageUrl"`
	Note        string   `json:"note"`
	VersionID   *string  `json:"versionId"`
}

type HeroResponse struct {
	ID          string   `json:"id"`
	VersionID   *string  `json:"versionId,omitempty"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Tier        string   `json:"tier"`
	MetaScore   int      `json:"metaScore"`
	Counters    []string `json:"counters"`
	WeakAgainst []string `json:"weakAgainst"`
	ImageURL    string   `json:"imageUrl"`
	Note        string   `json:"note"`
}

type HeroesResponse struct {
	Heroes []HeroResponse `json:"heroes"`
}

func heroResponse(h *domain.Hero) HeroResponse {
	var weak []string
	json.Unmarshal(h.WeakAgainst, &weak)
	return HeroResponse{
		ID:          h.ID,
		VersionID:   h.VersionID,
		Name:        h.Name,
		Role:        string(h.Role),
		Tier:        string(h.Tier),
		MetaScore:   h.MetaScore,
		Counters:    h.CounterNames(),
		WeakAgainst: weak,
		ImageURL:    h.ImageURL,
		Note:        h.Note,
	}
}

func heroInput(req HeroRequest) service.HeroInput {
	return service.HeroInput{
		Name:        req.Name,
		Role:        domain.HeroRole(req.Role),
		Tier:        domain.HeroTier(req.Tier),
		MetaScore:   req.MetaScore,
		Counters:    req.Counters,
		WeakAgainst: req.WeakAgainst,
		ImageURL:    req.ImageURL,
		Note:        req.Note,
		VersionID:   req.VersionID,
	}
}

// isHeroValidationErr maps hero input problems onto a 400.
func isHeroValidationErr(err error) bool {
	return errors.Is(err, domain.ErrHeroNameRequired) ||
		errors.Is(err, domain.ErrInvalidRole) ||
		errors.Is(err, domain.ErrInvalidTier)
}

func (h *HeroHandler) List(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.heroService.ListHeroes(r.Context(), r.URL.Query().Get("version"))
	if err != nil {
		log.Printf("ERROR [hero.List]: %v", err)
		http.Error(w, "Failed to list heroes", http.StatusInternalServerError)
		return
	}

	resp := HeroesResponse{Heroes: make([]HeroResponse, len(heroes))}
	for i, hero := range heroes {
		resp.Heroes[i] = heroResponse(hero)
	}
	writeJSON(w, resp)
}

func (h *HeroHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req HeroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	hero, err := h.heroService.CreateHero(r.Context(), heroInput(req))
	if err != nil {
		if isHeroValidationErr(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [hero.Create]: %v", err)
		http.Error(w, "Failed to create hero", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(heroResponse(hero))
}

func (h *HeroHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req HeroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	hero, err := h.heroService.UpdateHero(r.Context(), id, heroInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			http.Error(w, "Hero not found", http.StatusNotFound)
			return
		}
		if isHeroValidationErr(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [hero.Update] heroID=%s: %v", id, err)
		http.Error(w, "Failed to update hero", http.StatusInternalServerError)
		return
	}

	writeJSON(w, heroResponse(hero))
}

func (h *HeroHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.heroService.DeleteHero(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			http.Error(w, "Hero not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [hero.Delete] heroID=%s: %v", id, err)
		http.Error(w, "Failed to delete hero", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]bool{"success": true})
}

func (h *HeroHandler) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.heroService.SeedStarterPack(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrKnowledgeBaseNotEmpty) {
			http.Error(w, "Knowledge base already has heroes", http.StatusConflict)
			return
		}
		log.Printf("ERROR [hero.Seed]: %v", err)
		http.Error(w, "Failed to seed starter pack", http.StatusInternalServerError)
		return
	}

	resp := HeroesResponse{Heroes: make([]HeroResponse, len(seeded))}
	for i, hero := range seeded {
		resp.Heroes[i] = heroResponse(hero)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// UploadImage pushes a hero portrait to the media cloud and saves the
// delivery URL on the hero document.
func (h *HeroHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.mediaService.Available() {
		http.Error(w, "Media cloud is offline", http.StatusServiceUnavailable)
		return
	}

	hero, err := h.heroService.GetHero(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			http.Error(w, "Hero not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [hero.UploadImage] heroID=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.mediaService.UploadHeroImage(r.Context(), hero.ID, file)
	if err != nil {
		log.Printf("ERROR [hero.UploadImage] heroID=%s: %v", id, err)
		http.Error(w, "Failed to upload image", http.StatusBadGateway)
		return
	}

	updated, err := h.heroService.UpdateHero(r.Context(), hero.ID, service.HeroInput{
		Name:        hero.Name,
		Role:        hero.Role,
		Tier:        hero.Tier,
		MetaScore:   hero.MetaScore,
		Counters:    hero.CounterNames(),
		WeakAgainst: heroResponse(hero).WeakAgainst,
		ImageURL:    url,
		Note:        hero.Note,
		VersionID:   hero.VersionID,
	})
	if err != nil {
		log.Printf("ERROR [hero.UploadImage] save heroID=%s: %v", id, err)
		http.Error(w, "Failed to save image URL", http.StatusInternalServerError)
		return
	}

	writeJSON(w, heroResponse(updated))
}
