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

type ComboHandler struct {
	comboService *service.ComboService
}

func NewComboHandler(comboService *service.ComboService) *ComboHandler {
	return &ComboHandler{comboService: comboService}
}

type ComboRequest struct {
	ComboName   string   `json:"comboName"`
	HeroIDs     []string `json:"heroIds"`
	BonusScore  int      `json:"bonusScore"`
	Description string   `json:"description"`
}

type ComboResponse struct {
	ID          string   `json:"id"`
	ComboName   string   `json:"comboName"`
	HeroIDs     []string `json:"heroIds"`
	HeroNames   []string `json:"heroNames"`
	BonusScore  int      `json:"bonusScore"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"createdAt"`
}

type CombosResponse struct {
	Combos []ComboResponse `json:"combos"`
}

func comboValidationStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrComboNameRequired),
		errors.Is(err, domain.ErrComboTooFewHeroes),
		errors.Is(err, domain.ErrComboTooManyHeroes),
		errors.Is(err, domain.ErrComboDuplicateHero):
		return http.StatusBadRequest, true
	case errors.Is(err, domain.ErrComboUnknownHero):
		return http.StatusUnprocessableEntity, true
	}
	return 0, false
}

func (h *ComboHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ComboRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	combo, err := h.comboService.CreateCombo(r.Context(), service.ComboInput{
		ComboName:   req.ComboName,
		HeroIDs:     req.HeroIDs,
		BonusScore:  req.BonusScore,
		Description: req.Description,
	})
	if err != nil {
		if status, ok := comboValidationStatus(err); ok {
			http.Error(w, err.Error(), status)
			return
		}
		log.Printf("ERROR [combo.Create]: %v", err)
		http.Error(w, "Failed to create combo", http.StatusInternalServerError)
		return
	}

	resp := ComboResponse{
		ID:          combo.ID,
		ComboName:   combo.ComboName,
		HeroIDs:     combo.HeroIDList(),
		BonusScore:  combo.BonusScore,
		Description: combo.Description,
		CreatedAt:   combo.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

func (h *ComboHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.comboService.ListCombos(r.Context())
	if err != nil {
		log.Printf("ERROR [combo.List]: %v", err)
		http.Error(w, "Failed to list combos", http.StatusInternalServerError)
		return
	}

	resp := CombosResponse{Combos: make([]ComboResponse, len(views))}
	for i, view := range views {
		resp.Combos[i] = ComboResponse{
			ID:          view.Combo.ID,
			ComboName:   view.Combo.ComboName,
			HeroIDs:     view.Combo.HeroIDList(),
			HeroNames:   view.HeroNames,
			BonusScore:  view.Combo.BonusScore,
			Description: view.Combo.Description,
			CreatedAt:   view.Combo.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	writeJSON(w, resp)
}

func (h *ComboHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.comboService.DeleteCombo(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrComboNotFound) {
			http.Error(w, "Combo not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [combo.Delete] comboID=%s: %v", id, err)
		http.Error(w, "Failed to delete combo", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]bool{"success": true})
}
