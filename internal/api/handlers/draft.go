package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"

	"github.com/suppa/taox-brain/internal/api/middleware"
	"github.com/suppa/taox-brain/internal/domain"
	"github.com/suppa/taox-brain/internal/draft"
	"github.com/suppa/taox-brain/internal/repository"
	"github.com/suppa/taox-brain/internal/service"
	"github.com/suppa/taox-brain/internal/ws"
)

type DraftHandler struct {
	heroService *service.HeroService
	comboRepo   repository.ComboRepository
	manager     *draft.Manager
	broadcaster *ws.Broadcaster
	bot         draft.Bot
	botThink    time.Duration
}

func NewDraftHandler(
	heroService *service.HeroService,
	comboRepo repository.ComboRepository,
	manager *draft.Manager,
	broadcaster *ws.Broadcaster,
	botThink time.Duration,
) *DraftHandler {
	return &DraftHandler{
		heroService: heroService,
		comboRepo:   comboRepo,
		manager:     manager,
		broadcaster: broadcaster,
		botThink:    botThink,
	}
}

type StartDraftRequest struct {
	Format string `json:"format"`
}

type SelectHeroRequest struct {
	HeroID string `json:"heroId"`
}

type DraftHeroDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Tier     string `json:"tier"`
	ImageURL string `json:"imageUrl"`
}

type SynergyDTO struct {
	ComboName   string `json:"comboName"`
	BonusScore  int    `json:"bonusScore"`
	Description string `json:"description"`
}

type BotActionDTO struct {
	ActionType string        `json:"actionType"`
	Hero       *DraftHeroDTO `json:"hero"` // nil when the pool was empty
}

// DraftSnapshot is the full rendered draft state: everything the board needs
// to redraw after a transition.
type DraftSnapshot struct {
	Active          bool           `json:"active"`
	Complete        bool           `json:"complete"`
	Format          string         `json:"format"`
	GameNumber      int            `json:"gameNumber"`
	TurnIndex       int            `json:"turnIndex"`
	CurrentTeam     string         `json:"currentTeam,omitempty"`
	ActionType      string         `json:"actionType,omitempty"`
	Bans            []DraftHeroDTO `json:"bans"`
	BlueTeam        []DraftHeroDTO `json:"blueTeam"`
	RedTeam         []DraftHeroDTO `json:"redTeam"`
	ActiveSynergies []SynergyDTO   `json:"activeSynergies"`
	UnavailableIDs  []string       `json:"unavailableIds"`
	BotActions      []BotActionDTO `json:"botActions,omitempty"`
}

func draftHeroDTO(h *domain.Hero) DraftHeroDTO {
	return DraftHeroDTO{
		ID:       h.ID,
		Name:     h.Name,
		Role:     string(h.Role),
		Tier:     string(h.Tier),
		ImageURL: h.ImageURL,
	}
}

func draftHeroDTOs(heroes []*domain.Hero) []DraftHeroDTO {
	out := make([]DraftHeroDTO, len(heroes))
	for i, h := range heroes {
		out[i] = draftHeroDTO(h)
	}
	return out
}

// snapshot renders the session. Synergies are evaluated for the Blue roster
// only; the unavailable set is the analyst's (Blue) view, used to disable the
// hero grid.
func snapshot(s *draft.Session, combos []*domain.Combo) DraftSnapshot {
	snap := DraftSnapshot{
		Active:          s.Active,
		Complete:        s.Complete(),
		Format:          string(s.Format),
		GameNumber:      s.GameNumber,
		TurnIndex:       s.TurnIndex,
		Bans:            draftHeroDTOs(s.Bans),
		BlueTeam:        draftHeroDTOs(s.BlueTeam),
		RedTeam:         draftHeroDTOs(s.RedTeam),
		ActiveSynergies: []SynergyDTO{},
		UnavailableIDs:  []string{},
	}

	if step := s.CurrentStep(); step != nil && s.Active {
		snap.CurrentTeam = string(step.Team)
		snap.ActionType = string(step.ActionType)
	}

	for _, combo := range draft.ActiveCombos(s.BlueTeam, combos) {
		snap.ActiveSynergies = append(snap.ActiveSynergies, SynergyDTO{
			ComboName:   combo.ComboName,
			BonusScore:  combo.BonusScore,
			Description: combo.Description,
		})
	}

	for id := range s.UsedIDs(domain.SideBlue) {
		snap.UnavailableIDs = append(snap.UnavailableIDs, id)
	}

	return snap
}

// runBot plays every consecutive Red step, broadcasting after each accepted
// transition. Returns what the bot did so the response can narrate it.
func (h *DraftHandler) runBot(userID uuid.UUID, s *draft.Session, heroes []*domain.Hero, combos []*domain.Combo) []BotActionDTO {
	var actions []BotActionDTO
	for s.Active && !s.Complete() {
		step := s.CurrentStep()
		if step.Team != domain.SideRed {
			break
		}
		if h.botThink > 0 {
			time.Sleep(h.botThink)
		}
		picked, err := h.bot.Act(s, heroes)
		if err != nil {
			log.Printf("ERROR [draft.runBot] userID=%s: %v", userID, err)
			break
		}
		action := BotActionDTO{ActionType: string(step.ActionType)}
		if picked != nil {
			dto := draftHeroDTO(picked)
			action.Hero = &dto
		}
		actions = append(actions, action)
		h.broadcaster.Publish(userID, snapshot(s, combos))
	}
	return actions
}

// loadTables fetches the per-interaction snapshot of heroes and combos. No
// caching across cycles.
func (h *DraftHandler) loadTables(r *http.Request) ([]*domain.Hero, []*domain.Combo, error) {
	heroes, err := h.heroService.ListHeroes(r.Context(), "")
	if err != nil {
		return nil, nil, err
	}
	combos, err := h.comboRepo.GetAll(r.Context())
	if err != nil {
		return nil, nil, err
	}
	return heroes, combos, nil
}

func (h *DraftHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req StartDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	heroes, combos, err := h.loadTables(r)
	if err != nil {
		log.Printf("ERROR [draft.Start]: %v", err)
		http.Error(w, "Failed to load heroes", http.StatusServiceUnavailable)
		return
	}
	if len(heroes) == 0 {
		http.Error(w, "No heroes found; initialize the Hero CMS first", http.StatusConflict)
		return
	}

	var snap DraftSnapshot
	err = h.manager.With(userID, func(s *draft.Session) error {
		if err := s.Start(domain.SeriesFormat(req.Format)); err != nil {
			return err
		}
		snap = snapshot(s, combos)
		h.broadcaster.Publish(userID, snap)
		return nil
	})
	if err != nil {
		h.writeDraftError(w, "draft.Start", err)
		return
	}

	writeJSON(w, snap)
}

func (h *DraftHandler) Select(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SelectHeroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	heroes, combos, err := h.loadTables(r)
	if err != nil {
		log.Printf("ERROR [draft.Select]: %v", err)
		http.Error(w, "Failed to load heroes", http.StatusServiceUnavailable)
		return
	}

	var selected *domain.Hero
	for _, hero := range heroes {
		if hero.ID == req.HeroID {
			selected = hero
			break
		}
	}
	if selected == nil {
		http.Error(w, "Hero not found", http.StatusNotFound)
		return
	}

	var snap DraftSnapshot
	err = h.manager.With(userID, func(s *draft.Session) error {
		step := s.CurrentStep()
		if s.Active && step != nil && step.Team != domain.SideBlue {
			return domain.ErrNotYourTurn
		}
		if err := s.Advance(selected); err != nil {
			return err
		}
		h.broadcaster.Publish(userID, snapshot(s, combos))

		botActions := h.runBot(userID, s, heroes, combos)
		snap = snapshot(s, combos)
		snap.BotActions = botActions
		return nil
	})
	if err != nil {
		h.writeDraftError(w, "draft.Select", err)
		return
	}

	writeJSON(w, snap)
}

func (h *DraftHandler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	combos, err := h.comboRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ERROR [draft.State]: %v", err)
		http.Error(w, "Failed to load combos", http.StatusServiceUnavailable)
		return
	}

	var snap DraftSnapshot
	_ = h.manager.With(userID, func(s *draft.Session) error {
		snap = snapshot(s, combos)
		return nil
	})

	writeJSON(w, snap)
}

func (h *DraftHandler) NextGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	combos, err := h.comboRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ERROR [draft.NextGame]: %v", err)
		http.Error(w, "Failed to load combos", http.StatusServiceUnavailable)
		return
	}

	var snap DraftSnapshot
	err = h.manager.With(userID, func(s *draft.Session) error {
		if err := s.NextGame(); err != nil {
			return err
		}
		snap = snapshot(s, combos)
		h.broadcaster.Publish(userID, snap)
		return nil
	})
	if err != nil {
		h.writeDraftError(w, "draft.NextGame", err)
		return
	}

	writeJSON(w, snap)
}

func (h *DraftHandler) ResetSeries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var snap DraftSnapshot
	_ = h.manager.With(userID, func(s *draft.Session) error {
		s.ResetSeries()
		snap = snapshot(s, nil)
		h.broadcaster.Publish(userID, snap)
		return nil
	})

	writeJSON(w, snap)
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // internal tool behind auth
	},
}

// Spectate streams draft snapshots for the analyst's session over a
// websocket. Clients only read; the connection closes when they hang up.
func (h *DraftHandler) Spectate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [draft.Spectate] upgrade failed: %v", err)
		return
	}

	h.broadcaster.Subscribe(userID, conn)
	defer func() {
		h.broadcaster.Unsubscribe(userID, conn)
		conn.Close()
	}()

	// Send the current board immediately so a late joiner is not blank.
	combos, err := h.comboRepo.GetAll(r.Context())
	if err == nil {
		_ = h.manager.With(userID, func(s *draft.Session) error {
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			return conn.WriteJSON(snapshot(s, combos))
		})
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *DraftHandler) writeDraftError(w http.ResponseWriter, tag string, err error) {
	switch {
	case errors.Is(err, domain.ErrHeroUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrDraftActive),
		errors.Is(err, domain.ErrDraftNotActive),
		errors.Is(err, domain.ErrDraftComplete),
		errors.Is(err, domain.ErrDraftNotComplete),
		errors.Is(err, domain.ErrNotYourTurn),
		errors.Is(err, domain.ErrInvalidFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("ERROR [%s]: %v", tag, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
