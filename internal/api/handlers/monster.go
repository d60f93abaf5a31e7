package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dom/quiz-monsters/internal/api/middleware"
	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type MonsterHandler struct {
	collectionService *service.CollectionService
	log               *logrus.Entry
}

func NewMonsterHandler(collectionService *service.CollectionService, log *logrus.Logger) *MonsterHandler {
	return &MonsterHandler{
		collectionService: collectionService,
		log:               log.WithField("handler", "monster"),
	}
}

type GenerateRequest struct {
	ContentID  string  `json:"contentId"`
	ComboBonus float64 `json:"comboBonus"`
}

type MonstersResponse struct {
	Monsters []domain.Monster `json:"monsters"`
	Total    int              `json:"total"`
}

func (h *MonsterHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ContentID == "" {
		http.Error(w, "contentId is required", http.StatusBadRequest)
		return
	}

	result, err := h.collectionService.Generate(r.Context(), userID, req.ContentID, req.ComboBonus)
	if err != nil {
		writeError(w, h.log, "Generate", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.IsNew {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(result)
}

func (h *MonsterHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.collectionService.Unlock(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, "Unlock", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// List returns the collection; ?unlocked=true limits it to unlocked monsters.
func (h *MonsterHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	unlockedOnly, _ := strconv.ParseBool(r.URL.Query().Get("unlocked"))
	monsters, err := h.collectionService.List(r.Context(), userID, unlockedOnly)
	if err != nil {
		writeError(w, h.log, "List", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MonstersResponse{Monsters: monsters, Total: len(monsters)})
}

func (h *MonsterHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	monster, err := h.collectionService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, "Get", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(monster)
}

func (h *MonsterHandler) DNA(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	dna, err := h.collectionService.DNA(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, "DNA", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dna)
}

// Render serves the monster as SVG. ?size= is optional; non-positive sizes
// use the default and large ones are capped.
func (h *MonsterHandler) Render(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, h.log, "Render", fmt.Errorf("%w: %q", domain.ErrInvalidRenderSize, raw))
			return
		}
		size = parsed
	}

	doc, err := h.collectionService.Render(r.Context(), userID, chi.URLParam(r, "id"), size)
	if err != nil {
		writeError(w, h.log, "Render", err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.Write([]byte(doc))
}

func (h *MonsterHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.collectionService.Stats(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, "Stats", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *MonsterHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	monsters, err := h.collectionService.Search(r.Context(), userID, r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, h.log, "Search", err)
		return
	}
	if monsters == nil {
		monsters = []domain.Monster{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MonstersResponse{Monsters: monsters, Total: len(monsters)})
}

func (h *MonsterHandler) Progress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	progress, err := h.collectionService.Progress(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, "Progress", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(progress)
}
