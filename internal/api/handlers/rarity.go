package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/service"
)

type RarityHandler struct {
	collectionService *service.CollectionService
}

func NewRarityHandler(collectionService *service.CollectionService) *RarityHandler {
	return &RarityHandler{collectionService: collectionService}
}

type OddsResponse struct {
	Difficulty domain.Difficulty         `json:"difficulty"`
	ComboBonus float64                   `json:"comboBonus"`
	Odds       map[domain.Rarity]float64 `json:"odds"`
}

// Odds reports the rarity distribution for ?difficulty= and ?combo=.
func (h *RarityHandler) Odds(w http.ResponseWriter, r *http.Request) {
	difficulty := domain.Difficulty(r.URL.Query().Get("difficulty"))
	if difficulty == "" {
		difficulty = domain.DifficultyElementary
	}

	combo := 0.0
	if raw := r.URL.Query().Get("combo"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(parsed) || parsed < 0 {
			http.Error(w, domain.ErrInvalidComboBonus.Error(), http.StatusBadRequest)
			return
		}
		combo = parsed
	}

	resp := OddsResponse{
		Difficulty: difficulty,
		ComboBonus: combo,
		Odds:       h.collectionService.RarityOdds(difficulty, combo),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
