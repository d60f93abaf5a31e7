package domain

import "errors"

// Content errors
var (
	ErrContentNotFound = errors.New("content not found")
	ErrInvalidContent  = errors.New("content id, text and a known type are required")
)

// Collection errors
var (
	ErrMonsterNotFound   = errors.New("monster not found")
	ErrInvalidComboBonus = errors.New("combo bonus must be a non-negative number")
	ErrInvalidRarity     = errors.New("invalid rarity")
	ErrInvalidRenderSize = errors.New("invalid render size")
)
