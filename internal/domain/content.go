package domain

import "time"

type ContentType string

const (
	ContentTypeProverb            ContentType = "proverb"
	ContentTypeIdiom              ContentType = "idiom"
	ContentTypeFourCharacterIdiom ContentType = "four_character_idiom"
)

// ContentTypeCount is the number of known content types.
const ContentTypeCount = 3

var AllContentTypes = []ContentType{
	ContentTypeProverb,
	ContentTypeIdiom,
	ContentTypeFourCharacterIdiom,
}

// Index returns the position of t in AllContentTypes, or -1 for unknown types.
func (t ContentType) Index() int {
	for i, ct := range AllContentTypes {
		if ct == t {
			return i
		}
	}
	return -1
}

type Difficulty string

const (
	DifficultyElementary Difficulty = "elementary"
	DifficultyMiddle     Difficulty = "middle"
	DifficultyHigh       Difficulty = "high"
)

var AllDifficulties = []Difficulty{
	DifficultyElementary,
	DifficultyMiddle,
	DifficultyHigh,
}

// ContentItem is a piece of learning content. The monster core only uses it
// as seed material.
type ContentItem struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	Text       string      `json:"text" gorm:"not null"`
	Type       ContentType `json:"type" gorm:"not null;index"`
	Difficulty Difficulty  `json:"difficulty" gorm:"not null"`
	Meaning    string      `json:"meaning,omitempty"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func (ContentItem) TableName() string {
	return "contents"
}
