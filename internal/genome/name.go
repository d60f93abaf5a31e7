package genome

import (
	"strings"

	"github.com/dom/quiz-monsters/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var bodyNouns = [BodyTypeCount]string{
	"Blobbit", "Shardling", "Emberkin", "Puffwisp", "Starling", "Prismo", "Sproutle", "Wyrm",
}

var rarityTitles = [domain.RarityCount]string{"", "", "Elder", "Ancient"}

// Name derives a display name from the DNA, e.g. "Ancient Wise Wyrm".
func Name(dna DNA) string {
	parts := make([]string, 0, 3)
	if dna.Rarity.Valid() && rarityTitles[dna.Rarity] != "" {
		parts = append(parts, rarityTitles[dna.Rarity])
	}
	if dna.Personality.Trait != "" {
		parts = append(parts, cases.Title(language.English).String(dna.Personality.Trait))
	}
	parts = append(parts, bodyNouns[dna.BodyType.Clamp()])
	return strings.Join(parts, " ")
}
