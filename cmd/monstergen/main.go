package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/genome"
	"github.com/dom/quiz-monsters/internal/render"
)

func main() {
	id := flag.String("id", "", "Content item id (required)")
	text := flag.String("text", "", "Content text (required)")
	contentType := flag.String("type", string(domain.ContentTypeProverb), "Content type: proverb, idiom or four_character_idiom")
	difficulty := flag.String("difficulty", string(domain.DifficultyElementary), "Difficulty used when rolling a rarity")
	rarity := flag.String("rarity", "", "Rarity tier; rolled when empty")
	combo := flag.Float64("combo", 0, "Combo bonus used when rolling a rarity")
	seed := flag.Uint64("seed", 0, "Seed for the rarity roll; 0 uses a random seed")
	size := flag.Int("size", render.DefaultSize, "SVG size in pixels")
	out := flag.String("out", "", "Output file (default stdout)")
	showDNA := flag.Bool("dna", false, "Print the DNA as JSON to stderr")
	flag.Parse()

	if *id == "" || *text == "" {
		fmt.Fprintln(os.Stderr, "Error: --id and --text are required")
		flag.Usage()
		os.Exit(1)
	}

	content := domain.ContentItem{
		ID:         *id,
		Text:       *text,
		Type:       domain.ContentType(*contentType),
		Difficulty: domain.Difficulty(*difficulty),
	}
	if content.Type.Index() < 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown content type %q\n", *contentType)
		os.Exit(1)
	}

	var tier domain.Rarity
	if *rarity != "" {
		parsed, err := domain.ParseRarity(*rarity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		tier = parsed
	} else {
		src := genome.CryptoSource()
		if *seed != 0 {
			src = genome.NewSeededSource(*seed)
		}
		tier = genome.NewRarityAllocator(src).Allocate(content.Difficulty, *combo)
	}

	synth := genome.NewSynthesizer()
	renderer := render.NewRenderer(synth, render.NewComposer(), render.NewCache())

	dna := synth.Synthesize(content, tier)
	monster := domain.Monster{
		ID:            domain.MonsterID(content),
		Name:          genome.Name(dna),
		Rarity:        tier,
		SourceContent: content,
	}

	if *showDNA {
		enc := json.NewEncoder(os.Stderr)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dna); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	doc := renderer.Render(monster, *size)
	if *out == "" {
		fmt.Println(doc)
		return
	}
	if err := os.WriteFile(*out, []byte(doc), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%s (%s) -> %s\n", monster.Name, monster.Rarity, *out)
}
