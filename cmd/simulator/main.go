package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "seed":
		seedCmd(apiURL, args)
	case "streak":
		streakCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Quiz Simulator - Development tool for exercising the monster collection

USAGE:
  simulator <command> [options]

COMMANDS:
  seed      Import the sample proverb and idiom catalogue
  streak    Register a player, answer a streak of questions and unlock the monsters
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Load the sample catalogue
  simulator seed

  # Answer 10 questions in a row, unlocking every monster
  simulator streak --count=10

  # Answer every question, replay the first three to collect duplicate rewards
  simulator streak --count=0 --repeat=3 --svg-dir=./out`)
}

var sampleCatalogue = []Content{
	{ID: "p001", Text: "가는 말이 고와야 오는 말이 곱다", Type: "proverb", Difficulty: "elementary", Meaning: "Kind words are returned in kind."},
	{ID: "p002", Text: "발 없는 말이 천 리 간다", Type: "proverb", Difficulty: "elementary", Meaning: "Words travel far without legs."},
	{ID: "p003", Text: "낮말은 새가 듣고 밤말은 쥐가 듣는다", Type: "proverb", Difficulty: "middle", Meaning: "Walls have ears."},
	{ID: "p004", Text: "티끌 모아 태산", Type: "proverb", Difficulty: "elementary", Meaning: "Many a little makes a mickle."},
	{ID: "p005", Text: "원숭이도 나무에서 떨어진다", Type: "proverb", Difficulty: "middle", Meaning: "Even experts make mistakes."},
	{ID: "i001", Text: "귀가 얇다", Type: "idiom", Difficulty: "middle", Meaning: "Easily persuaded."},
	{ID: "i002", Text: "발이 넓다", Type: "idiom", Difficulty: "elementary", Meaning: "Knows many people."},
	{ID: "i003", Text: "눈이 높다", Type: "idiom", Difficulty: "elementary", Meaning: "Has high standards."},
	{ID: "f001", Text: "일석이조", Type: "four_character_idiom", Difficulty: "high", Meaning: "Two birds with one stone."},
	{ID: "f002", Text: "고진감래", Type: "four_character_idiom", Difficulty: "high", Meaning: "After hardship comes happiness."},
	{ID: "f003", Text: "동문서답", Type: "four_character_idiom", Difficulty: "middle", Meaning: "An irrelevant answer."},
	{ID: "f004", Text: "우공이산", Type: "four_character_idiom", Difficulty: "high", Meaning: "Perseverance moves mountains."},
}

func seedCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	fmt.Print("Importing sample catalogue... ")
	count, err := client.ImportContents(sampleCatalogue)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (%d items)\n", count)
}

// comboFor grows the combo bonus with the streak length, capped at 0.5.
func comboFor(streak int) float64 {
	return math.Min(float64(streak)*0.05, 0.5)
}

func streakCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("streak", flag.ExitOnError)
	count := fs.Int("count", 10, "Number of questions to answer (0 = whole catalogue)")
	repeat := fs.Int("repeat", 0, "Number of already unlocked monsters to earn again")
	svgDir := fs.String("svg-dir", "", "Write each unlocked monster as SVG into this directory")
	size := fs.Int("size", 200, "SVG size in pixels")
	fs.Parse(args)

	if *count < 0 || *repeat < 0 {
		fmt.Println("Error: --count and --repeat must not be negative")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)

	fmt.Println("=== Quiz Simulator: Answer Streak ===")
	fmt.Println()

	contents, err := client.ListContents()
	if err != nil {
		fmt.Printf("Failed to list contents: %v\n", err)
		os.Exit(1)
	}
	if len(contents) == 0 {
		fmt.Println("The catalogue is empty. Run 'simulator seed' first.")
		os.Exit(1)
	}
	if *count == 0 || *count > len(contents) {
		*count = len(contents)
	}

	fmt.Print("Registering player... ")
	user, token, err := client.RegisterUser("Student")
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (user: %s)\n", user.DisplayName)

	if *svgDir != "" {
		if err := os.MkdirAll(*svgDir, 0o755); err != nil {
			fmt.Printf("Failed to create %s: %v\n", *svgDir, err)
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Printf("Answering %d questions:\n", *count)

	type earnedMonster struct {
		contentID string
		monster   Monster
	}
	var earned []earnedMonster
	for i := 0; i < *count; i++ {
		content := contents[i]
		combo := comboFor(i)

		gen, err := client.Generate(token, content.ID, combo)
		if err != nil {
			fmt.Printf("  [%d/%d] FAILED: %v\n", i+1, *count, err)
			os.Exit(1)
		}
		if _, err := client.Unlock(token, gen.Monster.ID); err != nil {
			fmt.Printf("  [%d/%d] FAILED: %v\n", i+1, *count, err)
			os.Exit(1)
		}

		fmt.Printf("  [%d/%d] %-10s combo %.2f -> %s (%s)\n", i+1, *count, content.ID, combo, gen.Monster.Name, gen.Monster.Rarity)
		earned = append(earned, earnedMonster{contentID: content.ID, monster: gen.Monster})

		if *svgDir != "" {
			doc, err := client.RenderSVG(token, gen.Monster.ID, *size)
			if err != nil {
				fmt.Printf("Warning: failed to render %s: %v\n", gen.Monster.ID, err)
				continue
			}
			path := filepath.Join(*svgDir, gen.Monster.ID+".svg")
			if err := os.WriteFile(path, doc, 0o644); err != nil {
				fmt.Printf("Warning: failed to write %s: %v\n", path, err)
			}
		}
	}

	if *repeat > len(earned) {
		*repeat = len(earned)
	}
	if *repeat > 0 {
		fmt.Println()
		fmt.Printf("Earning %d monsters again:\n", *repeat)
		for _, e := range earned[:*repeat] {
			gen, err := client.Generate(token, e.contentID, 0)
			if err != nil {
				fmt.Printf("  %s FAILED: %v\n", e.monster.ID, err)
				continue
			}
			if gen.Reward != nil {
				fmt.Printf("  %s -> +%d %s\n", e.monster.Name, gen.Reward.Amount, gen.Reward.Kind)
			}
		}
	}

	stats, err := client.GetStats(token)
	if err != nil {
		fmt.Printf("Failed to get stats: %v\n", err)
		os.Exit(1)
	}
	progress, err := client.GetProgress(token)
	if err != nil {
		fmt.Printf("Failed to get progress: %v\n", err)
		os.Exit(1)
	}

	printSummary(stats, progress)
}

func printSummary(stats *Stats, progress *Progress) {
	fmt.Println()
	fmt.Println("=========================================")
	fmt.Println("  COLLECTION SUMMARY")
	fmt.Println("=========================================")
	fmt.Println()
	fmt.Printf("  Unlocked:    %d / %d (%.1f%%)\n", stats.Unlocked, stats.Total, stats.Percentage)
	fmt.Printf("  Milestones:  %v\n", stats.MilestonesReached)
	if stats.NextMilestone > 0 {
		fmt.Printf("  Next:        %d%% in %d monster(s)\n", stats.NextMilestone, stats.MonstersToNextMilestone)
	}

	rarities := make([]string, 0, len(stats.ByRarity))
	for r := range stats.ByRarity {
		rarities = append(rarities, r)
	}
	sort.Strings(rarities)
	for _, r := range rarities {
		c := stats.ByRarity[r]
		fmt.Printf("  %-10s   %d / %d\n", r, c.Unlocked, c.Total)
	}

	fmt.Println()
	fmt.Printf("  Experience:  %d\n", progress.Experience)
	fmt.Printf("  Coins:       %d\n", progress.Coins)
	fmt.Println()
}
