// Command revise is the maintenance CLI for the local revision store.
// It imports quiz mistakes into flashcards, prints the collection
// summary, and moves snapshots in and out of the store.
//
// Flags:
//
//	--import-quiz    create cards from the recorded quiz mistakes
//	--stats          print the collection summary
//	--export FILE    write the flashcard snapshot to FILE
//	--import FILE    replace the flashcard snapshot with FILE
//	--reset          reset all scheduling progress, keeping cards
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/pylearn/revision-backend/internal/app"
	"github.com/pylearn/revision-backend/internal/service/review"
)

func main() {
	importQuizFlag := flag.Bool("import-quiz", false, "create cards from the recorded quiz mistakes")
	statsFlag := flag.Bool("stats", false, "print the collection summary")
	exportFlag := flag.String("export", "", "write the flashcard snapshot to FILE")
	importFlag := flag.String("import", "", "replace the flashcard snapshot with FILE")
	resetFlag := flag.Bool("reset", false, "reset all scheduling progress, keeping cards")
	flag.Parse()

	a, err := app.New()
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, a, options{
		importQuiz: *importQuizFlag,
		stats:      *statsFlag,
		exportPath: *exportFlag,
		importPath: *importFlag,
		reset:      *resetFlag,
	}); err != nil {
		a.Log.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type options struct {
	importQuiz bool
	stats      bool
	exportPath string
	importPath string
	reset      bool
}

func run(ctx context.Context, a *app.App, opts options) error {
	ran := false

	if opts.importPath != "" {
		ran = true
		data, err := os.ReadFile(opts.importPath)
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		if err := a.Review.Import(ctx, data); err != nil {
			return fmt.Errorf("import snapshot: %w", err)
		}
		fmt.Printf("imported snapshot from %s\n", opts.importPath)
	}

	if opts.importQuiz {
		ran = true
		n, err := a.Review.ImportFromQuizHistory(ctx)
		if err != nil {
			return fmt.Errorf("import quiz history: %w", err)
		}
		fmt.Printf("created %d new cards from quiz history\n", n)
	}

	if opts.reset {
		ran = true
		if err := a.Review.ResetProgress(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Println("scheduling progress reset")
	}

	if opts.exportPath != "" {
		ran = true
		data, err := a.Review.Export(ctx)
		if err != nil {
			return fmt.Errorf("export snapshot: %w", err)
		}
		if err := os.WriteFile(opts.exportPath, data, 0o644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		fmt.Printf("exported snapshot to %s\n", opts.exportPath)
	}

	if opts.stats || !ran {
		sum, err := a.Review.GetStats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		printSummary(sum)
	}

	return nil
}

func printSummary(sum review.Summary) {
	fmt.Printf("cards:         %d\n", sum.TotalCards)
	fmt.Printf("due now:       %d\n", sum.DueNow)
	fmt.Printf("new:           %d\n", sum.NewCards)
	fmt.Printf("learning:      %d\n", sum.Learning)
	fmt.Printf("mature:        %d\n", sum.Mature)
	fmt.Printf("average ease:  %.2f\n", sum.AverageEase)
	fmt.Printf("total reviews: %d\n", sum.TotalReviews)
	fmt.Printf("learned:       %d\n", sum.CardsLearned)
	fmt.Printf("streak:        %d day(s)\n", sum.CurrentStreak)
	if len(sum.TopicBreakdown) > 0 {
		topics := make([]string, 0, len(sum.TopicBreakdown))
		for topic := range sum.TopicBreakdown {
			topics = append(topics, topic)
		}
		sort.Strings(topics)

		fmt.Println("topics:")
		for _, topic := range topics {
			fmt.Printf("  %-20s %d\n", topic, sum.TopicBreakdown[topic])
		}
	}
}
