package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
	"github.com/callcoachhq/call-coach/internal/usecase/analysis"
	pkgai "github.com/callcoachhq/call-coach/pkg/ai"
	"github.com/callcoachhq/call-coach/pkg/config"
)

// analyzer runs the analysis pipeline against a transcript file without
// touching the database. Useful for trying out prompts and for demo mode.
func main() {
	var (
		file = flag.String("file", "", "path to a transcript text file (required)")
		rep  = flag.String("rep", "Unknown Rep", "sales rep name used in prompts")
		op   = flag.String("op", "all", "operation to run: summarize, score, objections or all")
	)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	transcript, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read transcript file: %v", err)
	}

	pipeline := analysis.NewPipeline(analysis.NewProvider(pkgai.NewGroqClient(&cfg.Groq)))
	if pipeline.Available() {
		log.Println("🤖 Groq provider configured, running live analysis")
	} else {
		log.Println("🎭 No provider credential, running in demo mode")
	}

	call := &entities.Call{
		ID:             uuid.New(),
		Title:          *file,
		OccurredAt:     time.Now().UTC(),
		TranscriptText: string(transcript),
		Source:         "upload",
		Rep:            &entities.Rep{Name: *rep},
	}

	ctx := context.Background()
	out := map[string]interface{}{}

	if *op == "summarize" || *op == "all" {
		summary, err := pipeline.Summarize(ctx, call)
		if err != nil {
			log.Fatalf("Summarize failed: %v", err)
		}
		out["summary"] = summary
	}

	if *op == "score" || *op == "all" {
		score, err := pipeline.Score(ctx, call)
		if err != nil {
			log.Fatalf("Score failed: %v", err)
		}
		out["score"] = score
	}

	if *op == "objections" || *op == "all" {
		objections, err := pipeline.DetectObjections(ctx, call)
		if err != nil {
			log.Fatalf("DetectObjections failed: %v", err)
		}
		out["objections"] = objections
	}

	if len(out) == 0 {
		log.Fatalf("Unknown operation %q", *op)
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(encoded))
}
