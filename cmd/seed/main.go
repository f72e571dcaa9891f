package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/callcoachhq/call-coach/internal/adapter/repository"
	"github.com/callcoachhq/call-coach/internal/domain/entities"
	"github.com/callcoachhq/call-coach/internal/infrastructure/cache"
	"github.com/callcoachhq/call-coach/internal/infrastructure/database"
	"github.com/callcoachhq/call-coach/internal/usecase/analysis"
	"github.com/callcoachhq/call-coach/internal/usecase/calls"
	"github.com/callcoachhq/call-coach/internal/usecase/insights"
	pkgai "github.com/callcoachhq/call-coach/pkg/ai"
	"github.com/callcoachhq/call-coach/pkg/config"
)

// demoUserID is the fixed owner of all seeded records
var demoUserID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

var companies = []string{
	"Acme Corp", "TechStart Inc", "Global Solutions", "Innovate Co",
	"Future Systems", "NextGen Ltd", "SmartBiz", "CloudTech",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Clear existing demo data
	if err := db.Exec("DELETE FROM calls WHERE user_id = ?", demoUserID).Error; err != nil {
		log.Fatalf("Failed to clear calls: %v", err)
	}
	if err := db.Exec("DELETE FROM reps WHERE user_id = ?", demoUserID).Error; err != nil {
		log.Fatalf("Failed to clear reps: %v", err)
	}
	log.Println("Cleared existing demo data")

	store, err := cache.NewStore(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to cache: %v", err)
	}

	callRepo := repository.NewCallRepository(db)
	repRepo := repository.NewRepRepository(db)
	pipeline := analysis.NewPipeline(analysis.NewProvider(pkgai.NewGroqClient(&cfg.Groq)))
	callsService := calls.NewService(callRepo, repRepo, pipeline, logger)
	analysisService := analysis.NewService(
		callRepo,
		pipeline,
		store,
		time.Duration(cfg.Analysis.CacheTTLMinutes)*time.Minute,
		logger,
	)
	insightsService := insights.NewService(callRepo, logger)

	ctx := context.Background()

	// Create reps
	reps := []*entities.Rep{
		entities.NewRep(demoUserID, "Sarah Johnson", "Senior Account Executive", "West Coast"),
		entities.NewRep(demoUserID, "Michael Chen", "Account Executive", "East Coast"),
		entities.NewRep(demoUserID, "Emily Rodriguez", "Sales Development Rep", "Central"),
	}
	for _, rep := range reps {
		if err := repRepo.Create(ctx, rep); err != nil {
			log.Fatalf("Failed to create rep %s: %v", rep.Name, err)
		}
	}
	log.Printf("Created %d reps", len(reps))

	// Create calls and run the full analysis pipeline on each one
	now := time.Now().UTC()
	for i, transcript := range sampleTranscripts {
		rep := reps[i%len(reps)]
		call, err := callsService.CreateCall(ctx, demoUserID, calls.CreateCallInput{
			RepID:          rep.ID,
			Title:          fmt.Sprintf("Discovery Call %d - %s", i+1, companies[i]),
			OccurredAt:     now.AddDate(0, 0, -(7 - i)),
			TranscriptText: transcript,
			Source:         "paste",
		})
		if err != nil {
			log.Fatalf("Failed to create call %d: %v", i+1, err)
		}

		if _, err := analysisService.Summarize(ctx, call.ID, demoUserID); err != nil {
			log.Fatalf("Failed to summarize call %d: %v", i+1, err)
		}
		if _, err := analysisService.Score(ctx, call.ID, demoUserID); err != nil {
			log.Fatalf("Failed to score call %d: %v", i+1, err)
		}
		if _, err := analysisService.DetectObjections(ctx, call.ID, demoUserID); err != nil {
			log.Fatalf("Failed to detect objections for call %d: %v", i+1, err)
		}
	}
	log.Printf("Created %d calls with analysis", len(sampleTranscripts))

	overview, err := insightsService.ComputeOverview(ctx, demoUserID)
	if err != nil {
		log.Fatalf("Failed to compute insights overview: %v", err)
	}
	encoded, err := json.MarshalIndent(overview, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode overview: %v", err)
	}

	log.Println("✅ Seed completed successfully!")
	fmt.Println(string(encoded))
	fmt.Printf("\nDemo user ID: %s\n", demoUserID)
}
