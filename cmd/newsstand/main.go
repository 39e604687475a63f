package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/maine/historical_times/internal/app"
	"github.com/maine/historical_times/internal/config"
	"github.com/maine/historical_times/internal/dates"
	"github.com/maine/historical_times/internal/fallback"
	"github.com/maine/historical_times/internal/gemini"
	"github.com/maine/historical_times/internal/server"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	configPath := flag.String("config", "configs/newspaper.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadRoot(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	envCfg := config.LoadEnvConfig()
	if envCfg.ServerAddr != "" {
		cfg.Server.Addr = envCfg.ServerAddr
	}

	store := fallback.NewStore()

	var text gemini.TextGenerator
	var clips gemini.ClipGenerator
	if envCfg.MockMode() {
		log.Println("GEMINI_API_KEY not set, serving fallback content (development mode)")
	} else {
		client, err := gemini.NewClient(ctx, envCfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("create gemini client: %v", err)
		}
		text, clips = client, client
	}

	gateway := gemini.NewGateway(text, clips, cfg.Gemini, store)

	orch, err := app.New(app.Deps{
		Dates:      dates.NewProvider(nil, cfg.Newspaper.YearsBack),
		Gateway:    gateway,
		Fallback:   store,
		Categories: cfg.Newspaper.Categories,
	})
	if err != nil {
		log.Fatalf("build orchestrator: %v", err)
	}

	s := server.New(cfg.Server, orch)
	log.Printf("newsstand listening on %s", cfg.Server.Addr)
	if err := s.Start(); err != nil {
		log.Fatalf("server shutdown: %v", err)
	}
}
