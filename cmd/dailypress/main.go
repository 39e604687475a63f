package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/maine/historical_times/internal/app"
	"github.com/maine/historical_times/internal/archive"
	"github.com/maine/historical_times/internal/config"
	"github.com/maine/historical_times/internal/dates"
	"github.com/maine/historical_times/internal/fallback"
	"github.com/maine/historical_times/internal/formatter"
	"github.com/maine/historical_times/internal/gemini"
	"github.com/maine/historical_times/internal/layout"
)

func main() {
	ctx := context.Background()

	// .env необязателен: в окружениях деплоя переменные приходят напрямую.
	_ = godotenv.Load()

	configPath := flag.String("config", "configs/newspaper.yaml", "path to the configuration file")
	width := flag.Int("width", 80, "column width of the rendered edition")
	reprint := flag.Bool("reprint", false, "print the archived edition for today's historical date without calling the model")
	flag.Parse()

	cfg, err := config.LoadRoot(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	envCfg := config.LoadEnvConfig()

	store := fallback.NewStore()
	provider := dates.NewProvider(nil, cfg.Newspaper.YearsBack)
	editionArchive := archive.NewFileStore(cfg.Newspaper.ArchiveDir)
	render := formatter.NewFormatter(*width)

	if *reprint {
		edition, ok, err := editionArchive.Load(ctx, provider.HistoricalDate())
		if err != nil {
			log.Fatalf("load archived edition: %v", err)
		}
		if !ok {
			log.Fatalf("no archived edition for %s", provider.HistoricalDate().Format("2006-01-02"))
		}
		fmt.Print(render.Render(edition, layout.Build(edition.Events, cfg.Newspaper.Categories)))
		return
	}

	// Без ключа шлюз работает в режиме разработки на запасном контенте.
	var text gemini.TextGenerator
	var clips gemini.ClipGenerator
	if envCfg.MockMode() {
		log.Println("GEMINI_API_KEY not set, building the edition from fallback content")
	} else {
		client, err := gemini.NewClient(ctx, envCfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("create gemini client: %v", err)
		}
		text, clips = client, client
	}

	gateway := gemini.NewGateway(text, clips, cfg.Gemini, store)

	orch, err := app.New(app.Deps{
		Dates:      provider,
		Gateway:    gateway,
		Fallback:   store,
		Categories: cfg.Newspaper.Categories,
	})
	if err != nil {
		log.Fatalf("build orchestrator: %v", err)
	}

	edition, err := orch.LoadDailyContent(ctx)
	if err != nil {
		log.Fatalf("load daily content: %v", err)
	}
	orch.ResolveEditionImages(ctx, &edition)

	if err := editionArchive.Save(ctx, edition); err != nil {
		// Архив — вспомогательная функция, выпуск печатается в любом случае.
		log.Printf("archive edition: %v", err)
	}

	if _, err := fmt.Fprint(os.Stdout, render.Render(edition, layout.Build(edition.Events, cfg.Newspaper.Categories))); err != nil {
		log.Fatalf("write edition: %v", err)
	}
}
