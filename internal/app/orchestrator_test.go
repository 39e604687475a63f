package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maine/historical_times/internal/dates"
	"github.com/maine/historical_times/internal/fallback"
	"github.com/maine/historical_times/internal/press"
)

// mockGateway - мок границы с генеративным сервисом
type mockGateway struct {
	fetchEventsFunc  func(ctx context.Context, date time.Time) ([]press.HistoricalEvent, *press.WeatherSummary)
	fetchContextFunc func(ctx context.Context, topic string, date time.Time) string
	fetchMediaFunc   func(ctx context.Context, eventTitle, prompt string) string
}

func (m *mockGateway) FetchEvents(ctx context.Context, date time.Time) ([]press.HistoricalEvent, *press.WeatherSummary) {
	if m.fetchEventsFunc != nil {
		return m.fetchEventsFunc(ctx, date)
	}
	return nil, nil
}

func (m *mockGateway) FetchContext(ctx context.Context, topic string, date time.Time) string {
	if m.fetchContextFunc != nil {
		return m.fetchContextFunc(ctx, topic, date)
	}
	return ""
}

func (m *mockGateway) FetchMedia(ctx context.Context, eventTitle, prompt string) string {
	if m.fetchMediaFunc != nil {
		return m.fetchMediaFunc(ctx, eventTitle, prompt)
	}
	return ""
}

type mockImageGenerator struct {
	generateImageFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockImageGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if m.generateImageFunc != nil {
		return m.generateImageFunc(ctx, prompt)
	}
	return "", errors.New("not implemented")
}

func fixedDates() *dates.Provider {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	return dates.NewProvider(func() time.Time { return today }, 0)
}

func newTestOrchestrator(t *testing.T, gw Gateway, images ImageGenerator) *Orchestrator {
	t.Helper()
	o, err := New(Deps{
		Dates:    fixedDates(),
		Gateway:  gw,
		Fallback: fallback.NewStore(),
		Images:   images,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return o
}

func TestNewRequiresDependencies(t *testing.T) {
	if _, err := New(Deps{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("New(Deps{}) error = %v, want ErrNotConfigured", err)
	}
}

func TestLoadDailyContent(t *testing.T) {
	gw := &mockGateway{
		fetchEventsFunc: func(ctx context.Context, date time.Time) ([]press.HistoricalEvent, *press.WeatherSummary) {
			return []press.HistoricalEvent{
				{ID: "a", Title: "Headline", Content: "Body", Category: "politics"},
				{ID: "b", Title: "Odd", Content: "Body", Category: "astrology"},
			}, nil
		},
	}
	o := newTestOrchestrator(t, gw, nil)

	edition, err := o.LoadDailyContent(context.Background())
	if err != nil {
		t.Fatalf("LoadDailyContent() error = %v", err)
	}

	if edition.Title != press.AppTitle {
		t.Errorf("edition title = %q, want %q", edition.Title, press.AppTitle)
	}
	if edition.DisplayDate != "SUNDAY, JUNE 15, 1924" {
		t.Errorf("display date = %q, want %q", edition.DisplayDate, "SUNDAY, JUNE 15, 1924")
	}
	if edition.PublicationDate != "June 15, 2024" {
		t.Errorf("publication date = %q, want %q", edition.PublicationDate, "June 15, 2024")
	}
	if len(edition.Events) != 2 {
		t.Fatalf("edition has %d events, want 2", len(edition.Events))
	}
	// Нормализация: неизвестная категория уходит в uncategorized, а не теряется.
	if edition.Events[1].Category != press.CategoryUncategorized {
		t.Errorf("invalid category = %q, want %q", edition.Events[1].Category, press.CategoryUncategorized)
	}
	// Модель погоду не вернула — подставляется статическая сводка.
	if edition.Weather == nil || edition.Weather.Temperature != "68°F" {
		t.Errorf("expected static weather placeholder, got %+v", edition.Weather)
	}
}

func TestLoadDailyContentKeepsModelWeather(t *testing.T) {
	gw := &mockGateway{
		fetchEventsFunc: func(ctx context.Context, date time.Time) ([]press.HistoricalEvent, *press.WeatherSummary) {
			return nil, &press.WeatherSummary{Temperature: "55°F", Conditions: "Rain"}
		},
	}
	o := newTestOrchestrator(t, gw, nil)

	edition, err := o.LoadDailyContent(context.Background())
	if err != nil {
		t.Fatalf("LoadDailyContent() error = %v", err)
	}
	if edition.Weather == nil || edition.Weather.Temperature != "55°F" {
		t.Errorf("model weather was replaced: %+v", edition.Weather)
	}
}

func TestResolveArticleImage(t *testing.T) {
	store := fallback.NewStore()

	tests := []struct {
		name    string
		event   press.HistoricalEvent
		images  ImageGenerator
		wantURL string
	}{
		{
			name:    "existing url passes through",
			event:   press.HistoricalEvent{ID: "a", ImageURL: "https://example.com/fixed.jpeg", ImagePrompt: "ignored"},
			wantURL: "https://example.com/fixed.jpeg",
		},
		{
			name:  "generator success",
			event: press.HistoricalEvent{ID: "a", ImagePrompt: "a 1924 street scene"},
			images: &mockImageGenerator{
				generateImageFunc: func(ctx context.Context, prompt string) (string, error) {
					return "https://example.com/generated.jpeg", nil
				},
			},
			wantURL: "https://example.com/generated.jpeg",
		},
		{
			name:  "generator failure falls back to stock pool",
			event: press.HistoricalEvent{ID: "a", ImagePrompt: "a 1924 street scene"},
			images: &mockImageGenerator{
				generateImageFunc: func(ctx context.Context, prompt string) (string, error) {
					return "", errors.New("image service down")
				},
			},
			wantURL: store.SelectStockImage("a 1924 street scene"),
		},
		{
			name:    "no generator uses stock pool",
			event:   press.HistoricalEvent{ID: "a", ImagePrompt: "a 1924 street scene"},
			wantURL: store.SelectStockImage("a 1924 street scene"),
		},
		{
			name:    "no prompt and no url stays unset",
			event:   press.HistoricalEvent{ID: "a"},
			wantURL: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrchestrator(t, &mockGateway{}, tt.images)

			event := tt.event
			o.ResolveArticleImage(context.Background(), &event)

			if event.ImageURL != tt.wantURL {
				t.Errorf("ImageURL = %q, want %q", event.ImageURL, tt.wantURL)
			}
		})
	}
}

func TestRequestContextStaleResponseDropped(t *testing.T) {
	release := make(chan struct{})
	gw := &mockGateway{
		fetchContextFunc: func(ctx context.Context, topic string, date time.Time) string {
			if topic == "slow" {
				<-release
			}
			return "context for " + topic
		},
	}
	o := newTestOrchestrator(t, gw, nil)

	type result struct {
		text    string
		current bool
	}
	slowDone := make(chan result)
	go func() {
		text, current := o.RequestContext(context.Background(), "context-modal", "slow")
		slowDone <- result{text, current}
	}()

	// Второй запрос по тому же слоту стартует, пока первый висит.
	// Небольшая пауза, чтобы первый запрос гарантированно взял токен.
	time.Sleep(10 * time.Millisecond)
	text, current := o.RequestContext(context.Background(), "context-modal", "fast")
	if !current {
		t.Error("latest request must be current")
	}
	if text != "context for fast" {
		t.Errorf("latest request text = %q", text)
	}

	close(release)
	slow := <-slowDone
	if slow.current {
		t.Error("stale response must be reported as not current")
	}
}

func TestRequestContextIndependentSlots(t *testing.T) {
	gw := &mockGateway{
		fetchContextFunc: func(ctx context.Context, topic string, date time.Time) string {
			return topic
		},
	}
	o := newTestOrchestrator(t, gw, nil)

	if _, current := o.RequestContext(context.Background(), "slot-a", "first"); !current {
		t.Error("slot-a request must be current")
	}
	// Запрос по другому слоту не делает устаревшими запросы slot-a.
	if _, current := o.RequestMedia(context.Background(), "slot-b", "title", "prompt"); !current {
		t.Error("slot-b request must be current")
	}
	if _, current := o.RequestContext(context.Background(), "slot-a", "second"); !current {
		t.Error("second slot-a request must be current")
	}
}
