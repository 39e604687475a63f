package app

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/maine/historical_times/internal/dates"
	"github.com/maine/historical_times/internal/press"
)

// ErrNotConfigured возвращается, когда оркестратор собран без обязательных зависимостей.
var ErrNotConfigured = errors.New("orchestrator dependencies not configured")

// Gateway — граница с генеративным сервисом. Операции тотальны:
// реализация всегда возвращает пригодный результат, ошибок не бывает.
type Gateway interface {
	FetchEvents(ctx context.Context, date time.Time) ([]press.HistoricalEvent, *press.WeatherSummary)
	FetchContext(ctx context.Context, topic string, date time.Time) string
	FetchMedia(ctx context.Context, eventTitle, prompt string) string
}

// FallbackStore отдаёт детерминированный запасной контент.
type FallbackStore interface {
	SelectStockImage(prompt string) string
	StaticWeather() *press.WeatherSummary
}

// ImageGenerator — внешний генератор изображений. Может отсутствовать:
// тогда иллюстрации выбираются из стокового пула.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Deps перечисляет зависимости оркестратора.
type Deps struct {
	Dates      *dates.Provider
	Gateway    Gateway
	Fallback   FallbackStore
	Images     ImageGenerator
	Categories []press.CategoryDefinition
}

// Orchestrator собирает выпуск и обслуживает запросы контекста и видео.
// Вся деградация уже произошла на границе шлюза, поэтому LoadDailyContent
// не падает из-за внешнего сервиса.
type Orchestrator struct {
	dates      *dates.Provider
	gateway    Gateway
	fallback   FallbackStore
	images     ImageGenerator
	categories []press.CategoryDefinition

	slots requestSlots
}

// New создаёт оркестратор из зависимостей.
func New(deps Deps) (*Orchestrator, error) {
	if deps.Gateway == nil || deps.Fallback == nil {
		return nil, ErrNotConfigured
	}
	if deps.Dates == nil {
		deps.Dates = dates.NewProvider(nil, 0)
	}
	if len(deps.Categories) == 0 {
		deps.Categories = press.DefaultCategories()
	}
	return &Orchestrator{
		dates:      deps.Dates,
		gateway:    deps.Gateway,
		fallback:   deps.Fallback,
		images:     deps.Images,
		categories: deps.Categories,
	}, nil
}

// Categories возвращает рубрики выпуска в порядке вёрстки.
func (o *Orchestrator) Categories() []press.CategoryDefinition {
	return o.categories
}

// HistoricalDate возвращает дату, на которую собирается выпуск.
func (o *Orchestrator) HistoricalDate() time.Time {
	return o.dates.HistoricalDate()
}

// LoadDailyContent собирает полный выпуск: статьи, сводку погоды и даты
// для шапки. Статьи нормализуются (категории вне перечня уходят в
// uncategorized); если модель не вернула погоду, берётся статическая сводка.
func (o *Orchestrator) LoadDailyContent(ctx context.Context) (press.Edition, error) {
	date := o.dates.HistoricalDate()

	events, weather := o.gateway.FetchEvents(ctx, date)
	events = press.Normalize(events)
	if weather == nil {
		weather = o.fallback.StaticWeather()
	}

	return press.Edition{
		Title:           press.AppTitle,
		HistoricalDate:  date,
		DisplayDate:     dates.FormatForDisplay(date),
		PublicationDate: o.dates.PublicationDate(),
		Events:          events,
		Weather:         weather,
	}, nil
}

// ResolveArticleImage подбирает иллюстрацию статьи. Готовый imageUrl
// проходит насквозь; иначе промпт отправляется генератору изображений,
// а при его отсутствии или сбое выбирается стоковая картинка. Статья
// без промпта и без URL остаётся без иллюстрации.
func (o *Orchestrator) ResolveArticleImage(ctx context.Context, event *press.HistoricalEvent) {
	if event.ImageURL != "" || event.ImagePrompt == "" {
		return
	}

	if o.images != nil {
		url, err := o.images.GenerateImage(ctx, event.ImagePrompt)
		if err == nil && url != "" {
			event.ImageURL = url
			return
		}
		if err != nil {
			log.Printf("Generate image for %q failed, using stock pool: %v", event.ID, err)
		}
	}

	event.ImageURL = o.fallback.SelectStockImage(event.ImagePrompt)
}

// ResolveEditionImages подбирает иллюстрации всем статьям выпуска.
func (o *Orchestrator) ResolveEditionImages(ctx context.Context, edition *press.Edition) {
	for i := range edition.Events {
		o.ResolveArticleImage(ctx, &edition.Events[i])
	}
}

// RequestContext запрашивает историческую справку по теме для слота
// интерфейса (например, модального окна). Второе значение сообщает,
// актуален ли ответ: false значит, что за время запроса по тому же слоту
// начался более новый, и этот результат показывать не нужно.
func (o *Orchestrator) RequestContext(ctx context.Context, slot, topic string) (string, bool) {
	token := o.slots.begin(slot)
	text := o.gateway.FetchContext(ctx, topic, o.dates.HistoricalDate())
	return text, o.slots.current(slot, token)
}

// RequestMedia запрашивает видеореконструкцию события для слота интерфейса.
// Семантика актуальности та же, что у RequestContext.
func (o *Orchestrator) RequestMedia(ctx context.Context, slot, eventTitle, prompt string) (string, bool) {
	token := o.slots.begin(slot)
	text := o.gateway.FetchMedia(ctx, eventTitle, prompt)
	return text, o.slots.current(slot, token)
}

// requestSlots выдаёт токены запросов по слотам интерфейса. Новый запрос
// по слоту делает токены всех предыдущих запросов этого слота устаревшими,
// чем устраняется гонка «поздний ответ затирает более новый».
type requestSlots struct {
	mu     sync.Mutex
	tokens map[string]uint64
}

func (s *requestSlots) begin(slot string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens == nil {
		s.tokens = make(map[string]uint64)
	}
	s.tokens[slot]++
	return s.tokens[slot]
}

func (s *requestSlots) current(slot string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[slot] == token
}
