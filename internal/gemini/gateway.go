package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/maine/historical_times/internal/config"
	"github.com/maine/historical_times/internal/fallback"
	"github.com/maine/historical_times/internal/press"
	"github.com/maine/historical_times/internal/prompt"
)

// Заглушки, которые видит читатель вместо ошибок. Формулировки фиксированы.
const (
	contextMockPlaceholder    = "Additional historical context would appear here. Please add your Gemini API key to see real data."
	contextFailurePlaceholder = "Unable to retrieve additional context at this time."
	footageMockPlaceholder    = "Video generation would appear here. Please add your Gemini API key to see real data."
	footageFailurePlaceholder = "Unable to generate video at this time."
	footageModelPlaceholder   = "Unable to generate video: the footage model is not accessible."
	footagePendingMessage     = "Footage request submitted, processing."
)

// Gateway — единственная граница с генеративным сервисом. Все операции
// тотальны: любой сбой деградирует до запасного контента или заглушки,
// наружу ошибка не выходит. Отсутствие клиента (text == nil) — это
// поддерживаемый «режим разработки», а не ошибка.
type Gateway struct {
	text  TextGenerator
	clips ClipGenerator
	cfg   config.Gemini
	store *fallback.Store
}

// NewGateway создаёт шлюз. text == nil включает режим разработки:
// все операции сразу отдают запасной контент.
func NewGateway(text TextGenerator, clips ClipGenerator, cfg config.Gemini, store *fallback.Store) *Gateway {
	if store == nil {
		store = fallback.NewStore()
	}
	return &Gateway{
		text:  text,
		clips: clips,
		cfg:   cfg,
		store: store,
	}
}

// eventsResponse — ожидаемая форма ответа на исследовательский промпт.
type eventsResponse struct {
	Events  []press.HistoricalEvent `json:"events"`
	Weather *press.WeatherSummary   `json:"weather"`
}

// Настройки генерации повторяют выверенные значения для каждого промпта.
var (
	eventsGenConfig = &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.2)),
		TopK:            genai.Ptr(float32(40)),
		TopP:            genai.Ptr(float32(0.95)),
		MaxOutputTokens: genai.Ptr(int32(8192)),
	}
	contextGenConfig = &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.2)),
		MaxOutputTokens: genai.Ptr(int32(2048)),
	}
)

// FetchEvents запрашивает у модели выпуск на историческую дату.
// Возвращает события и, если модель её вернула, сводку погоды. Любой сбой —
// сетевой, парсинга, формы ответа — логируется и заменяется запасным набором.
func (g *Gateway) FetchEvents(ctx context.Context, date time.Time) ([]press.HistoricalEvent, *press.WeatherSummary) {
	if g.text == nil {
		log.Println("Gemini API key not configured, serving default events (development mode)")
		return g.store.DefaultEvents(), nil
	}

	responseText, err := g.text.GenerateText(ctx, g.cfg.ModelResearch, prompt.EventResearch(date), eventsGenConfig)
	if err != nil {
		log.Printf("Fetch events failed, serving default events: %v", err)
		return g.store.DefaultEvents(), nil
	}

	parsed, err := decodeEvents(responseText)
	if err != nil {
		log.Printf("Parse events response failed, serving default events: %v", err)
		return g.store.DefaultEvents(), nil
	}

	return parsed.Events, parsed.Weather
}

// decodeEvents разбирает текст ответа в eventsResponse. Стратегия двухэтапная:
// сначала декодируем текст целиком, затем извлекаем объект из прозы
// (fenced-блок или первый сбалансированный {...}).
func decodeEvents(text string) (eventsResponse, error) {
	var parsed eventsResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		extracted := extractObject(text)
		if extracted == "" {
			return eventsResponse{}, fmt.Errorf("no JSON object found in response")
		}
		if err := json.Unmarshal([]byte(extracted), &parsed); err != nil {
			return eventsResponse{}, fmt.Errorf("unmarshal extracted object: %w", err)
		}
	}

	if parsed.Events == nil {
		return eventsResponse{}, fmt.Errorf("response has no events array")
	}
	return parsed, nil
}

// FetchContext запрашивает историческую справку по теме. Ответ модели
// используется дословно; любой сбой заменяется фиксированной заглушкой.
func (g *Gateway) FetchContext(ctx context.Context, topic string, date time.Time) string {
	if g.text == nil {
		return contextMockPlaceholder
	}

	responseText, err := g.text.GenerateText(ctx, g.cfg.ModelContext, prompt.AdditionalContext(topic, date), contextGenConfig)
	if err != nil {
		log.Printf("Fetch context for %q failed: %v", topic, err)
		return contextFailurePlaceholder
	}

	return responseText
}

// FetchMedia запрашивает видеореконструкцию события. Ответ интерпретируется
// по приоритету: встроенные медиаданные, ссылка на файл, текстовое
// повествование, иначе «запрос принят». Сбой даёт заглушку с причиной,
// когда причину можно назвать.
func (g *Gateway) FetchMedia(ctx context.Context, eventTitle, scenePrompt string) string {
	if g.clips == nil {
		return footageMockPlaceholder
	}

	clip, err := g.clips.GenerateClip(ctx, g.cfg.ModelFootage, prompt.CinematicFootage(eventTitle, scenePrompt))
	if err != nil {
		log.Printf("Generate footage for %q failed: %v", eventTitle, err)
		if isModelAccessError(err) {
			return footageModelPlaceholder
		}
		return footageFailurePlaceholder
	}

	switch {
	case clip.DataSize > 0:
		return fmt.Sprintf("Footage generated successfully. Media reference: %s (%d bytes).", clip.MIMEType, clip.DataSize)
	case clip.FileURI != "":
		return fmt.Sprintf("Footage generated successfully. Media reference: %s", clip.FileURI)
	case clip.Narrative != "":
		return fmt.Sprintf("Footage request update: %s", clip.Narrative)
	default:
		return footagePendingMessage
	}
}

// isModelAccessError — модель недоступна для этого ключа или не существует.
func isModelAccessError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") ||
		strings.Contains(msg, "not supported") ||
		strings.Contains(msg, "permission") ||
		strings.Contains(msg, "403")
}
