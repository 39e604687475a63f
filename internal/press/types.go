package press

import "time"

// AppTitle — название газеты, выводится в шапке каждого издания.
const AppTitle = "The Historical Times"

// HistoricalEvent описывает одну статью «исторического» выпуска.
// Поля соответствуют JSON-объекту, который возвращает модель.
type HistoricalEvent struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Content           string `json:"content"`
	Category          string `json:"category"`
	ImagePrompt       string `json:"imagePrompt,omitempty"`
	ImageURL          string `json:"imageUrl,omitempty"`
	Byline            string `json:"byline,omitempty"`
	Sources           string `json:"sources,omitempty"`
	HistoricalContext string `json:"historicalContext,omitempty"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// WeatherSummary — сводка погоды для бокового виджета. Все поля — свободный текст.
type WeatherSummary struct {
	Temperature string `json:"temperature"`
	Conditions  string `json:"conditions"`
	Description string `json:"description"`
}

// CategoryDefinition — статическая запись рубрики: идентификатор, подпись и описание.
type CategoryDefinition struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ContextRequest — эфемерный запрос дополнительного контекста по теме статьи.
// Живёт только на время одного обращения к модели.
type ContextRequest struct {
	Topic          string    `json:"topic"`
	HistoricalDate time.Time `json:"historical_date"`
}

// MediaRequest — эфемерный запрос видеореконструкции события.
type MediaRequest struct {
	EventTitle string `json:"event_title"`
	Prompt     string `json:"prompt"`
}

// Edition — полный выпуск: всё, что потребитель (страница или CLI) показывает за один день.
type Edition struct {
	Title           string            `json:"title"`
	HistoricalDate  time.Time         `json:"historical_date"`
	DisplayDate     string            `json:"display_date"`
	PublicationDate string            `json:"publication_date"`
	Events          []HistoricalEvent `json:"events"`
	Weather         *WeatherSummary   `json:"weather,omitempty"`
}
