// Package fallback содержит детерминированный запасной контент: фиксированный
// набор статей за 1924 год и пул стоковых изображений. Используется, когда
// ключ генеративного сервиса не настроен или генерация не удалась.
package fallback

import (
	"github.com/maine/historical_times/internal/press"
)

// DefaultImageURL — изображение по умолчанию для шапки и статей без иллюстрации.
const DefaultImageURL = "https://images.pexels.com/photos/3646172/pexels-photo-3646172.jpeg"

// stockImages — фиксированный пул стоковых изображений. Порядок значим:
// индекс выбирается хэшем промпта, менять порядок — менять привязку картинок.
var stockImages = []string{
	"https://images.pexels.com/photos/2166456/pexels-photo-2166456.jpeg", // Vintage documents
	"https://images.pexels.com/photos/3646172/pexels-photo-3646172.jpeg", // Old newspaper
	"https://images.pexels.com/photos/2873479/pexels-photo-2873479.jpeg", // Historical building
	"https://images.pexels.com/photos/10606398/pexels-photo-10606398.jpeg", // Old train
	"https://images.pexels.com/photos/5858280/pexels-photo-5858280.jpeg", // Vintage portrait
	"https://images.pexels.com/photos/2187439/pexels-photo-2187439.jpeg", // Vintage car
	"https://images.pexels.com/photos/4016459/pexels-photo-4016459.jpeg", // Old architecture
	"https://images.pexels.com/photos/4065624/pexels-photo-4065624.jpeg", // Vintage clothing
}

// Store отдаёт запасной контент. Явно конструируется и передаётся
// в зависимости — никакого глобального состояния.
type Store struct{}

// NewStore создаёт хранилище запасного контента.
func NewStore() *Store {
	return &Store{}
}

// SelectStockImage детерминированно выбирает изображение из пула по промпту.
// Одинаковый промпт всегда даёт одинаковый URL; пустая строка хэшируется в 0.
func (s *Store) SelectStockImage(prompt string) string {
	index := simpleHash(prompt) % int64(len(stockImages))
	return stockImages[index]
}

// StockImages возвращает копию пула (для проверки членства в тестах).
func (s *Store) StockImages() []string {
	pool := make([]string, len(stockImages))
	copy(pool, stockImages)
	return pool
}

// StaticWeather — сводка погоды, когда модель её не вернула.
func (s *Store) StaticWeather() *press.WeatherSummary {
	return &press.WeatherSummary{
		Temperature: "68°F",
		Conditions:  "Partly Cloudy",
		Description: "Mild temperatures with occasional cloud cover expected throughout the day. Gentle easterly winds at 5-10 mph.",
	}
}

// simpleHash — стабильный строковый хэш: h = (h<<5) - h + c по кодовым точкам
// с переполнением в int32, затем модуль. Сохраняет привязку «промпт — картинка»
// между развёртываниями.
func simpleHash(s string) int64 {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}
