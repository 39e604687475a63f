// Package layout раскладывает нормализованные статьи по полосам выпуска.
// Все операции чистые и детерминированные: одинаковый вход даёт одинаковую вёрстку.
package layout

import "github.com/maine/historical_times/internal/press"

// Section — одна полоса: рубрика и её статьи в порядке поступления.
type Section struct {
	Category press.CategoryDefinition `json:"category"`
	Articles []press.HistoricalEvent  `json:"articles"`
}

// FrontPage — первая полоса: главная статья и врезка в боковой колонке.
type FrontPage struct {
	Feature *press.HistoricalEvent `json:"feature,omitempty"`
	Sidebar *press.HistoricalEvent `json:"sidebar,omitempty"`
}

// Layout — свёрстанный выпуск.
type Layout struct {
	FrontPage FrontPage `json:"front_page"`
	Sections  []Section `json:"sections"`
}

// Build группирует статьи по рубрикам в заданном порядке. Первая и вторая
// статьи пачки становятся главной и врезкой (они остаются и в своих полосах).
// Статьи рубрики uncategorized собираются в отдельную полосу в конце; пустые
// полосы не верстаются.
func Build(events []press.HistoricalEvent, categories []press.CategoryDefinition) Layout {
	byCategory := make(map[string][]press.HistoricalEvent, len(categories))
	for _, event := range events {
		byCategory[event.Category] = append(byCategory[event.Category], event)
	}

	sections := make([]Section, 0, len(categories)+1)
	for _, category := range categories {
		articles := byCategory[category.ID]
		if len(articles) == 0 {
			continue
		}
		sections = append(sections, Section{Category: category, Articles: articles})
		delete(byCategory, category.ID)
	}

	if leftovers := byCategory[press.CategoryUncategorized]; len(leftovers) > 0 {
		sections = append(sections, Section{
			Category: press.UncategorizedSection(),
			Articles: leftovers,
		})
	}

	var front FrontPage
	if len(events) > 0 {
		feature := events[0]
		front.Feature = &feature
	}
	if len(events) > 1 {
		sidebar := events[1]
		front.Sidebar = &sidebar
	}

	return Layout{FrontPage: front, Sections: sections}
}
