package press

import (
	"strings"

	"github.com/google/uuid"
)

// Normalize приводит статьи из ответа модели к виду, пригодному для вёрстки.
// Правила:
//   - пустые записи (ни заголовка, ни текста) отбрасываются;
//   - статья без id получает сгенерированный UUID;
//   - повторяющийся id внутри пачки отбрасывается (первая запись побеждает);
//   - категория вне фиксированного перечня заменяется на uncategorized,
//     чтобы статья не выпала из выпуска молча.
func Normalize(events []HistoricalEvent) []HistoricalEvent {
	seen := make(map[string]struct{}, len(events))
	normalized := make([]HistoricalEvent, 0, len(events))

	for _, event := range events {
		event.Title = strings.TrimSpace(event.Title)
		event.Content = strings.TrimSpace(event.Content)
		event.Category = strings.ToLower(strings.TrimSpace(event.Category))

		if event.Title == "" && event.Content == "" {
			continue
		}

		if strings.TrimSpace(event.ID) == "" {
			event.ID = uuid.NewString()
		}

		if _, ok := seen[event.ID]; ok {
			continue
		}
		seen[event.ID] = struct{}{}

		if !IsValidCategory(event.Category) {
			event.Category = CategoryUncategorized
		}

		normalized = append(normalized, event)
	}

	return normalized
}
