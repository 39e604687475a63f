package gemini

import "strings"

// extractObject ищет первый JSON-объект в свободном тексте ответа модели.
// Сначала пробует fenced-блок (```json ... ``` или просто ``` ... ```),
// затем первый сбалансированный {...} во всём тексте. Возвращает пустую
// строку, если объект не найден.
func extractObject(text string) string {
	if inner := fencedBlock(text); inner != "" {
		if obj := balancedObject(inner); obj != "" {
			return obj
		}
	}
	return balancedObject(text)
}

// fencedBlock возвращает содержимое первого fenced-блока.
// Блок с меткой json предпочитается блоку без метки.
func fencedBlock(text string) string {
	for _, marker := range []string{"```json", "```"} {
		start := strings.Index(text, marker)
		if start == -1 {
			continue
		}
		inner := text[start+len(marker):]
		end := strings.Index(inner, "```")
		if end == -1 {
			continue
		}
		if block := strings.TrimSpace(inner[:end]); block != "" {
			return block
		}
	}
	return ""
}

// balancedObject возвращает первый сбалансированный {...} в тексте.
// Глубина скобок считается с учётом строковых литералов и экранирования:
// фигурные скобки внутри строк не влияют на баланс.
func balancedObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}
