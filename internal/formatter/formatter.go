// Package formatter верстает выпуск в простой текстовый «разворот» для CLI.
package formatter

import (
	"fmt"
	"strings"

	"github.com/maine/historical_times/internal/layout"
	"github.com/maine/historical_times/internal/press"
)

const defaultWidth = 80

// Formatter превращает выпуск в плоский текст фиксированной ширины.
type Formatter struct {
	width int
}

// NewFormatter создаёт форматтер. width <= 0 означает ширину по умолчанию.
func NewFormatter(width int) *Formatter {
	if width <= 0 {
		width = defaultWidth
	}
	return &Formatter{width: width}
}

// Render верстает выпуск: шапка, погода, полосы с статьями, подпись о публикации.
func (f *Formatter) Render(edition press.Edition, lay layout.Layout) string {
	var sb strings.Builder

	rule := strings.Repeat("=", f.width)
	thinRule := strings.Repeat("-", f.width)

	sb.WriteString(rule + "\n")
	sb.WriteString(center(strings.ToUpper(edition.Title), f.width) + "\n")
	sb.WriteString(center(edition.DisplayDate, f.width) + "\n")
	sb.WriteString(rule + "\n")

	if edition.Weather != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("WEATHER: %s, %s\n", edition.Weather.Temperature, edition.Weather.Conditions))
		for _, line := range wrap(edition.Weather.Description, f.width) {
			sb.WriteString(line + "\n")
		}
	}

	for _, section := range lay.Sections {
		sb.WriteString("\n" + thinRule + "\n")
		sb.WriteString(center(strings.ToUpper(section.Category.Name), f.width) + "\n")
		sb.WriteString(thinRule + "\n")

		for _, article := range section.Articles {
			sb.WriteString("\n")
			for _, line := range wrap(article.Title, f.width) {
				sb.WriteString(line + "\n")
			}
			if article.Byline != "" {
				for _, line := range wrap(article.Byline, f.width-2) {
					sb.WriteString("  " + line + "\n")
				}
			}
			sb.WriteString("\n")
			for _, line := range wrap(article.Content, f.width) {
				sb.WriteString(line + "\n")
			}
			if article.Sources != "" {
				sb.WriteString("\n")
				for _, line := range wrap(article.Sources, f.width) {
					sb.WriteString(line + "\n")
				}
			}
		}
	}

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString(center("Published "+edition.PublicationDate, f.width) + "\n")

	return sb.String()
}

// center выравнивает строку по центру; строки шире колонки не трогаются.
func center(s string, width int) string {
	pad := (width - len([]rune(s))) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// wrap переносит текст по словам под заданную ширину.
// Слово длиннее строки остаётся на отдельной строке целиком.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)

	return lines
}
