package dates

import (
	"strings"
	"time"
)

// DefaultYearsBack — на сколько лет назад смотрит газета.
const DefaultYearsBack = 100

// Clock определяет источник времени (удобно подменять в тестах).
type Clock func() time.Time

// Provider вычисляет «историческую» дату и форматирует её для промптов и вёрстки.
type Provider struct {
	clock     Clock
	yearsBack int
}

// NewProvider создаёт провайдер дат. clock == nil означает time.Now,
// yearsBack <= 0 — значение по умолчанию (100 лет).
func NewProvider(clock Clock, yearsBack int) *Provider {
	if clock == nil {
		clock = time.Now
	}
	if yearsBack <= 0 {
		yearsBack = DefaultYearsBack
	}
	return &Provider{clock: clock, yearsBack: yearsBack}
}

// HistoricalDate возвращает текущую дату, сдвинутую назад ровно на yearsBack лет.
func (p *Provider) HistoricalDate() time.Time {
	return p.clock().AddDate(-p.yearsBack, 0, 0)
}

// PublicationDate возвращает сегодняшнюю дату в длинной форме для подписи «Published ...».
func (p *Provider) PublicationDate() string {
	return FormatForPrompt(p.clock())
}

// FormatForPrompt отдаёт длинную форму даты для подстановки в текст промпта,
// например "June 15, 1924".
func FormatForPrompt(date time.Time) string {
	return date.Format("January 2, 2006")
}

// FormatForDisplay отдаёт дату в стиле газетной шапки: "SUNDAY, JUNE 15, 1924".
func FormatForDisplay(date time.Time) string {
	return strings.ToUpper(date.Format("Monday, January 2, 2006"))
}
