package report

import (
	"fmt"
	"strings"

	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/workout"
)

// Locale selects the report line template
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
)

// Every numeric field is printed with %.3f: fmt rounds the exact binary
// value to nearest, ties to even.
var templates = map[Locale]string{
	LocaleEN: "Training type: %s; Duration: %.3f h; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f.",
	LocaleRU: "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
}

// ParseLocale accepts a locale name case-insensitively; empty means LocaleEN
func ParseLocale(s string) (Locale, error) {
	if s == "" {
		return LocaleEN, nil
	}
	locale := Locale(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := templates[locale]; !ok {
		return "", fmt.Errorf("unsupported locale %q", s)
	}
	return locale, nil
}

// Format renders msg with the English template
func Format(msg workout.InfoMessage) string {
	return FormatLocale(msg, LocaleEN)
}

// FormatLocale renders msg with the template for locale, falling back to English
func FormatLocale(msg workout.InfoMessage, locale Locale) string {
	tmpl, ok := templates[locale]
	if !ok {
		tmpl = templates[LocaleEN]
	}
	return fmt.Sprintf(tmpl, msg.TrainingType, msg.Duration, msg.Distance, msg.Speed, msg.Calories)
}
