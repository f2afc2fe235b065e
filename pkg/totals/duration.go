package totals

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// durationPattern первая группа цифр - часы, вторая (если есть) - минуты
// Покрывает "HH:mm", "1h 30m", "2h" и похожие сокращения
var durationPattern = regexp.MustCompile(`(\d+)\D*(\d+)?`)

// ParseDuration переводит текст длительности в минуты
// Нераспознанный текст даёт 0, ошибка наружу не возвращается
func ParseDuration(text string) int {
	match := durationPattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}

	hours, err := strconv.Atoi(match[1])
	if err != nil || hours > maxHours {
		return 0
	}

	minutes := 0
	if match[2] != "" {
		minutes, err = strconv.Atoi(match[2])
		if err != nil || minutes > maxMinutes {
			return 0
		}
	}

	return hours*60 + minutes
}

// Пределы, при которых сумма часов и минут гарантированно помещается в int на любой платформе
const (
	maxHours   = math.MaxInt32 / 120
	maxMinutes = math.MaxInt32 / 2
)

// FormatMinutes форматирует минуты как HH:mm
// Отрицательные значения приводятся к 00:00, часы не ограничены сверху (1500 минут -> 25:00)
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeDuration приводит текст длительности к виду HH:mm
func NormalizeDuration(text string) string {
	return FormatMinutes(ParseDuration(text))
}
