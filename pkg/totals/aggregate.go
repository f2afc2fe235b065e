// Package totals считает итоговую стоимость и длительность набора выбранных услуг.
package totals

import "math"

// LineItem позиция, участвующая в расчёте (услуга с ценой и длительностью)
type LineItem struct {
	Value    float64
	Duration string
}

// Result итог по выбранным позициям
type Result struct {
	Total      float64 // сумма с точностью до центов
	TotalCents int64
	Minutes    int
	Duration   string // HH:mm, без переноса через сутки
}

// Aggregate суммирует цену и длительность выбранных позиций
// Повторяющиеся идентификаторы учитываются один раз, отсутствующие в items пропускаются
// Сумма считается в центах, чтобы 29.9 + 59.9 давало ровно 89.8
func Aggregate(selected []string, items map[string]LineItem) Result {
	var (
		cents   int64
		minutes int
	)

	seen := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		item, ok := items[id]
		if !ok {
			continue
		}

		cents += ToCents(item.Value)
		minutes += ParseDuration(item.Duration)
	}

	return Result{
		Total:      FromCents(cents),
		TotalCents: cents,
		Minutes:    minutes,
		Duration:   FormatMinutes(minutes),
	}
}

// Found возвращает выбранные идентификаторы, которые есть в items, без повторов и в исходном порядке
func Found(selected []string, items map[string]LineItem) []string {
	found := make([]string, 0, len(selected))
	seen := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := items[id]; ok {
			found = append(found, id)
		}
	}
	return found
}

// ToCents переводит денежную сумму в центы с округлением
// NaN и бесконечности дают 0
func ToCents(value float64) int64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return int64(math.Round(value * 100))
}

// FromCents переводит центы в денежную сумму
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
