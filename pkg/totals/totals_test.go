package totals

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{text: "01:30", want: 90},
		{text: "1h 30m", want: 90},
		{text: "00:45", want: 45},
		{text: "2h", want: 120},
		{text: "1:05", want: 65},
		{text: "  3 horas e 15 minutos", want: 195},
		{text: "garbage", want: 0},
		{text: "", want: 0},
		{text: "99999999999999999999999", want: 0},
		{text: "1:99999999999999999999", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDuration(tt.text))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "00:00", FormatMinutes(-15))
	assert.Equal(t, "01:30", FormatMinutes(90))
	assert.Equal(t, "25:00", FormatMinutes(1500))
	assert.Equal(t, "100:01", FormatMinutes(6001))
}

func TestNormalizeDuration(t *testing.T) {
	assert.Equal(t, "01:30", NormalizeDuration("1h 30m"))
	assert.Equal(t, "00:00", NormalizeDuration("sem duração"))
}

func TestAggregate(t *testing.T) {
	items := map[string]LineItem{
		"A": {Value: 29.9, Duration: "00:30"},
		"B": {Value: 59.9, Duration: "01:00"},
		"C": {Value: 0.1, Duration: "0h 20m"},
		"D": {Value: 0.2, Duration: "garbage"},
		"L": {Value: 100, Duration: "23:00"},
	}

	tests := []struct {
		name     string
		selected []string
		items    map[string]LineItem
		want     Result
	}{
		{
			name:     "empty selection",
			selected: nil,
			items:    map[string]LineItem{},
			want:     Result{Total: 0, TotalCents: 0, Minutes: 0, Duration: "00:00"},
		},
		{
			name:     "two items",
			selected: []string{"A", "B"},
			items:    items,
			want:     Result{Total: 89.8, TotalCents: 8980, Minutes: 90, Duration: "01:30"},
		},
		{
			name:     "order does not matter",
			selected: []string{"B", "A"},
			items:    items,
			want:     Result{Total: 89.8, TotalCents: 8980, Minutes: 90, Duration: "01:30"},
		},
		{
			name:     "missing id is skipped",
			selected: []string{"A", "gone"},
			items:    items,
			want:     Result{Total: 29.9, TotalCents: 2990, Minutes: 30, Duration: "00:30"},
		},
		{
			name:     "duplicates count once",
			selected: []string{"A", "A"},
			items:    items,
			want:     Result{Total: 29.9, TotalCents: 2990, Minutes: 30, Duration: "00:30"},
		},
		{
			name:     "float cents stay exact",
			selected: []string{"C", "D"},
			items:    items,
			want:     Result{Total: 0.3, TotalCents: 30, Minutes: 20, Duration: "00:20"},
		},
		{
			name:     "duration does not wrap",
			selected: []string{"L", "B", "C"},
			items:    items,
			want:     Result{Total: 160, TotalCents: 16000, Minutes: 1460, Duration: "24:20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.selected, tt.items))
		})
	}
}

func TestFound(t *testing.T) {
	items := map[string]LineItem{"A": {}, "B": {}}
	assert.Equal(t, []string{"B", "A"}, Found([]string{"B", "x", "A", "B"}, items))
	assert.Empty(t, Found(nil, items))
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(2990), ToCents(29.9))
	assert.Equal(t, int64(1), ToCents(0.005))
	assert.Equal(t, int64(0), ToCents(math.NaN()))
	assert.Equal(t, int64(0), ToCents(math.Inf(1)))
}
