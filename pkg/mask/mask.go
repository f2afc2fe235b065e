// Package mask форматирует значения полей ввода по маске и восстанавливает сырые значения.
//
// Встроенные маски (телефон, CPF, CNPJ, CEP, валюта, дата) работают с сырым значением из цифр.
// Произвольный шаблон из токенов '#', 'A', '*' применяется прямо к набранному тексту.
// Все функции чистые и безопасны для конкурентного использования.
package mask

import (
	"strings"
	"unicode"
)

// Format форматирует сырое значение по спецификации
// Нецифровые символы сырого значения для встроенных масок отбрасываются, лишние цифры обрезаются
func Format(raw string, spec Spec) string {
	if f, ok := builtins[spec]; ok {
		return f.format(Unmask(raw))
	}
	return formatPattern(raw, string(spec))
}

// Unmask удаляет из строки всё, кроме десятичных цифр
// Не знает, какой маской получена строка; для валюты возвращает центы, а не десятичную сумму
func Unmask(display string) string {
	return strings.Map(func(r rune) rune {
		if isDigit(r) {
			return r
		}
		return -1
	}, display)
}

// Apply приводит набранный пользователем текст к каноническому виду
// Вызывается на каждое нажатие клавиши: сначала восстанавливается сырое значение,
// затем оно форматируется заново, поэтому поле никогда не хранит промежуточный невалидный текст
func Apply(input string, spec Spec) Field {
	if !IsBuiltin(spec) {
		display := formatPattern(input, string(spec))
		return Field{DisplayText: display, RawValue: display}
	}

	// Сырое значение всегда Unmask от отображаемого текста, ведущие нули валюты сохраняются
	display := Format(Unmask(input), spec)
	return Field{DisplayText: display, RawValue: Unmask(display)}
}

// formatPattern применяет шаблон к набранному тексту
// '#' - цифра, 'A' - буква, '*' - любой символ, остальное - литерал без потребления ввода
// Остановка, когда закончился шаблон или ввод
func formatPattern(input, pattern string) string {
	in := []rune(input)
	pos := 0

	var b strings.Builder
	for _, token := range pattern {
		if pos >= len(in) {
			break
		}

		switch token {
		case '#', 'A':
			match := isDigit
			if token == 'A' {
				match = unicode.IsLetter
			}
			for pos < len(in) && !match(in[pos]) {
				pos++
			}
			if pos >= len(in) {
				return b.String()
			}
			b.WriteRune(in[pos])
			pos++
		case '*':
			b.WriteRune(in[pos])
			pos++
		default:
			b.WriteRune(token)
		}
	}

	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
