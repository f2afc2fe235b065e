package mask

import (
	"sort"
	"strings"
)

// formatter встроенный форматтер: функция форматирования цифр и ёмкость маски
type formatter struct {
	format    func(digits string) string
	maxDigits int // 0 - без ограничения
	maxLength int // 0 - без ограничения
}

// layout раскладка цифр по группам
// seps[i] выводится перед группой i и только если в группе есть хотя бы одна цифра,
// поэтому частичный ввод никогда не получает "висящих" разделителей
type layout struct {
	groups []int
	seps   []string
}

func (l layout) apply(digits string) string {
	var b strings.Builder
	pos := 0
	for i, size := range l.groups {
		if pos >= len(digits) {
			break
		}
		end := pos + size
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(l.seps[i])
		b.WriteString(digits[pos:end])
		pos = end
	}
	return b.String()
}

func (l layout) capacity() int {
	total := 0
	for _, size := range l.groups {
		total += size
	}
	return total
}

var (
	landlineLayout = layout{groups: []int{2, 4, 4}, seps: []string{"(", ") ", "-"}}    // (DD) DDDD-DDDD
	mobileLayout   = layout{groups: []int{2, 5, 4}, seps: []string{"(", ") ", "-"}}    // (DD) DDDDD-DDDD
	cpfLayout      = layout{groups: []int{3, 3, 3, 2}, seps: []string{"", ".", ".", "-"}}
	cnpjLayout     = layout{groups: []int{2, 3, 3, 4, 2}, seps: []string{"", ".", ".", "/", "-"}}
	cepLayout      = layout{groups: []int{5, 3}, seps: []string{"", "-"}}
	dateLayout     = layout{groups: []int{2, 2, 4}, seps: []string{"", "/", "/"}}
)

const (
	currencyPrefix     = "R$ "
	thousandsSeparator = '.'
	decimalSeparator   = ','
)

// builtins таблица встроенных форматтеров
// Новый форматтер добавляется только сюда, ветвления по имени маски в других местах нет
var builtins = func() map[Spec]formatter {
	phone := formatter{format: formatPhone, maxDigits: mobileLayout.capacity(), maxLength: 15}
	cpf := fromLayout(cpfLayout, 14)
	cnpj := fromLayout(cnpjLayout, 18)
	cep := fromLayout(cepLayout, 9)

	return map[Spec]formatter{
		Phone:      phone,
		ShortTaxID: cpf,
		CPF:        cpf,
		LongTaxID:  cnpj,
		CNPJ:       cnpj,
		PostalCode: cep,
		CEP:        cep,
		Currency:   {format: formatCents},
		Date:       fromLayout(dateLayout, 10),
	}
}()

func fromLayout(l layout, maxLength int) formatter {
	return formatter{format: l.apply, maxDigits: l.capacity(), maxLength: maxLength}
}

// formatPhone до 10 цифр - городской номер, 11 и больше - мобильный
func formatPhone(digits string) string {
	if len(digits) <= landlineLayout.capacity() {
		return landlineLayout.apply(digits)
	}
	return mobileLayout.apply(digits)
}

// formatCents форматирует количество центов как сумму в реалах
// Работает со строкой цифр, поэтому длина суммы не ограничена разрядностью int64
func formatCents(digits string) string {
	if digits == "" {
		return ""
	}

	digits = strings.TrimLeft(digits, "0")
	for len(digits) < 3 {
		digits = "0" + digits
	}

	intPart := digits[:len(digits)-2]
	fracPart := digits[len(digits)-2:]

	var b strings.Builder
	b.WriteString(currencyPrefix)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(thousandsSeparator)
		}
		b.WriteRune(r)
	}
	b.WriteByte(decimalSeparator)
	b.WriteString(fracPart)
	return b.String()
}

// IsBuiltin сообщает, есть ли спецификация в таблице встроенных форматтеров
func IsBuiltin(spec Spec) bool {
	_, ok := builtins[spec]
	return ok
}

// MaxDigits возвращает максимальное количество цифр, которое сохраняет встроенная маска
// Для валюты и шаблонов ограничения нет (ok=false)
func MaxDigits(spec Spec) (int, bool) {
	f, ok := builtins[spec]
	if !ok || f.maxDigits == 0 {
		return 0, false
	}
	return f.maxDigits, true
}

// MaxLength возвращает максимальную длину отображаемой строки встроенной маски
func MaxLength(spec Spec) (int, bool) {
	f, ok := builtins[spec]
	if !ok || f.maxLength == 0 {
		return 0, false
	}
	return f.maxLength, true
}

// Builtins возвращает отсортированный список встроенных спецификаций (включая псевдонимы)
func Builtins() []Spec {
	specs := make([]Spec, 0, len(builtins))
	for spec := range builtins {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i] < specs[j] })
	return specs
}
