package mask

// Spec идентификатор маски: имя встроенного форматтера или произвольный шаблон
// Любая строка, не найденная в таблице встроенных форматтеров, трактуется как шаблон
type Spec string

// Встроенные форматтеры
const (
	Phone      Spec = "phone"
	ShortTaxID Spec = "short-tax-id" // CPF, 11 цифр
	LongTaxID  Spec = "long-tax-id"  // CNPJ, 14 цифр
	PostalCode Spec = "postal-code"  // CEP, 8 цифр
	Currency   Spec = "currency"     // R$, сырое значение - количество центов
	Date       Spec = "date"         // DD/MM/YYYY
)

// Псевдонимы, которые присылает фронтенд
const (
	CPF  Spec = "cpf"
	CNPJ Spec = "cnpj"
	CEP  Spec = "cep"
)

// Kind тип маски для метрик и логов
type Kind string

const (
	KindBuiltin Kind = "builtin"
	KindPattern Kind = "pattern"
)

// Kind возвращает тип маски
func (s Spec) Kind() Kind {
	if IsBuiltin(s) {
		return KindBuiltin
	}
	return KindPattern
}

// Field результат применения маски к введённому тексту
// DisplayText - то, что нужно показать в поле, RawValue - то, что нужно сохранить
type Field struct {
	DisplayText string
	RawValue    string
}
