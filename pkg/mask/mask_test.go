package mask

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Builtins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		spec Spec
		want string
	}{
		{name: "phone empty", raw: "", spec: Phone, want: ""},
		{name: "phone one digit", raw: "1", spec: Phone, want: "(1"},
		{name: "phone area code only", raw: "11", spec: Phone, want: "(11"},
		{name: "phone partial", raw: "1199", spec: Phone, want: "(11) 99"},
		{name: "phone landline", raw: "1133334444", spec: Phone, want: "(11) 3333-4444"},
		{name: "phone mobile", raw: "11999998888", spec: Phone, want: "(11) 99999-8888"},
		{name: "phone strips non digits", raw: "(11) 99999-8888", spec: Phone, want: "(11) 99999-8888"},
		{name: "phone truncates", raw: "119999988887777", spec: Phone, want: "(11) 99999-8888"},
		{name: "cpf", raw: "12345678901", spec: ShortTaxID, want: "123.456.789-01"},
		{name: "cpf alias", raw: "12345678901", spec: CPF, want: "123.456.789-01"},
		{name: "cpf partial", raw: "1234", spec: ShortTaxID, want: "123.4"},
		{name: "cpf truncates", raw: "1234567890199", spec: ShortTaxID, want: "123.456.789-01"},
		{name: "cnpj", raw: "12345678000195", spec: LongTaxID, want: "12.345.678/0001-95"},
		{name: "cnpj alias partial", raw: "123456780", spec: CNPJ, want: "12.345.678/0"},
		{name: "cep", raw: "01310100", spec: PostalCode, want: "01310-100"},
		{name: "cep alias truncates", raw: "0131010099", spec: CEP, want: "01310-100"},
		{name: "date", raw: "25122024", spec: Date, want: "25/12/2024"},
		{name: "date partial", raw: "251", spec: Date, want: "25/1"},
		{name: "date without calendar check", raw: "99999999", spec: Date, want: "99/99/9999"},
		{name: "currency empty", raw: "", spec: Currency, want: ""},
		{name: "currency zero", raw: "0", spec: Currency, want: "R$ 0,00"},
		{name: "currency cents", raw: "5", spec: Currency, want: "R$ 0,05"},
		{name: "currency leading zeros", raw: "00012", spec: Currency, want: "R$ 0,12"},
		{name: "currency example", raw: "12345", spec: Currency, want: "R$ 123,45"},
		{name: "currency thousands", raw: "123456789", spec: Currency, want: "R$ 1.234.567,89"},
		{name: "currency non numeric", raw: "abc", spec: Currency, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.raw, tt.spec))
		})
	}
}

func TestFormat_RespectsMaxLength(t *testing.T) {
	long := strings.Repeat("9", 40)
	for _, spec := range Builtins() {
		maxLength, ok := MaxLength(spec)
		if !ok {
			continue
		}
		assert.LessOrEqual(t, len(Format(long, spec)), maxLength, "spec %s", spec)
	}
}

func TestUnmask(t *testing.T) {
	assert.Equal(t, "", Unmask(""))
	assert.Equal(t, "11999998888", Unmask("(11) 99999-8888"))
	assert.Equal(t, "12345", Unmask("R$ 123,45"))
	assert.Equal(t, "", Unmask("abc-/"))
}

func TestRoundTrip_Phone(t *testing.T) {
	digits := "11987654321"
	for n := 0; n <= 10; n++ {
		d := digits[:n]
		assert.Equal(t, d, Unmask(Format(d, Phone)), "len %d", n)
	}
}

func TestRoundTrip_ShortTaxID(t *testing.T) {
	digits := "98765432109"
	for n := 0; n <= 11; n++ {
		d := digits[:n]
		assert.Equal(t, d, Unmask(Format(d, ShortTaxID)), "len %d", n)
	}
}

func TestRoundTrip_UpToCapacity(t *testing.T) {
	digits := strings.Repeat("1234567890", 2)
	for _, spec := range []Spec{Phone, LongTaxID, PostalCode, Date} {
		maxDigits, ok := MaxDigits(spec)
		require.True(t, ok, "spec %s", spec)

		for n := 0; n <= maxDigits; n++ {
			d := digits[:n]
			assert.Equal(t, d, Unmask(Format(d, spec)), "spec %s len %d", spec, n)
		}

		// лишние цифры отбрасываются
		assert.Equal(t, digits[:maxDigits], Unmask(Format(digits, spec)), "spec %s", spec)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{"", "1", "12345", "11999998888", "123456789012345", "R$ 1,00", "ab12cd"}
	for _, spec := range Builtins() {
		for _, raw := range inputs {
			once := Format(raw, spec)
			assert.Equal(t, once, Format(Unmask(once), spec), "spec %s raw %q", spec, raw)
		}
	}
}

func TestMaxDigits(t *testing.T) {
	tests := []struct {
		spec   Spec
		want   int
		wantOK bool
	}{
		{spec: Phone, want: 11, wantOK: true},
		{spec: ShortTaxID, want: 11, wantOK: true},
		{spec: LongTaxID, want: 14, wantOK: true},
		{spec: PostalCode, want: 8, wantOK: true},
		{spec: Date, want: 8, wantOK: true},
		{spec: Currency, wantOK: false},
		{spec: "##-##", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := MaxDigits(tt.spec)
		assert.Equal(t, tt.wantOK, ok, "spec %s", tt.spec)
		assert.Equal(t, tt.want, got, "spec %s", tt.spec)
	}
}

func TestSpecKind(t *testing.T) {
	assert.Equal(t, KindBuiltin, Phone.Kind())
	assert.Equal(t, KindBuiltin, CEP.Kind())
	assert.Equal(t, KindPattern, Spec("telefone").Kind())
	assert.Equal(t, KindPattern, Spec("###").Kind())
}
