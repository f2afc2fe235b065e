package domain

import (
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-StoreAdmin/pkg/mask"
)

// NormalizePhone оставляет только цифры телефона; ok=false, если их не 10-11
func NormalizePhone(phone string) (string, bool) {
	digits := mask.Unmask(phone)
	return digits, len(digits) >= MinPhoneDigits && len(digits) <= MaxPhoneDigits
}

// NormalizeCPF оставляет только цифры CPF; ok=false, если их не 11
func NormalizeCPF(cpf string) (string, bool) {
	digits := mask.Unmask(cpf)
	return digits, len(digits) == CPFDigits
}

// ValidEmail проверяет, что строка - одиночный адрес без отображаемого имени
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == strings.TrimSpace(email)
}
