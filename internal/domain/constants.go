package domain

// DateFormat формат даты в API и БД
const DateFormat = "2006-01-02"

// Business validation constants
const (
	MinPhoneDigits = 10
	MaxPhoneDigits = 11
	CPFDigits      = 11

	MaxNameLength     = 255
	MaxFunctionLength = 120

	MaxCommissionPercentage = 100
)
