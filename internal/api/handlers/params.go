package handlers

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/pkg/mask"
)

// displayDateLayout дата так, как её показывает маска date
const displayDateLayout = "02/01/2006"

// ParseDate разбирает дату "YYYY-MM-DD" или "DD/MM/YYYY" (из поля с маской date)
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		// Повторно прогоняем через маску, чтобы отбросить лишние символы
		return time.Parse(displayDateLayout, mask.Format(s, mask.Date))
	}
	return time.Parse(domain.DateFormat, s)
}
