package apply_mask

import "github.com/m04kA/SMC-StoreAdmin/pkg/mask"

// ApplyMaskRequest текст, набранный пользователем в поле с маской
type ApplyMaskRequest struct {
	Mask  string `json:"mask"`
	Value string `json:"value"`
}

// ApplyMaskResponse каноническое содержимое поля
type ApplyMaskResponse struct {
	DisplayText string `json:"displayText"`
	RawValue    string `json:"rawValue"`
	Builtin     bool   `json:"builtin"` // false - маска трактована как шаблон
}

// FromField конвертирует результат маски в HTTP ответ
func FromField(f mask.Field, spec mask.Spec) *ApplyMaskResponse {
	return &ApplyMaskResponse{
		DisplayText: f.DisplayText,
		RawValue:    f.RawValue,
		Builtin:     mask.IsBuiltin(spec),
	}
}
