package format_mask

// FormatMaskRequest сохранённое сырое значение
type FormatMaskRequest struct {
	Mask string `json:"mask"`
	Raw  string `json:"raw"`
}

// FormatMaskResponse строка для отображения
type FormatMaskResponse struct {
	DisplayText string `json:"displayText"`
	Builtin     bool   `json:"builtin"`
}
