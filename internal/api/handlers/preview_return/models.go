package preview_return

// PreviewReturnRequest HTTP request model
type PreviewReturnRequest struct {
	ReturnDate *string `json:"returnDate,omitempty"` // YYYY-MM-DD или RFC 3339, по умолчанию текущее время
}
