package add_closed_date

// AddRequest HTTP request model
type AddRequest struct {
	Date   string `json:"date"`   // YYYY-MM-DD
	Reason string `json:"reason"` // опционально
}
