package update_closed_dates_bulk

// BulkRequest HTTP request model
type BulkRequest struct {
	ClosedDates []string `json:"closed_dates"` // полный новый набор дат YYYY-MM-DD
}

// BulkResponse HTTP response model
type BulkResponse struct {
	Message string `json:"message"`
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
}
