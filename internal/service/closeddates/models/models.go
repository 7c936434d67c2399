package models

// ClosedDateInfo закрытая дата в представлении API
type ClosedDateInfo struct {
	Date   string `json:"date"`   // YYYY-MM-DD
	Reason string `json:"reason"` // причина закрытия (может быть пустой)
}

// BulkUpdateResult итог bulk-замены набора закрытых дат
type BulkUpdateResult struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// CheckResult результат проверки одной даты
type CheckResult struct {
	IsClosed bool    `json:"is_closed"`
	Reason   *string `json:"reason"`
}
