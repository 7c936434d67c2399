package models

// DayHours расписание одного дня недели в представлении API
type DayHours struct {
	SelectedSlots []int `json:"selectedSlots"`
	IsOpen        bool  `json:"isOpen"`
}

// WeeklyHours расписание недели: ключ — имя дня (monday..sunday)
type WeeklyHours map[string]DayHours

// UpdateResult итог bulk-обновления расписания
type UpdateResult struct {
	Updated int // количество успешно сохраненных дней
	Skipped int // количество пропущенных ключей (не имена дней)
	Failed  int // количество дней, которые не удалось сохранить
}
