package get_user_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на получение свободных слотов пользователя
type Request struct {
	UserID int64     // ID пользователя
	Date   time.Time // Календарная дата (без времени, UTC)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	UserID int64     // ID пользователя
	Date   time.Time // Дата, на которую запрашивались слоты
	Slots  []Slot    // Свободные промежутки внутри окна доступности
}

// Slot свободный промежуток времени
type Slot struct {
	Start time.Time // Начало промежутка (UTC)
	End   time.Time // Конец промежутка (UTC, не включается)
}

// slotsFromRanges конвертирует диапазоны domain в слоты ответа
func slotsFromRanges(ranges []domain.TimeRange) []Slot {
	slots := make([]Slot, len(ranges))
	for i, r := range ranges {
		slots[i] = Slot{Start: r.Start, End: r.End}
	}
	return slots
}

// emptyResponse ответ без слотов
func emptyResponse(req *Request) *Response {
	return &Response{
		UserID: req.UserID,
		Date:   req.Date,
		Slots:  []Slot{},
	}
}
