package get_common_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на получение общих свободных слотов двух пользователей
type Request struct {
	UserID1 int64     // ID первого пользователя
	UserID2 int64     // ID второго пользователя
	Date    time.Time // Календарная дата (без времени, UTC)
}

// Response модель ответа со списком общих свободных слотов
type Response struct {
	UserID1 int64     // ID первого пользователя
	UserID2 int64     // ID второго пользователя
	Date    time.Time // Дата, на которую запрашивались слоты
	Slots   []Slot    // Общие свободные промежутки
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
		UserID1: req.UserID1,
		UserID2: req.UserID2,
		Date:    req.Date,
		Slots:   []Slot{},
	}
}
