package get_user_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getUserSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_user_slots"
)

// SlotResponse свободный промежуток в HTTP ответе
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// UserSlotsResponse список свободных слотов пользователя на дату
type UserSlotsResponse struct {
	UserID int64          `json:"userId"`
	Date   string         `json:"date"`
	Slots  []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *getUserSlots.Response) *UserSlotsResponse {
	slots := make([]SlotResponse, len(result.Slots))
	for i, s := range result.Slots {
		slots[i] = SlotResponse{
			Start: s.Start.Format(time.RFC3339),
			End:   s.End.Format(time.RFC3339),
		}
	}
	return &UserSlotsResponse{
		UserID: result.UserID,
		Date:   result.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}
