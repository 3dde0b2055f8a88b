package get_common_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getCommonSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_common_slots"
)

// SlotResponse свободный промежуток в HTTP ответе
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CommonSlotsResponse общие свободные слоты двух пользователей на дату
type CommonSlotsResponse struct {
	UserID1 int64          `json:"userId1"`
	UserID2 int64          `json:"userId2"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *getCommonSlots.Response) *CommonSlotsResponse {
	slots := make([]SlotResponse, len(result.Slots))
	for i, s := range result.Slots {
		slots[i] = SlotResponse{
			Start: s.Start.Format(time.RFC3339),
			End:   s.End.Format(time.RFC3339),
		}
	}
	return &CommonSlotsResponse{
		UserID1: result.UserID1,
		UserID2: result.UserID2,
		Date:    result.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
