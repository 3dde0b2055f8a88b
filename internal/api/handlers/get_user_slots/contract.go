package get_user_slots

import (
	"context"

	getUserSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_user_slots"
)

type GetUserSlotsUseCase interface {
	Execute(ctx context.Context, req *getUserSlots.Request) (*getUserSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
