package get_common_slots

import (
	"context"

	getCommonSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_common_slots"
)

type GetCommonSlotsUseCase interface {
	Execute(ctx context.Context, req *getCommonSlots.Request) (*getCommonSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
