package get_user

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/users/models"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.UserProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
