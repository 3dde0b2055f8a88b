package get_common_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getCommonSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_common_slots"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput  = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetCommonSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetCommonSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/common-availability?date=YYYY-MM-DD&userId1=1&userId2=2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID1, err := strconv.ParseInt(query.Get("userId1"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /common-availability - Invalid userId1: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}
	userID2, err := strconv.ParseInt(query.Get("userId2"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /common-availability - Invalid userId2: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, query.Get("date"), time.UTC)
	if err != nil {
		h.logger.Warn("GET /common-availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCommonSlots.Request{
		UserID1: userID1,
		UserID2: userID2,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCommonSlots.ErrInvalidInput):
			h.logger.Warn("GET /common-availability - Invalid input: user_id1=%d, user_id2=%d, error=%v",
				userID1, userID2, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /common-availability - Failed to get slots: user_id1=%d, user_id2=%d, error=%v",
				userID1, userID2, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /common-availability - Slots retrieved successfully: user_id1=%d, user_id2=%d, date=%s, count=%d",
		userID1, userID2, date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
