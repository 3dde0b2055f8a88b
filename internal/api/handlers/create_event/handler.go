package create_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	createEvent "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_event"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInput       = "некорректные параметры события"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "создавать события можно только от своего имени"
	msgHostNotFound       = "организатор не найден"
	msgAttendeeNotFound   = "один из участников не найден"
	msgTimeConflict       = "выбранный интервал пересекается с существующим событием"
)

type Handler struct {
	useCase CreateEventUseCase
	logger  Logger
}

func NewHandler(useCase CreateEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Организатором события может быть только аутентифицированный пользователь
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /events - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if req.HostID != authUserID {
		h.logger.Warn("POST /events - Access denied: host_id=%d, auth_user_id=%d", req.HostID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /events - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createEvent.ErrInvalidInput):
			h.logger.Warn("POST /events - Invalid input: host_id=%d, error=%v", req.HostID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createEvent.ErrHostNotFound):
			h.logger.Warn("POST /events - Host not found: host_id=%d", req.HostID)
			handlers.RespondNotFound(w, msgHostNotFound)

		case errors.Is(err, createEvent.ErrAttendeeNotFound):
			h.logger.Warn("POST /events - Attendee not found: host_id=%d", req.HostID)
			handlers.RespondNotFound(w, msgAttendeeNotFound)

		case errors.Is(err, createEvent.ErrTimeConflict):
			h.logger.Warn("POST /events - Time conflict: host_id=%d", req.HostID)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		default:
			h.logger.Error("POST /events - Failed to create event: host_id=%d, error=%v", req.HostID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events - Event created successfully: event_id=%d, host_id=%d, attendees=%d",
		result.ID, result.HostID, len(result.Attendees))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
