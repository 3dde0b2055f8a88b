package create_event

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_event: invalid input data")

	// ErrHostNotFound возвращается, когда организатор не найден
	ErrHostNotFound = errors.New("create_event: host not found")

	// ErrAttendeeNotFound возвращается, когда один из участников не найден
	ErrAttendeeNotFound = errors.New("create_event: attendee not found")

	// ErrTimeConflict возвращается, когда запрошенный интервал пересекается
	// с существующим событием одного из участников
	ErrTimeConflict = errors.New("create_event: requested time is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_event: internal error")
)
