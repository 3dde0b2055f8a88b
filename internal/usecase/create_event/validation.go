package create_event

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HostID <= 0 {
		return fmt.Errorf("%w: hostID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if len(req.Attendees) == 0 && req.GuestEmail == nil {
		return fmt.Errorf("%w: attendees or guestEmail is required", ErrInvalidInput)
	}

	for _, userID := range req.Attendees {
		if userID <= 0 {
			return fmt.Errorf("%w: attendee IDs must be positive", ErrInvalidInput)
		}
	}

	if req.GuestEmail != nil && !strings.Contains(*req.GuestEmail, "@") {
		return fmt.Errorf("%w: invalid guest email", ErrInvalidInput)
	}

	return nil
}

// guestUsernameFromEmail строит имя пользователя для гостя из локальной части email
func guestUsernameFromEmail(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return email
}

// dedupeUserIDs убирает дубликаты, сохраняя порядок первого вхождения
func dedupeUserIDs(userIDs []int64) []int64 {
	seen := make(map[int64]struct{}, len(userIDs))
	result := make([]int64, 0, len(userIDs))

	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}
