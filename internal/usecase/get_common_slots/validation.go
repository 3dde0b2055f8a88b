package get_common_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID1 <= 0 {
		return fmt.Errorf("%w: userID1 must be positive", ErrInvalidInput)
	}

	if req.UserID2 <= 0 {
		return fmt.Errorf("%w: userID2 must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
