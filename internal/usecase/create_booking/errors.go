package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSubmissionAbandoned гость ушёл со страницы до сохранения бронирования
	ErrSubmissionAbandoned = errors.New("create_booking: submission abandoned")
)
