package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition переход статуса запрещён машиной состояний
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrInvalidPaymentTransition корректировка статуса оплаты запрещена
	ErrInvalidPaymentTransition = errors.New("invalid payment status transition")

	// ErrConflict бронирование изменили параллельно, нужно перечитать и повторить
	ErrConflict = errors.New("booking was modified concurrently")

	// ErrTotalAlreadySet сумма бронирования уже выставлена
	ErrTotalAlreadySet = errors.New("booking total is already set")

	// ErrBookingClosed бронирование в финальном статусе и не редактируется
	ErrBookingClosed = errors.New("booking is closed")

	// ErrInvariantViolation несогласованные платёжные поля (ошибка программиста)
	ErrInvariantViolation = errors.New("settlement invariant violated")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPersistence ошибка хранилища; можно повторить с тем же номером транзакции
	ErrPersistence = errors.New("service: persistence error")
)
