package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateTransactionRef бронирование с таким номером транзакции уже есть
	ErrDuplicateTransactionRef = errors.New("booking.repository: duplicate transaction ref")

	// ErrVersionConflict строка изменилась с момента чтения (optimistic concurrency)
	ErrVersionConflict = errors.New("booking.repository: version conflict")

	// ErrUnknownResourceType для типа ресурса нет таблицы бронирований
	ErrUnknownResourceType = errors.New("booking.repository: unknown resource type")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
