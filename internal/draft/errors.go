package draft

import "errors"

var (
	// ErrDraftIncomplete обязательное поле формы не заполнено
	ErrDraftIncomplete = errors.New("draft: required field is missing")

	// ErrInvalidValue значение поля не удалось разобрать
	ErrInvalidValue = errors.New("draft: invalid field value")

	// ErrDateInPast дата бронирования раньше сегодняшнего дня
	ErrDateInPast = errors.New("draft: date is in the past")

	// ErrStayTooLong превышена максимальная длительность проживания
	ErrStayTooLong = errors.New("draft: stay is too long")

	// ErrNonPositiveTotal итоговая сумма платного бронирования не положительная
	ErrNonPositiveTotal = errors.New("draft: total must be positive")

	// ErrCapacityExceeded количество гостей больше вместимости ресурса
	ErrCapacityExceeded = errors.New("draft: capacity exceeded")

	// ErrCatalogNotLoaded к черновику не привязана запись каталога
	ErrCatalogNotLoaded = errors.New("draft: catalog entry is not attached")

	// ErrResourceUnavailable ресурс помечен в каталоге как недоступный
	ErrResourceUnavailable = errors.New("draft: resource is unavailable")

	// ErrTooLong строковое поле длиннее допустимого
	ErrTooLong = errors.New("draft: value is too long")

	// ErrCartTooLarge слишком много строк или слишком большое количество в корзине
	ErrCartTooLarge = errors.New("draft: cart is too large")
)
