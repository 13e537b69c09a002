package pricing

import "errors"

var (
	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("pricing: checkout must be after checkin")

	// ErrMissingParameter возвращается, когда не хватает параметра для расчёта
	ErrMissingParameter = errors.New("pricing: missing parameter")

	// ErrInvalidQuantity возвращается при количестве гостей/участников меньше 1
	ErrInvalidQuantity = errors.New("pricing: quantity must be positive")

	// ErrMissingCatalogEntry возвращается, когда для ресурса не загружена позиция каталога
	ErrMissingCatalogEntry = errors.New("pricing: catalog entry is required")

	// ErrUnsupportedResource возвращается для неизвестного типа ресурса
	ErrUnsupportedResource = errors.New("pricing: unsupported resource type")
)
