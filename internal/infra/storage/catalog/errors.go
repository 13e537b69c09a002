package catalog

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись каталога не найдена
	ErrEntryNotFound = errors.New("catalog.repository: entry not found")

	// ErrUnknownResourceType для типа ресурса нет таблицы каталога
	ErrUnknownResourceType = errors.New("catalog.repository: unknown resource type")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
