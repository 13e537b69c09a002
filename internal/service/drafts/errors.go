package drafts

import "errors"

var (
	// ErrCatalogEntryNotFound выбранный ресурс отсутствует в каталоге
	ErrCatalogEntryNotFound = errors.New("drafts.service: catalog entry not found")

	// ErrMenuItemNotFound позиция корзины отсутствует в меню
	ErrMenuItemNotFound = errors.New("drafts.service: menu item not found")

	// ErrMenuItemUnavailable позиция меню сейчас не подаётся
	ErrMenuItemUnavailable = errors.New("drafts.service: menu item is unavailable")

	// ErrCatalog ошибка чтения каталога
	ErrCatalog = errors.New("drafts.service: catalog error")
)
