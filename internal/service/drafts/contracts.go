package drafts

import (
	"context"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
)

// CatalogRepository интерфейс чтения каталога ресурсов
type CatalogRepository interface {
	GetEntry(ctx context.Context, rt domain.ResourceType, ref string) (*domain.CatalogEntry, error)
	GetMenuItems(ctx context.Context, ids []string) (map[string]*domain.CatalogEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
