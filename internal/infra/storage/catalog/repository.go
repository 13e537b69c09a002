package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/dbmetrics"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/psqlbuilder"
)

// idColumn идентификаторы в каталоге бывают числовыми и uuid, сравниваем как текст
const idColumn = "CAST(id AS TEXT)"

// Repository чтение каталога ресурсов (только чтение, владелец данных - админка)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetEntry получает запись каталога по типу ресурса и идентификатору
func (r *Repository) GetEntry(ctx context.Context, rt domain.ResourceType, ref string) (*domain.CatalogEntry, error) {
	src, ok := sources[rt]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResourceType, rt)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectFrom(src).
		Where(squirrel.Eq{idColumn: ref}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEntry - build select query: %v", ErrBuildQuery, err)
	}

	entry, err := scanEntry(executor.QueryRowContext(ctx, query, args...), src)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEntry - scan entry: %v", ErrScanRow, err)
	}

	return entry, nil
}

// GetMenuItems получает позиции меню room service по идентификаторам
// Отсутствующие позиции просто не попадают в результат
func (r *Repository) GetMenuItems(ctx context.Context, ids []string) (map[string]*domain.CatalogEntry, error) {
	items := make(map[string]*domain.CatalogEntry, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	src := sources[domain.ResourceRoomService]
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectFrom(src).
		Where(squirrel.Eq{idColumn: ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetMenuItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMenuItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		entry, err := scanEntry(rows, src)
		if err != nil {
			return nil, fmt.Errorf("%w: GetMenuItems - scan row: %v", ErrScanRow, err)
		}
		items[entry.ID] = entry
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetMenuItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

func selectFrom(src source) squirrel.SelectBuilder {
	return psqlbuilder.Select(idColumn, "name", src.price, src.capacity, src.available).From(src.table)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner, src source) (*domain.CatalogEntry, error) {
	entry := domain.CatalogEntry{Basis: src.basis}
	err := row.Scan(
		&entry.ID,
		&entry.Name,
		&entry.UnitPrice,
		&entry.Capacity,
		&entry.Available,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
