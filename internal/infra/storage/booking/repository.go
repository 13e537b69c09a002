package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/dbmetrics"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = "23505"

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий бронирований всех типов ресурсов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование.
// Номер транзакции уникален в таблице: повторная вставка не создаёт вторую строку,
// а возвращает ErrDuplicateTransactionRef.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	table, err := TableFor(booking.ResourceType)
	if err != nil {
		return nil, err
	}

	params, err := json.Marshal(booking.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal params: %v", ErrBuildQuery, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"resource_ref",
			"contact_name",
			"contact_email",
			"contact_phone",
			"params",
			"total_amount",
			"payment_method",
			"payment_status",
			"transaction_ref",
			"status",
			"notes",
		).
		Values(
			booking.ResourceRef,
			booking.Contact.Name,
			booking.Contact.Email,
			booking.Contact.Phone,
			params,
			booking.TotalAmount,
			booking.PaymentMethod,
			booking.PaymentStatus,
			booking.TransactionRef,
			booking.Status,
			booking.Notes,
		).
		Suffix("ON CONFLICT (transaction_ref) DO NOTHING RETURNING id, version, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.Version,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
		return nil, ErrDuplicateTransactionRef
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	created.CreatedAt = createdAt.Time
	created.UpdatedAt = updatedAt.Time

	return &created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, rt domain.ResourceType, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", rt, squirrel.Eq{"id": id})
}

// GetByTransactionRef получает бронирование по номеру транзакции
func (r *Repository) GetByTransactionRef(ctx context.Context, rt domain.ResourceType, ref string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByTransactionRef", rt, squirrel.Eq{"transaction_ref": ref})
}

// List получает бронирования по фильтру, сначала новые
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	table, err := TableFor(filter.ResourceType)
	if err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	// Фильтрация по email гостя (без учёта регистра)
	if filter.ContactEmail != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("LOWER(contact_email) = LOWER(?)", *filter.ContactEmail))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows, filter.ResourceType)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus меняет статус, если строка всё ещё в статусе from и версии version.
// Иначе возвращает ErrVersionConflict.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	rt domain.ResourceType,
	id int64,
	from, to domain.BookingStatus,
	version int64,
) (*domain.Booking, error) {
	return r.compareAndSwap(ctx, "UpdateStatus", rt, id, version,
		map[string]interface{}{"status": to},
		squirrel.Eq{"status": from},
	)
}

// UpdatePaymentStatus меняет статус оплаты с проверкой текущего статуса оплаты и версии
func (r *Repository) UpdatePaymentStatus(
	ctx context.Context,
	rt domain.ResourceType,
	id int64,
	from, to domain.PaymentStatus,
	version int64,
) (*domain.Booking, error) {
	return r.compareAndSwap(ctx, "UpdatePaymentStatus", rt, id, version,
		map[string]interface{}{"payment_status": to},
		squirrel.Eq{"payment_status": from},
	)
}

// UpdateTotal выставляет сумму, только если она ещё не выставлена
func (r *Repository) UpdateTotal(
	ctx context.Context,
	rt domain.ResourceType,
	id int64,
	total money.Money,
	version int64,
) (*domain.Booking, error) {
	return r.compareAndSwap(ctx, "UpdateTotal", rt, id, version,
		map[string]interface{}{"total_amount": total},
		squirrel.Eq{"total_amount": nil},
	)
}

func (r *Repository) getOne(ctx context.Context, op string, rt domain.ResourceType, where squirrel.Sqlizer) (*domain.Booking, error) {
	table, err := TableFor(rt)
	if err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...), rt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return b, nil
}

// compareAndSwap обновляет строку по id и версии, увеличивая версию.
// Пустой результат означает, что строку изменили параллельно (или её нет - это проверяет вызывающий).
func (r *Repository) compareAndSwap(
	ctx context.Context,
	op string,
	rt domain.ResourceType,
	id int64,
	version int64,
	set map[string]interface{},
	guard squirrel.Sqlizer,
) (*domain.Booking, error) {
	table, err := TableFor(rt)
	if err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		SetMap(set).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "version": version}).
		Where(guard).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...), rt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVersionConflict
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	return b, nil
}

func returning() string {
	suffix := "RETURNING "
	for i, c := range columns {
		if i > 0 {
			suffix += ", "
		}
		suffix += c
	}
	return suffix
}

// scanBooking сканирует строку в порядке columns
func scanBooking(row rowScanner, rt domain.ResourceType) (*domain.Booking, error) {
	var b domain.Booking
	var params []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.ResourceRef,
		&b.Contact.Name,
		&b.Contact.Email,
		&b.Contact.Phone,
		&params,
		&b.TotalAmount,
		&b.PaymentMethod,
		&b.PaymentStatus,
		&b.TransactionRef,
		&b.Status,
		&b.Notes,
		&b.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(params) > 0 {
		if err := json.Unmarshal(params, &b.Params); err != nil {
			return nil, fmt.Errorf("unmarshal params: %w", err)
		}
	}

	b.ResourceType = rt
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
