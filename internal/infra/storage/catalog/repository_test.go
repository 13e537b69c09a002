package catalog

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/dbmetrics"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

var entryColumns = []string{"id", "name", "price", "capacity", "is_available"}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestGetEntry_Room(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT CAST(id AS TEXT), name, price_per_night, COALESCE(capacity, 0), is_available FROM rooms WHERE CAST(id AS TEXT) = $1")).
		WithArgs("12").
		WillReturnRows(sqlmock.NewRows(entryColumns).AddRow("12", "Deluxe King", "120.00", int64(3), true))

	entry, err := repo.GetEntry(context.Background(), domain.ResourceRoom, "12")

	require.NoError(t, err)
	assert.Equal(t, "Deluxe King", entry.Name)
	assert.Equal(t, money.FromMajor(120), entry.UnitPrice)
	assert.Equal(t, 3, entry.Capacity)
	assert.Equal(t, domain.BasisPerNight, entry.Basis)
	assert.True(t, entry.Available)
}

func TestGetEntry_TableUsesReservationFee(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("reservation_fee, COALESCE(seats, 0), is_available FROM dining_tables")).
		WillReturnRows(sqlmock.NewRows(entryColumns).AddRow("4", "Terrace 4", "200.00", int64(6), true))

	entry, err := repo.GetEntry(context.Background(), domain.ResourceTable, "4")

	require.NoError(t, err)
	assert.Equal(t, domain.BasisFlatFee, entry.Basis)
	assert.Equal(t, money.FromMajor(200), entry.UnitPrice)
}

func TestGetEntry_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("FROM spa_services").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetEntry(context.Background(), domain.ResourceSpa, "missing")

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestGetEntry_UnknownType(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.GetEntry(context.Background(), "parking", "1")

	assert.ErrorIs(t, err, ErrUnknownResourceType)
}

func TestGetMenuItems(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM menu_items WHERE CAST(id AS TEXT) IN ($1,$2)")).
		WithArgs("1", "2").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow("1", "Tibs", "150.00", int64(0), true).
			AddRow("2", "Kitfo", "300.00", int64(0), false))

	items, err := repo.GetMenuItems(context.Background(), []string{"1", "2"})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, money.FromMajor(300), items["2"].UnitPrice)
	assert.False(t, items["2"].Available)
}

func TestGetMenuItems_Empty(t *testing.T) {
	repo, mock := newRepo(t)

	items, err := repo.GetMenuItems(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
