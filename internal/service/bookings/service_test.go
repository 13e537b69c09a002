package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/draft"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/ptr"
)

type fixture struct {
	svc       *Service
	repo      *memoryRepo
	tx        *fakeTx
	publisher *fakePublisher
	metrics   *fakeMetrics
}

func newFixture(strict bool) *fixture {
	f := &fixture{
		repo:      newMemoryRepo(),
		tx:        &fakeTx{},
		publisher: &fakePublisher{},
		metrics:   newFakeMetrics(),
	}
	f.svc = NewService(f.repo, f.tx, f.publisher, f.metrics, nopLogger{}, strict)
	return f
}

func set(t *testing.T, d draft.Draft, field domain.Field, value string) draft.Draft {
	t.Helper()
	next, err := d.Update(field, value)
	require.NoError(t, err)
	return next
}

func roomDraft(t *testing.T) draft.Draft {
	t.Helper()
	d := draft.New(domain.ResourceRoom, "12")
	d = set(t, d, domain.FieldName, "Abebe Kebede")
	d = set(t, d, domain.FieldEmail, "abebe@example.com")
	d = set(t, d, domain.FieldCheckIn, "2024-06-01")
	d = set(t, d, domain.FieldCheckOut, "2024-06-04")
	d = set(t, d, domain.FieldGuests, "2")
	return d.WithCatalog(&domain.CatalogEntry{ID: "12", Name: "Deluxe King", UnitPrice: money.FromMajor(120), Available: true})
}

func spaDraft(t *testing.T) draft.Draft {
	t.Helper()
	d := draft.New(domain.ResourceSpa, "3")
	d = set(t, d, domain.FieldName, "Hana Tesfaye")
	d = set(t, d, domain.FieldEmail, "hana@example.com")
	d = set(t, d, domain.FieldDate, "2024-06-02")
	d = set(t, d, domain.FieldTimeSlot, "10:00")
	return d.WithCatalog(&domain.CatalogEntry{ID: "3", Name: "Massage", UnitPrice: money.FromMajor(800), Available: true})
}

func eventSpaceDraft(t *testing.T) draft.Draft {
	t.Helper()
	d := draft.New(domain.ResourceEventSpace, "hall")
	d = set(t, d, domain.FieldName, "Selam")
	d = set(t, d, domain.FieldEmail, "selam@example.com")
	d = set(t, d, domain.FieldDate, "2024-08-15")
	d = set(t, d, domain.FieldGuests, "150")
	d = set(t, d, domain.FieldEventType, "wedding")
	return d.WithCatalog(&domain.CatalogEntry{ID: "hall", Name: "Grand Hall", Capacity: 300, Available: true})
}

func outcome(method domain.PaymentMethod, status domain.PaymentStatus, ref string) *domain.SettlementOutcome {
	return &domain.SettlementOutcome{Method: method, PaymentStatus: status, TransactionRef: ref, SettledAt: time.Now()}
}

func TestCreateBooking_ScenarioA_RoomBankTransfer(t *testing.T) {
	f := newFixture(false)

	resp, err := f.svc.CreateBooking(context.Background(), roomDraft(t),
		outcome(domain.MethodBankTransfer, domain.PaymentPaid, "TX-A-000000000001"))

	require.NoError(t, err)
	require.NotNil(t, resp.TotalAmount)
	assert.Equal(t, money.FromMajor(360), *resp.TotalAmount)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "bank_transfer", resp.PaymentMethod)
	assert.Equal(t, "2024-06-01", *resp.Params.CheckIn)
	assert.Equal(t, []string{EventBookingCreated}, f.publisher.keys())
	assert.Equal(t, 1, f.metrics.created["room/confirmed"])
}

func TestCreateBooking_ScenarioB_SpaPayAtHotel(t *testing.T) {
	f := newFixture(false)

	resp, err := f.svc.CreateBooking(context.Background(), spaDraft(t),
		outcome(domain.MethodPayAtHotel, domain.PaymentPending, "TX-B-000000000001"))

	require.NoError(t, err)
	assert.Equal(t, money.FromMajor(800), *resp.TotalAmount)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Equal(t, "pending", resp.Status)
}

func TestCreateBooking_EventSpaceRequestIsUnpriced(t *testing.T) {
	f := newFixture(false)

	resp, err := f.svc.CreateBooking(context.Background(), eventSpaceDraft(t),
		outcome(domain.MethodBankTransfer, domain.PaymentUnpaid, "TX-E-000000000001"))

	require.NoError(t, err)
	assert.Nil(t, resp.TotalAmount)
	assert.Equal(t, "unpaid", resp.PaymentStatus)
	assert.Equal(t, "pending", resp.Status)
}

func TestCreateBooking_IdempotentByTransactionRef(t *testing.T) {
	f := newFixture(false)
	o := outcome(domain.MethodTelebirr, domain.PaymentPaid, "TX-I-000000000001")

	first, err := f.svc.CreateBooking(context.Background(), roomDraft(t), o)
	require.NoError(t, err)
	second, err := f.svc.CreateBooking(context.Background(), roomDraft(t), o)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, f.repo.count())
	assert.Equal(t, []string{EventBookingCreated}, f.publisher.keys())
}

func TestCreateBooking_ConcurrentRetriesInsertOnce(t *testing.T) {
	f := newFixture(false)
	o := outcome(domain.MethodMPesa, domain.PaymentPaid, "TX-C-000000000001")
	d := roomDraft(t)

	const retries = 20
	ids := make([]int64, retries)
	var wg sync.WaitGroup
	wg.Add(retries)
	for i := 0; i < retries; i++ {
		go func(i int) {
			defer wg.Done()
			resp, err := f.svc.CreateBooking(context.Background(), d, o)
			if assert.NoError(t, err) {
				ids[i] = resp.ID
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, f.repo.count())
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestCreateBooking_PersistenceError(t *testing.T) {
	f := newFixture(false)
	f.repo.createErr = errors.New("disk full")

	_, err := f.svc.CreateBooking(context.Background(), roomDraft(t),
		outcome(domain.MethodTelebirr, domain.PaymentPaid, "TX-P-000000000001"))

	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, f.publisher.keys())
}

func TestCreateBooking_TransactionError(t *testing.T) {
	f := newFixture(false)
	f.tx.err = errors.New("could not serialize access")

	_, err := f.svc.CreateBooking(context.Background(), roomDraft(t),
		outcome(domain.MethodTelebirr, domain.PaymentPaid, "TX-T-000000000001"))

	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 0, f.repo.count())
}

func TestCreateBooking_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture(false)
	f.publisher.err = errors.New("broker down")

	_, err := f.svc.CreateBooking(context.Background(), spaDraft(t),
		outcome(domain.MethodPayAtHotel, domain.PaymentPending, "TX-Q-000000000001"))

	assert.NoError(t, err)
	assert.Equal(t, 1, f.repo.count())
}

func TestCreateBooking_InvariantViolation(t *testing.T) {
	cases := []struct {
		name    string
		draft   func(t *testing.T) draft.Draft
		outcome *domain.SettlementOutcome
	}{
		{"paid without ref", roomDraft, outcome(domain.MethodTelebirr, domain.PaymentPaid, "")},
		{"cash marked paid", roomDraft, outcome(domain.MethodPayAtHotel, domain.PaymentPaid, "TX-V-1")},
		{"nil outcome", roomDraft, nil},
		{"unpriced request paid", eventSpaceDraft, outcome(domain.MethodTelebirr, domain.PaymentPaid, "TX-V-2")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(false)
			_, err := f.svc.CreateBooking(context.Background(), tc.draft(t), tc.outcome)
			assert.ErrorIs(t, err, ErrInvariantViolation)
			assert.Equal(t, 0, f.repo.count())

			strict := newFixture(true)
			assert.Panics(t, func() {
				_, _ = strict.svc.CreateBooking(context.Background(), tc.draft(t), tc.outcome)
			})
			assert.Equal(t, 0, strict.repo.count())
		})
	}
}

func createRoom(t *testing.T, f *fixture, ref string) *models.BookingResponse {
	t.Helper()
	resp, err := f.svc.CreateBooking(context.Background(), roomDraft(t), outcome(domain.MethodTelebirr, domain.PaymentPaid, ref))
	require.NoError(t, err)
	return resp
}

func transition(f *fixture, id int64, status string, version *int64) (*models.BookingResponse, error) {
	return f.svc.Transition(context.Background(), &models.TransitionRequest{
		ResourceType: domain.ResourceRoom, BookingID: id, Status: status, Version: version, ActorEmail: "staff@hotel.et",
	})
}

func TestTransition_ConfirmedToCompleted(t *testing.T) {
	f := newFixture(false)
	b := createRoom(t, f, "TX-1")

	resp, err := transition(f, b.ID, "completed", ptr.Ptr(b.Version))

	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, b.Version+1, resp.Version)
	assert.Equal(t, []string{EventBookingCreated, EventStatusChanged}, f.publisher.keys())
	assert.Equal(t, 1, f.metrics.transitions["room/confirmed->completed"])
}

func TestTransition_ScenarioD_CompletedIsTerminal(t *testing.T) {
	f := newFixture(false)
	b := createRoom(t, f, "TX-D")
	_, err := transition(f, b.ID, "completed", nil)
	require.NoError(t, err)

	for _, target := range []string{"confirmed", "pending", "cancelled", "completed"} {
		_, err = transition(f, b.ID, target, nil)
		assert.ErrorIs(t, err, ErrInvalidTransition, target)
	}
}

func TestTransition_CancelledIsTerminal(t *testing.T) {
	f := newFixture(false)
	b := createRoom(t, f, "TX-X")
	_, err := transition(f, b.ID, "cancelled", nil)
	require.NoError(t, err)

	_, err = transition(f, b.ID, "confirmed", nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_Errors(t *testing.T) {
	f := newFixture(false)
	b := createRoom(t, f, "TX-E")

	_, err := transition(f, 999, "cancelled", nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = transition(f, b.ID, "no_show", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = transition(f, b.ID, "cancelled", ptr.Ptr(b.Version+5))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, f.metrics.conflicts)
}

func TestTransition_ConcurrentWriteIsConflict(t *testing.T) {
	f := newFixture(false)
	b := createRoom(t, f, "TX-R")

	// другой сотрудник успевает отменить бронирование между чтением и записью
	f.repo.beforeUpdate = func(row *domain.Booking) {
		row.Status = domain.StatusCancelled
		row.Version++
		f.repo.beforeUpdate = nil
	}

	_, err := transition(f, b.ID, "completed", nil)

	assert.ErrorIs(t, err, ErrConflict)
	stored, err := f.svc.GetByID(context.Background(), domain.ResourceRoom, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", stored.Status)
}

func TestTransition_ParallelStaffOnlyOneWins(t *testing.T) {
	f := newFixture(false)
	b := createRoom(t, f, "TX-W")

	targets := []string{"completed", "cancelled"}
	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target string) {
			defer wg.Done()
			_, errs[i] = transition(f, b.ID, target, ptr.Ptr(b.Version))
		}(i, target)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalidTransition), err)
	}
	assert.Equal(t, 1, succeeded)
}

func TestUpdatePaymentStatus(t *testing.T) {
	f := newFixture(false)
	b, err := f.svc.CreateBooking(context.Background(), spaDraft(t),
		outcome(domain.MethodPayAtHotel, domain.PaymentPending, "TX-PAY"))
	require.NoError(t, err)

	req := &models.UpdatePaymentStatusRequest{ResourceType: domain.ResourceSpa, BookingID: b.ID, PaymentStatus: "paid"}
	resp, err := f.svc.UpdatePaymentStatus(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, "pending", resp.Status)

	_, err = f.svc.UpdatePaymentStatus(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPaymentTransition)

	_, err = f.svc.UpdatePaymentStatus(context.Background(), &models.UpdatePaymentStatusRequest{
		ResourceType: domain.ResourceSpa, BookingID: b.ID, PaymentStatus: "refunded",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, f.publisher.keys(), EventPaymentUpdated)
}

func TestUpdatePaymentStatus_CancelledBooking(t *testing.T) {
	f := newFixture(false)
	b, err := f.svc.CreateBooking(context.Background(), spaDraft(t),
		outcome(domain.MethodPayAtHotel, domain.PaymentPending, "TX-PC"))
	require.NoError(t, err)
	_, err = f.svc.Transition(context.Background(), &models.TransitionRequest{
		ResourceType: domain.ResourceSpa, BookingID: b.ID, Status: "cancelled",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdatePaymentStatus(context.Background(), &models.UpdatePaymentStatusRequest{
		ResourceType: domain.ResourceSpa, BookingID: b.ID, PaymentStatus: "paid",
	})

	assert.ErrorIs(t, err, ErrBookingClosed)
}

func TestSetTotal(t *testing.T) {
	f := newFixture(false)
	b, err := f.svc.CreateBooking(context.Background(), eventSpaceDraft(t),
		outcome(domain.MethodBankTransfer, domain.PaymentUnpaid, "TX-EV"))
	require.NoError(t, err)

	req := &models.SetTotalRequest{
		ResourceType: domain.ResourceEventSpace, BookingID: b.ID,
		TotalAmount: money.FromMajor(25000), Version: ptr.Ptr(b.Version),
	}
	resp, err := f.svc.SetTotal(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.TotalAmount)
	assert.Equal(t, money.FromMajor(25000), *resp.TotalAmount)

	req.Version = ptr.Ptr(resp.Version)
	_, err = f.svc.SetTotal(context.Background(), req)
	assert.ErrorIs(t, err, ErrTotalAlreadySet)

	_, err = f.svc.SetTotal(context.Background(), &models.SetTotalRequest{
		ResourceType: domain.ResourceEventSpace, BookingID: b.ID, TotalAmount: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	var fieldErr *domain.FieldError
	assert.ErrorAs(t, err, &fieldErr)
}

func TestSetTotal_ClosedBooking(t *testing.T) {
	f := newFixture(false)
	b, err := f.svc.CreateBooking(context.Background(), eventSpaceDraft(t),
		outcome(domain.MethodBankTransfer, domain.PaymentUnpaid, "TX-EC"))
	require.NoError(t, err)
	_, err = f.svc.Transition(context.Background(), &models.TransitionRequest{
		ResourceType: domain.ResourceEventSpace, BookingID: b.ID, Status: "cancelled",
	})
	require.NoError(t, err)

	_, err = f.svc.SetTotal(context.Background(), &models.SetTotalRequest{
		ResourceType: domain.ResourceEventSpace, BookingID: b.ID, TotalAmount: money.FromMajor(100),
	})

	assert.ErrorIs(t, err, ErrBookingClosed)
}

func TestListByContact_MergesAllTypesRecentFirst(t *testing.T) {
	f := newFixture(false)

	room := createRoom(t, f, "TX-L1")
	d := set(t, spaDraft(t), domain.FieldEmail, "abebe@example.com")
	spa, err := f.svc.CreateBooking(context.Background(), d, outcome(domain.MethodPayAtHotel, domain.PaymentPending, "TX-L2"))
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(context.Background(), spaDraft(t), outcome(domain.MethodPayAtHotel, domain.PaymentPending, "TX-L3"))
	require.NoError(t, err)

	list, err := f.svc.ListByContact(context.Background(), "abebe@example.com")

	require.NoError(t, err)
	require.Len(t, list.Bookings, 2)
	assert.Equal(t, spa.ID, list.Bookings[0].ID)
	assert.Equal(t, room.ID, list.Bookings[1].ID)
}

func TestListByContact_Errors(t *testing.T) {
	f := newFixture(false)

	_, err := f.svc.ListByContact(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	f.repo.listErr = errors.New("timeout")
	_, err = f.svc.ListByContact(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestListByFilter(t *testing.T) {
	f := newFixture(false)
	b := createRoom(t, f, "TX-F1")
	createRoom(t, f, "TX-F2")
	_, err := transition(f, b.ID, "cancelled", nil)
	require.NoError(t, err)

	list, err := f.svc.ListByFilter(context.Background(), &models.ListRequest{
		ResourceType: domain.ResourceRoom, Status: ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)
	require.Len(t, list.Bookings, 1)
	assert.Equal(t, b.ID, list.Bookings[0].ID)

	empty, err := f.svc.ListByFilter(context.Background(), &models.ListRequest{ResourceType: domain.ResourceTransfer})
	require.NoError(t, err)
	assert.NotNil(t, empty.Bookings)
	assert.Empty(t, empty.Bookings)

	_, err = f.svc.ListByFilter(context.Background(), &models.ListRequest{
		ResourceType: domain.ResourceRoom, Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
