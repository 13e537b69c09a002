package bookings

import (
	"context"
	"sync"
	"time"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	bookingRepo "github.com/suraSGML/meskeremhotelproject-sub000/internal/infra/storage/booking"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// memoryRepo хранилище в памяти с теми же гарантиями, что и SQL: уникальный ref, CAS по версии
type memoryRepo struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[domain.ResourceType]map[int64]*domain.Booking
	clock   time.Time
	creates int

	createErr error
	listErr   error
	// beforeUpdate вызывается перед CAS (имитация параллельной записи)
	beforeUpdate func(b *domain.Booking)
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		rows:  make(map[domain.ResourceType]map[int64]*domain.Booking),
		clock: time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (r *memoryRepo) insert(b domain.Booking) *domain.Booking {
	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	b.ID = r.nextID
	b.Version = 1
	b.CreatedAt = r.clock
	b.UpdatedAt = r.clock
	if r.rows[b.ResourceType] == nil {
		r.rows[b.ResourceType] = make(map[int64]*domain.Booking)
	}
	r.rows[b.ResourceType][b.ID] = &b
	out := b
	return &out
}

func (r *memoryRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.rows[b.ResourceType] {
		if existing.TransactionRef == b.TransactionRef {
			return nil, bookingRepo.ErrDuplicateTransactionRef
		}
	}
	r.creates++
	return r.insert(*b), nil
}

func (r *memoryRepo) GetByID(_ context.Context, rt domain.ResourceType, id int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[rt][id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (r *memoryRepo) GetByTransactionRef(_ context.Context, rt domain.ResourceType, ref string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.rows[rt] {
		if b.TransactionRef == ref {
			out := *b
			return &out, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *memoryRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Booking, 0)
	for _, b := range r.rows[filter.ResourceType] {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.ContactEmail != nil && b.Contact.Email != *filter.ContactEmail {
			continue
		}
		c := *b
		out = append(out, &c)
	}
	sortRecentFirst(out)
	return out, nil
}

func (r *memoryRepo) cas(rt domain.ResourceType, id, version int64, guard func(*domain.Booking) bool, apply func(*domain.Booking)) (*domain.Booking, error) {
	if r.beforeUpdate != nil {
		r.mu.Lock()
		if b, ok := r.rows[rt][id]; ok {
			r.beforeUpdate(b)
		}
		r.mu.Unlock()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[rt][id]
	if !ok || b.Version != version || !guard(b) {
		return nil, bookingRepo.ErrVersionConflict
	}
	apply(b)
	b.Version++
	r.clock = r.clock.Add(time.Minute)
	b.UpdatedAt = r.clock
	out := *b
	return &out, nil
}

func (r *memoryRepo) UpdateStatus(_ context.Context, rt domain.ResourceType, id int64, from, to domain.BookingStatus, version int64) (*domain.Booking, error) {
	return r.cas(rt, id, version,
		func(b *domain.Booking) bool { return b.Status == from },
		func(b *domain.Booking) { b.Status = to })
}

func (r *memoryRepo) UpdatePaymentStatus(_ context.Context, rt domain.ResourceType, id int64, from, to domain.PaymentStatus, version int64) (*domain.Booking, error) {
	return r.cas(rt, id, version,
		func(b *domain.Booking) bool { return b.PaymentStatus == from },
		func(b *domain.Booking) { b.PaymentStatus = to })
}

func (r *memoryRepo) UpdateTotal(_ context.Context, rt domain.ResourceType, id int64, total money.Money, version int64) (*domain.Booking, error) {
	return r.cas(rt, id, version,
		func(b *domain.Booking) bool { return b.TotalAmount == nil },
		func(b *domain.Booking) { b.TotalAmount = &total })
}

func (r *memoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rows := range r.rows {
		n += len(rows)
	}
	return n
}

// fakeTx выполняет функцию без реальной транзакции
type fakeTx struct {
	err error
}

func (t *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if t.err != nil {
		return t.err
	}
	return fn(ctx)
}

type event struct {
	key     string
	payload any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []event
	err    error
}

func (p *fakePublisher) PublishJSON(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event{key: key, payload: v})
	return p.err
}

func (p *fakePublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.key)
	}
	return out
}

type fakeMetrics struct {
	mu          sync.Mutex
	created     map[string]int
	transitions map[string]int
	conflicts   int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{created: map[string]int{}, transitions: map[string]int{}}
}

func (m *fakeMetrics) IncBookingCreated(rt, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created[rt+"/"+status]++
}

func (m *fakeMetrics) IncStatusTransition(rt, from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions[rt+"/"+from+"->"+to]++
}

func (m *fakeMetrics) IncConflict(string, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts++
}
