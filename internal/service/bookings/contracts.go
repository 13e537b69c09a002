package bookings

import (
	"context"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, rt domain.ResourceType, id int64) (*domain.Booking, error)
	GetByTransactionRef(ctx context.Context, rt domain.ResourceType, ref string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, rt domain.ResourceType, id int64, from, to domain.BookingStatus, version int64) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, rt domain.ResourceType, id int64, from, to domain.PaymentStatus, version int64) (*domain.Booking, error)
	UpdateTotal(ctx context.Context, rt domain.ResourceType, id int64, total money.Money, version int64) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий бронирований (RabbitMQ)
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Metrics счётчики жизненного цикла бронирований
type Metrics interface {
	IncBookingCreated(resourceType, status string)
	IncStatusTransition(resourceType, from, to string)
	IncConflict(resourceType, operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) IncBookingCreated(string, string)           {}
func (noopMetrics) IncStatusTransition(string, string, string) {}
func (noopMetrics) IncConflict(string, string)                 {}
