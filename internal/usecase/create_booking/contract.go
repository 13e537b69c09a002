package create_booking

import (
	"context"
	"time"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/draft"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
)

// DraftBuilder интерфейс сборки черновика из полей формы
type DraftBuilder interface {
	Build(ctx context.Context, req *drafts.Request) (draft.Draft, error)
}

// Settler интерфейс платёжного шлюза (имитация или реальный)
type Settler interface {
	Settle(ctx context.Context, d draft.Draft, method domain.PaymentMethod) (*domain.SettlementOutcome, error)
	Defer(ctx context.Context, d draft.Draft, method domain.PaymentMethod) (*domain.SettlementOutcome, error)
}

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	CreateBooking(ctx context.Context, d draft.Draft, outcome *domain.SettlementOutcome) (*models.BookingResponse, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
