package quote_booking

import (
	"context"
	"time"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/draft"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/payment"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
)

// DraftBuilder интерфейс сборки черновика из полей формы
type DraftBuilder interface {
	Build(ctx context.Context, req *drafts.Request) (draft.Draft, error)
}

// MethodRegistry интерфейс справочника способов оплаты
type MethodRegistry interface {
	MethodsFor(rt domain.ResourceType) []payment.Method
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

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
