package quote_booking

import (
	"context"

	quoteBooking "github.com/suraSGML/meskeremhotelproject-sub000/internal/usecase/quote_booking"
)

type QuoteUseCase interface {
	Execute(ctx context.Context, req *quoteBooking.Request) (*quoteBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
