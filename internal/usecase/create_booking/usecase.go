package create_booking

import (
	"context"
	"fmt"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
)

// UseCase use case оформления бронирования: черновик -> оплата -> сохранение
type UseCase struct {
	draftBuilder   DraftBuilder
	settler        Settler
	bookingService BookingService
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftBuilder DraftBuilder,
	settler Settler,
	bookingService BookingService,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftBuilder:   draftBuilder,
		settler:        settler,
		bookingService: bookingService,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case оформления бронирования.
// Бронирование сохраняется только после успешной оплаты и только если гость не ушёл со страницы.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("CreateBooking: type=%s, ref=%s, method=%s", req.ResourceType, req.ResourceRef, req.PaymentMethod)

	// 1. Валидация входных данных
	method, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем черновик с ценами из каталога
	d, err := uc.draftBuilder.Build(ctx, &drafts.Request{
		ResourceType: req.ResourceType,
		ResourceRef:  req.ResourceRef,
		Fields:       req.Fields,
		Cart:         req.Cart,
	})
	if err != nil {
		return nil, err
	}

	// 3. Черновик должен быть полным до обращения к шлюзу
	if err := d.Validate(uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: draft is not submittable: %v", err)
		return nil, err
	}

	// 4. Оплата; заявка без суммы только фиксирует способ оплаты
	settle := uc.settler.Settle
	if req.ResourceType.IsRequestOnly() {
		settle = uc.settler.Defer
	}
	outcome, err := settle(ctx, d, method)
	if err != nil {
		uc.logger.Warn("CreateBooking: settlement failed for %s/%s: %v", req.ResourceType, method, err)
		return nil, err
	}

	// 5. Гость ушёл, пока шла оплата - бронирование не создаём
	if err := ctx.Err(); err != nil {
		uc.logger.Warn("CreateBooking: submission abandoned after settlement ref=%s: %v", outcome.TransactionRef, err)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionAbandoned, err)
	}

	// 6. Сохраняем бронирование
	booking, err := uc.bookingService.CreateBooking(ctx, d, outcome)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created %s booking id=%d status=%s", booking.ResourceType, booking.ID, booking.Status)
	return booking, nil
}
