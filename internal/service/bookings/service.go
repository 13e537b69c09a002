package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/draft"
	bookingRepo "github.com/suraSGML/meskeremhotelproject-sub000/internal/infra/storage/booking"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
)

// publishTimeout ограничение на публикацию события после коммита
const publishTimeout = 5 * time.Second

// Service жизненный цикл бронирований: создание после оплаты и смена статусов персоналом
type Service struct {
	bookingRepo      BookingRepository
	txManager        TransactionManager
	publisher        EventPublisher
	metrics          Metrics
	logger           Logger
	strictInvariants bool
}

// NewService создает новый экземпляр сервиса бронирований.
// strictInvariants включает панику при несогласованных платёжных полях (для разработки).
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
	strictInvariants bool,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		bookingRepo:      bookingRepo,
		txManager:        txManager,
		publisher:        publisher,
		metrics:          metrics,
		logger:           logger,
		strictInvariants: strictInvariants,
	}
}

// CreateBooking сохраняет бронирование по проведённой оплате.
// Статус: paid -> confirmed, иначе pending. Повторный вызов с тем же номером транзакции
// возвращает уже сохранённое бронирование и не создаёт второе.
func (s *Service) CreateBooking(ctx context.Context, d draft.Draft, outcome *domain.SettlementOutcome) (*models.BookingResponse, error) {
	// 1. Платёжные поля должны быть согласованы
	if err := s.checkOutcome(d, outcome); err != nil {
		return nil, err
	}

	// 2. Сумма всегда пересчитывается из черновика
	total, err := d.ComputedTotal()
	if err != nil {
		s.logger.Warn("CreateBooking: failed to compute total for %s ref=%s: %v", d.ResourceType, outcome.TransactionRef, err)
		return nil, err
	}

	booking := &domain.Booking{
		ResourceType:   d.ResourceType,
		ResourceRef:    d.ResourceRef,
		Contact:        d.Contact,
		Params:         d.Params.Clone(),
		TotalAmount:    total,
		PaymentMethod:  outcome.Method,
		PaymentStatus:  outcome.PaymentStatus,
		TransactionRef: outcome.TransactionRef,
		Status:         domain.InitialStatusFor(outcome.PaymentStatus),
		Notes:          d.Notes,
	}

	var result *domain.Booking
	created := false

	// 3. Одна сериализуемая транзакция: либо запись целиком, либо ничего
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.bookingRepo.GetByTransactionRef(txCtx, booking.ResourceType, booking.TransactionRef)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: CreateBooking - lookup by transaction ref: %v", ErrPersistence, err)
		}

		saved, err := s.bookingRepo.Create(txCtx, booking)
		if errors.Is(err, bookingRepo.ErrDuplicateTransactionRef) {
			// Параллельный повтор успел вставить строку
			existing, err := s.bookingRepo.GetByTransactionRef(txCtx, booking.ResourceType, booking.TransactionRef)
			if err != nil {
				return fmt.Errorf("%w: CreateBooking - reload duplicate: %v", ErrPersistence, err)
			}
			result = existing
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: CreateBooking - insert: %v", ErrPersistence, err)
		}

		result = saved
		created = true
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPersistence) {
			err = fmt.Errorf("%w: CreateBooking - transaction: %v", ErrPersistence, err)
		}
		s.logger.Error("CreateBooking: %s ref=%s: %v", booking.ResourceType, booking.TransactionRef, err)
		return nil, err
	}

	if !created {
		s.logger.Info("CreateBooking: ref=%s already stored as %s id=%d, returning existing",
			booking.TransactionRef, result.ResourceType, result.ID)
		return models.FromDomainBooking(result), nil
	}

	s.metrics.IncBookingCreated(string(result.ResourceType), string(result.Status))
	s.publish(ctx, EventBookingCreated, BookingCreatedEvent{
		BookingID:      result.ID,
		ResourceType:   string(result.ResourceType),
		ResourceRef:    result.ResourceRef,
		ContactEmail:   result.Contact.Email,
		TotalAmount:    result.TotalAmount,
		PaymentMethod:  string(result.PaymentMethod),
		PaymentStatus:  string(result.PaymentStatus),
		TransactionRef: result.TransactionRef,
		Status:         string(result.Status),
		OccurredAt:     result.CreatedAt,
	})

	s.logger.Info("CreateBooking: created %s id=%d status=%s payment=%s/%s ref=%s",
		result.ResourceType, result.ID, result.Status, result.PaymentMethod, result.PaymentStatus, result.TransactionRef)

	return models.FromDomainBooking(result), nil
}

// Transition меняет статус бронирования по машине состояний.
// Применяется через compare-and-swap по статусу и версии: параллельное изменение даёт ErrConflict.
func (s *Service) Transition(ctx context.Context, req *models.TransitionRequest) (*models.BookingResponse, error) {
	s.logger.Info("Transition: %s id=%d -> %s by %s", req.ResourceType, req.BookingID, req.Status, req.ActorEmail)

	target, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("Transition: invalid status=%q: %v", req.Status, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current, err := s.load(ctx, "Transition", req.ResourceType, req.BookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkVersion("Transition", current, req.Version); err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(target) {
		s.logger.Warn("Transition: %s id=%d %s -> %s is not allowed", req.ResourceType, req.BookingID, current.Status, target)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, req.ResourceType, req.BookingID, current.Status, target, current.Version)
	if err != nil {
		return nil, s.writeError("Transition", req.ResourceType, req.BookingID, err)
	}

	s.metrics.IncStatusTransition(string(req.ResourceType), string(current.Status), string(target))
	s.publish(ctx, EventStatusChanged, StatusChangedEvent{
		BookingID:    updated.ID,
		ResourceType: string(updated.ResourceType),
		ContactEmail: updated.Contact.Email,
		From:         string(current.Status),
		To:           string(updated.Status),
		Version:      updated.Version,
		Actor:        req.ActorEmail,
		OccurredAt:   updated.UpdatedAt,
	})

	s.logger.Info("Transition: %s id=%d %s -> %s, version=%d", req.ResourceType, req.BookingID, current.Status, target, updated.Version)
	return models.FromDomainBooking(updated), nil
}

// UpdatePaymentStatus корректировка статуса оплаты персоналом (например, гость оплатил в отеле).
// paid окончательный: оплата не применяется дважды.
func (s *Service) UpdatePaymentStatus(ctx context.Context, req *models.UpdatePaymentStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdatePaymentStatus: %s id=%d -> %s by %s", req.ResourceType, req.BookingID, req.PaymentStatus, req.ActorEmail)

	target, err := domain.ParsePaymentStatus(req.PaymentStatus)
	if err != nil {
		s.logger.Warn("UpdatePaymentStatus: invalid payment status=%q: %v", req.PaymentStatus, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current, err := s.load(ctx, "UpdatePaymentStatus", req.ResourceType, req.BookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkVersion("UpdatePaymentStatus", current, req.Version); err != nil {
		return nil, err
	}

	if current.Status == domain.StatusCancelled {
		s.logger.Warn("UpdatePaymentStatus: %s id=%d is cancelled", req.ResourceType, req.BookingID)
		return nil, fmt.Errorf("%w: cancelled", ErrBookingClosed)
	}

	if !current.PaymentStatus.CanTransitionTo(target) {
		s.logger.Warn("UpdatePaymentStatus: %s id=%d %s -> %s is not allowed",
			req.ResourceType, req.BookingID, current.PaymentStatus, target)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidPaymentTransition, current.PaymentStatus, target)
	}

	updated, err := s.bookingRepo.UpdatePaymentStatus(ctx, req.ResourceType, req.BookingID, current.PaymentStatus, target, current.Version)
	if err != nil {
		return nil, s.writeError("UpdatePaymentStatus", req.ResourceType, req.BookingID, err)
	}

	s.publish(ctx, EventPaymentUpdated, PaymentUpdatedEvent{
		BookingID:    updated.ID,
		ResourceType: string(updated.ResourceType),
		From:         string(current.PaymentStatus),
		To:           string(updated.PaymentStatus),
		Version:      updated.Version,
		Actor:        req.ActorEmail,
		OccurredAt:   updated.UpdatedAt,
	})

	s.logger.Info("UpdatePaymentStatus: %s id=%d %s -> %s", req.ResourceType, req.BookingID, current.PaymentStatus, target)
	return models.FromDomainBooking(updated), nil
}

// SetTotal выставляет сумму бронирования, созданного без неё (заявка на зал).
// Только если сумма ещё не выставлена и бронирование не в финальном статусе.
func (s *Service) SetTotal(ctx context.Context, req *models.SetTotalRequest) (*models.BookingResponse, error) {
	s.logger.Info("SetTotal: %s id=%d total=%s by %s", req.ResourceType, req.BookingID, req.TotalAmount, req.ActorEmail)

	if !req.TotalAmount.IsPositive() {
		s.logger.Warn("SetTotal: non-positive total=%s", req.TotalAmount)
		return nil, domain.NewFieldError(domain.FieldTotalAmount, ErrInvalidInput)
	}

	current, err := s.load(ctx, "SetTotal", req.ResourceType, req.BookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkVersion("SetTotal", current, req.Version); err != nil {
		return nil, err
	}

	if current.Status.IsTerminal() {
		s.logger.Warn("SetTotal: %s id=%d is %s", req.ResourceType, req.BookingID, current.Status)
		return nil, fmt.Errorf("%w: %s", ErrBookingClosed, current.Status)
	}

	if current.IsPriced() {
		s.logger.Warn("SetTotal: %s id=%d already priced at %s", req.ResourceType, req.BookingID, *current.TotalAmount)
		return nil, ErrTotalAlreadySet
	}

	updated, err := s.bookingRepo.UpdateTotal(ctx, req.ResourceType, req.BookingID, req.TotalAmount, current.Version)
	if err != nil {
		return nil, s.writeError("SetTotal", req.ResourceType, req.BookingID, err)
	}

	s.publish(ctx, EventBookingTotalSet, TotalSetEvent{
		BookingID:    updated.ID,
		ResourceType: string(updated.ResourceType),
		ContactEmail: updated.Contact.Email,
		TotalAmount:  req.TotalAmount,
		Version:      updated.Version,
		Actor:        req.ActorEmail,
		OccurredAt:   updated.UpdatedAt,
	})

	s.logger.Info("SetTotal: %s id=%d priced at %s", req.ResourceType, req.BookingID, req.TotalAmount)
	return models.FromDomainBooking(updated), nil
}

// GetByID получает бронирование по типу ресурса и ID
func (s *Service) GetByID(ctx context.Context, rt domain.ResourceType, id int64) (*models.BookingResponse, error) {
	booking, err := s.load(ctx, "GetByID", rt, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// ListByFilter бронирования одного типа ресурса для консоли персонала, сначала новые
func (s *Service) ListByFilter(ctx context.Context, req *models.ListRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByFilter: invalid filter for %s: %v", req.ResourceType, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListByFilter: repository error for %s: %v", req.ResourceType, err)
		return nil, fmt.Errorf("%w: ListByFilter - repository error: %v", ErrPersistence, err)
	}

	s.logger.Info("ListByFilter: fetched %d %s bookings", len(bookings), req.ResourceType)
	return models.FromDomainBookingList(bookings), nil
}

// ListByContact все бронирования гостя по всем типам ресурсов, сначала новые
func (s *Service) ListByContact(ctx context.Context, email string) (*models.BookingListResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: contact email is required", ErrInvalidInput)
	}

	// Таблицы независимы - читаем параллельно
	perType := make([][]*domain.Booking, len(domain.AllResourceTypes))
	g, gCtx := errgroup.WithContext(ctx)
	for i, rt := range domain.AllResourceTypes {
		i, rt := i, rt
		g.Go(func() error {
			list, err := s.bookingRepo.List(gCtx, domain.BookingsFilter{ResourceType: rt, ContactEmail: &email})
			if err != nil {
				return fmt.Errorf("%s: %v", rt, err)
			}
			perType[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("ListByContact: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByContact - repository error: %v", ErrPersistence, err)
	}

	var all []*domain.Booking
	for _, list := range perType {
		all = append(all, list...)
	}
	sortRecentFirst(all)

	s.logger.Info("ListByContact: fetched %d bookings", len(all))
	return models.FromDomainBookingList(all), nil
}

// checkOutcome проверяет согласованность результата оплаты с черновиком
func (s *Service) checkOutcome(d draft.Draft, outcome *domain.SettlementOutcome) error {
	switch {
	case outcome == nil:
		return s.violation("CreateBooking: nil settlement outcome for %s", d.ResourceType)
	case !outcome.Consistent():
		return s.violation("CreateBooking: inconsistent outcome method=%s status=%s ref=%q",
			outcome.Method, outcome.PaymentStatus, outcome.TransactionRef)
	case d.ResourceType.IsRequestOnly() && outcome.PaymentStatus == domain.PaymentPaid:
		return s.violation("CreateBooking: %s request cannot be paid before it is priced", d.ResourceType)
	}
	return nil
}

// violation нарушение инварианта: паника в строгом режиме, иначе ErrInvariantViolation
func (s *Service) violation(format string, v ...interface{}) error {
	msg := fmt.Sprintf(format, v...)
	s.logger.Error("%s", msg)
	if s.strictInvariants {
		panic(msg)
	}
	return fmt.Errorf("%w: %s", ErrInvariantViolation, msg)
}

func (s *Service) load(ctx context.Context, op string, rt domain.ResourceType, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, rt, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: %s id=%d not found", op, rt, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for %s id=%d: %v", op, rt, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrPersistence, op, err)
	}
	return booking, nil
}

// checkVersion сверяет версию, которую видел клиент, с текущей
func (s *Service) checkVersion(op string, current *domain.Booking, expected *int64) error {
	if expected == nil || *expected == current.Version {
		return nil
	}
	s.metrics.IncConflict(string(current.ResourceType), op)
	s.logger.Warn("%s: %s id=%d version mismatch: expected=%d current=%d",
		op, current.ResourceType, current.ID, *expected, current.Version)
	return fmt.Errorf("%w: expected version %d, current %d", ErrConflict, *expected, current.Version)
}

// writeError переводит ошибку compare-and-swap в ошибку сервиса
func (s *Service) writeError(op string, rt domain.ResourceType, id int64, err error) error {
	if errors.Is(err, bookingRepo.ErrVersionConflict) {
		s.metrics.IncConflict(string(rt), op)
		s.logger.Warn("%s: %s id=%d changed concurrently", op, rt, id)
		return ErrConflict
	}
	s.logger.Error("%s: repository error for %s id=%d: %v", op, rt, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrPersistence, op, err)
}

// publish отправляет событие после коммита; ошибка только логируется
func (s *Service) publish(ctx context.Context, key string, event any) {
	if s.publisher == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.PublishJSON(pubCtx, key, event); err != nil {
		s.logger.Error("publish %s: %v", key, err)
	}
}

func sortRecentFirst(bookings []*domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if !bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
		}
		return bookings[i].ID > bookings[j].ID
	})
}
