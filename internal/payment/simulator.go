package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/draft"
)

// Settler проведение оплаты по черновику.
// Реальный шлюз (Telebirr, банк) реализует тот же интерфейс.
type Settler interface {
	// Settle проводит оплату; единственный блокирующий шаг оформления
	Settle(ctx context.Context, d draft.Draft, method domain.PaymentMethod) (*domain.SettlementOutcome, error)
	// Defer фиксирует выбранный способ оплаты без списания (заявки без суммы)
	Defer(ctx context.Context, d draft.Draft, method domain.PaymentMethod) (*domain.SettlementOutcome, error)
}

// Metrics метрики проведения оплаты
type Metrics interface {
	ObserveSettlement(method, paymentStatus, result string, d time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Clock источник текущего времени (подменяется в тестах)
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Результаты оплаты для метрик
const (
	resultSettled   = "settled"
	resultDeferred  = "deferred"
	resultInvalid   = "invalid"
	resultTimeout   = "timeout"
	resultCancelled = "cancelled"
)

// SimulatorConfig параметры имитации платёжного шлюза
type SimulatorConfig struct {
	Delay   time.Duration // имитация задержки авторизации
	Timeout time.Duration // жёсткий таймаут авторизации, должен быть больше Delay
}

// Simulator имитация платёжного шлюза: проверяет реквизиты, ждёт Delay и всегда проводит оплату
type Simulator struct {
	registry *Registry
	cfg      SimulatorConfig
	clock    Clock
	newRef   func(now time.Time) string
	metrics  Metrics
	logger   Logger
}

// NewSimulator создаёт имитацию шлюза; metrics может быть nil
func NewSimulator(registry *Registry, cfg SimulatorConfig, metrics Metrics, logger Logger) *Simulator {
	return &Simulator{
		registry: registry,
		cfg:      cfg,
		clock:    realClock{},
		newRef:   NewTransactionRef,
		metrics:  metrics,
		logger:   logger,
	}
}

// WithClock подменяет источник времени
func (s *Simulator) WithClock(clock Clock) *Simulator {
	s.clock = clock
	return s
}

// Settle проводит оплату черновика выбранным способом
func (s *Simulator) Settle(ctx context.Context, d draft.Draft, method domain.PaymentMethod) (*domain.SettlementOutcome, error) {
	started := time.Now()

	// 1. Черновик должен быть готов к отправке
	// 2. Реквизиты способа оплаты должны быть заполнены
	if err := s.validate(d, method); err != nil {
		s.observe(method, "", resultInvalid, started)
		s.logger.Warn("Settle: %s/%s rejected: %v", d.ResourceType, method, err)
		return nil, err
	}

	// 3. Авторизация с задержкой в пределах таймаута
	if err := s.authorize(ctx); err != nil {
		result := resultCancelled
		if errors.Is(err, ErrSettlementTimeout) {
			result = resultTimeout
			s.logger.Error("Settle: %s/%s: %v", d.ResourceType, method, err)
		} else {
			s.logger.Warn("Settle: %s/%s: %v", d.ResourceType, method, err)
		}
		s.observe(method, "", result, started)
		return nil, err
	}

	// 4-5. Номер транзакции и статус оплаты
	now := s.clock.Now()
	outcome := &domain.SettlementOutcome{
		Method:         method,
		TransactionRef: s.newRef(now),
		PaymentStatus:  ResolveStatus(method),
		SettledAt:      now,
	}

	s.observe(method, string(outcome.PaymentStatus), resultSettled, started)
	s.logger.Info("Settle: %s/%s settled ref=%s status=%s",
		d.ResourceType, method, outcome.TransactionRef, outcome.PaymentStatus)

	return outcome, nil
}

// Defer проверяет черновик и реквизиты и выдаёт номер транзакции без проведения оплаты
func (s *Simulator) Defer(ctx context.Context, d draft.Draft, method domain.PaymentMethod) (*domain.SettlementOutcome, error) {
	started := time.Now()

	if err := s.validate(d, method); err != nil {
		s.observe(method, "", resultInvalid, started)
		s.logger.Warn("Defer: %s/%s rejected: %v", d.ResourceType, method, err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		s.observe(method, "", resultCancelled, started)
		return nil, fmt.Errorf("%w: %v", ErrSettlementCancelled, err)
	}

	now := s.clock.Now()
	outcome := DeferredOutcome(method, s.newRef(now), now)

	s.observe(method, string(outcome.PaymentStatus), resultDeferred, started)
	s.logger.Info("Defer: %s/%s ref=%s", d.ResourceType, method, outcome.TransactionRef)

	return outcome, nil
}

// ResolveStatus статус оплаты после проведения: оплата в отеле остаётся pending, остальные paid
func ResolveStatus(method domain.PaymentMethod) domain.PaymentStatus {
	if method.IsCash() {
		return domain.PaymentPending
	}
	return domain.PaymentPaid
}

// DeferredOutcome результат для заявки без суммы: деньги не списываются, статус unpaid
func DeferredOutcome(method domain.PaymentMethod, ref string, now time.Time) *domain.SettlementOutcome {
	return &domain.SettlementOutcome{
		Method:         method,
		TransactionRef: ref,
		PaymentStatus:  domain.PaymentUnpaid,
		SettledAt:      now,
	}
}

func (s *Simulator) validate(d draft.Draft, method domain.PaymentMethod) error {
	if err := d.Validate(s.clock.Now()); err != nil {
		return err
	}
	return s.registry.Validate(method, d)
}

// authorize ждёт cfg.Delay, но не дольше cfg.Timeout и не дольше жизни ctx
func (s *Simulator) authorize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSettlementCancelled, err)
	}

	authCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		authCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	if s.cfg.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.cfg.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-authCtx.Done():
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", ErrSettlementCancelled, ctx.Err())
		}
		return fmt.Errorf("%w: no response within %s", ErrSettlementTimeout, s.cfg.Timeout)
	}
}

func (s *Simulator) observe(method domain.PaymentMethod, status, result string, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveSettlement(string(method), status, result, time.Since(started))
}
