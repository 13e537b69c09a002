package quote_booking

import (
	"context"
	"errors"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/draft"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/pricing"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
)

// UseCase расчёт суммы и готовности формы без оплаты и сохранения
type UseCase struct {
	draftBuilder DraftBuilder
	registry     MethodRegistry
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(draftBuilder DraftBuilder, registry MethodRegistry, logger Logger) *UseCase {
	return &UseCase{
		draftBuilder: draftBuilder,
		registry:     registry,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Execute пересчитывает сумму по текущим полям формы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Собираем черновик; ошибки разбора полей и каталога возвращаем как есть
	d, err := uc.draftBuilder.Build(ctx, &drafts.Request{
		ResourceType: req.ResourceType,
		ResourceRef:  req.ResourceRef,
		Fields:       req.Fields,
		Cart:         req.Cart,
	})
	if err != nil {
		return nil, err
	}

	resp := &Response{
		RequiredFields: draft.RequiredFields(req.ResourceType),
		PaymentMethods: uc.registry.MethodsFor(req.ResourceType),
	}

	// 2. Сумма, если её уже можно посчитать
	if d.Catalog != nil || !draft.NeedsCatalog(req.ResourceType) {
		total, err := d.ComputedTotal()
		if err == nil {
			resp.TotalAmount = total
		}
	}

	if d.Params.CheckIn != nil && d.Params.CheckOut != nil {
		if nights := pricing.Nights(*d.Params.CheckIn, *d.Params.CheckOut); nights > 0 {
			resp.Nights = &nights
		}
	}

	// 3. Готовность к оплате
	if err := d.Validate(uc.timeProvider.Now()); err != nil {
		resp.Problem = toProblem(err)
		return resp, nil
	}
	resp.Submittable = true

	return resp, nil
}

func toProblem(err error) *Problem {
	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		return &Problem{Field: fieldErr.Field, Message: fieldErr.Err.Error()}
	}
	return &Problem{Message: err.Error()}
}
