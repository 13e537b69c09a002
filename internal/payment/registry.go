package payment

import (
	"fmt"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/draft"
)

// Method способ оплаты с набором обязательных реквизитов
type Method struct {
	Code           domain.PaymentMethod `json:"code"`
	DisplayName    string               `json:"displayName"`
	RequiredFields []domain.Field       `json:"requiredFields"`
}

// Registry статический справочник способов оплаты, создаётся один раз при старте
type Registry struct {
	methods []Method
	byCode  map[domain.PaymentMethod]Method
}

// NewRegistry создаёт справочник со всеми способами оплаты
func NewRegistry() *Registry {
	methods := []Method{
		{Code: domain.MethodTelebirr, DisplayName: "Telebirr", RequiredFields: []domain.Field{domain.FieldPaymentPhone}},
		{Code: domain.MethodCBEBirr, DisplayName: "CBE Birr", RequiredFields: []domain.Field{domain.FieldPaymentPhone}},
		{Code: domain.MethodMPesa, DisplayName: "M-Pesa", RequiredFields: []domain.Field{domain.FieldPaymentPhone}},
		{Code: domain.MethodBankTransfer, DisplayName: "Bank Transfer", RequiredFields: []domain.Field{domain.FieldAccountNumber}},
		{Code: domain.MethodPayAtHotel, DisplayName: "Pay at Hotel", RequiredFields: []domain.Field{}},
	}

	byCode := make(map[domain.PaymentMethod]Method, len(methods))
	for _, m := range methods {
		byCode[m.Code] = m
	}

	return &Registry{methods: methods, byCode: byCode}
}

// MethodsFor способы оплаты для типа ресурса. Сейчас всегда все пять, в постоянном порядке.
func (r *Registry) MethodsFor(_ domain.ResourceType) []Method {
	out := make([]Method, 0, len(r.methods))
	for _, m := range r.methods {
		out = append(out, m.copy())
	}
	return out
}

// RequiredFields обязательные реквизиты способа оплаты
func (r *Registry) RequiredFields(method domain.PaymentMethod) ([]domain.Field, error) {
	m, ok := r.byCode[method]
	if !ok {
		return nil, domain.NewFieldError(domain.FieldPaymentMethod, fmt.Errorf("%w: %q", domain.ErrUnknownPaymentMethod, method))
	}
	return m.copy().RequiredFields, nil
}

// Validate проверяет наличие реквизитов (только непустое значение, без проверки формата)
func (r *Registry) Validate(method domain.PaymentMethod, d draft.Draft) error {
	fields, err := r.RequiredFields(method)
	if err != nil {
		return err
	}
	for _, field := range fields {
		if d.PaymentField(field) == "" {
			return domain.NewFieldError(field, ErrMissingField)
		}
	}
	return nil
}

func (m Method) copy() Method {
	fields := make([]domain.Field, len(m.RequiredFields))
	copy(fields, m.RequiredFields)
	m.RequiredFields = fields
	return m
}
