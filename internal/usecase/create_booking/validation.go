package create_booking

import (
	"fmt"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса и разбирает способ оплаты
func validateRequest(req *Request) (domain.PaymentMethod, error) {
	if !req.ResourceType.IsValid() {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, fmt.Errorf("%w: %s", domain.ErrUnknownResourceType, req.ResourceType))
	}

	if req.PaymentMethod == "" {
		return "", domain.NewFieldError(domain.FieldPaymentMethod, fmt.Errorf("%w: payment method is required", ErrInvalidInput))
	}

	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return "", domain.NewFieldError(domain.FieldPaymentMethod, err)
	}

	return method, nil
}
