package get_payment_methods

import (
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/payment"
)

type MethodRegistry interface {
	MethodsFor(rt domain.ResourceType) []payment.Method
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
