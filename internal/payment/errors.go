package payment

import "errors"

var (
	// ErrMissingField не заполнен реквизит, обязательный для способа оплаты
	ErrMissingField = errors.New("payment: required payment field is missing")

	// ErrSettlementTimeout авторизация не уложилась в жёсткий таймаут
	ErrSettlementTimeout = errors.New("payment: settlement timed out")

	// ErrSettlementCancelled вызывающая сторона отменила оплату до завершения
	ErrSettlementCancelled = errors.New("payment: settlement cancelled")

	// ErrDeclined платёжный шлюз отклонил операцию (окончательно для этой попытки)
	ErrDeclined = errors.New("payment: payment declined")
)
