package broker

import "errors"

var (
	// ErrConnect ошибка подключения к брокеру
	ErrConnect = errors.New("broker: connection failed")

	// ErrPublish ошибка публикации сообщения
	ErrPublish = errors.New("broker: publish failed")
)
