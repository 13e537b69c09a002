package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

var (
	// ErrEmptyBody тело запроса отсутствует
	ErrEmptyBody = errors.New("handlers: empty request body")

	// ErrInvalidPathParam некорректный параметр пути
	ErrInvalidPathParam = errors.New("handlers: invalid path parameter")
)

// DecodeJSON декодирует тело запроса; неизвестные поля запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return err
	}
	return nil
}

// ResourceTypeVar тип ресурса из пути {resourceType}
func ResourceTypeVar(r *http.Request) (domain.ResourceType, error) {
	return domain.ParseResourceType(mux.Vars(r)["resourceType"])
}

// BookingIDVar ID бронирования из пути {bookingId}
func BookingIDVar(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["bookingId"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bookingId=%q", ErrInvalidPathParam, raw)
	}
	return id, nil
}
