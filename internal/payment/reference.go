package payment

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewTransactionRef генерирует номер транзакции: время в наносекундах (base36) + случайный суффикс.
// Формат: TX-<base36 unix nanos>-<12 hex>
func NewTransactionRef(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	stamp := strconv.FormatInt(now.UnixNano(), 36)
	return "TX-" + strings.ToUpper(stamp) + "-" + strings.ToUpper(random[len(random)-12:])
}
