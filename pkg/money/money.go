package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Currency валюта всех сумм сервиса (эфиопский быр)
const Currency = "ETB"

const minorPerMajor = 100

// ErrInvalidAmount возвращается при некорректной строке суммы
var ErrInvalidAmount = errors.New("money: invalid amount")

// Money денежная сумма в минимальных единицах (сантимы, 1 ETB = 100 сантимов)
// Вся арифметика целочисленная, без накопления ошибок float
type Money int64

// FromMajor создает сумму из целого количества быр
func FromMajor(birr int64) Money {
	return Money(birr * minorPerMajor)
}

// Parse разбирает десятичную строку вида "120", "120.5", "120.50"
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if hasFrac && (len(fracPart) == 0 || len(fracPart) > 2) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	major, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	var minor int64
	if hasFrac {
		if len(fracPart) == 1 {
			fracPart += "0"
		}
		minor, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil || minor < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}

	total := major*minorPerMajor + minor
	if negative {
		total = -total
	}
	return Money(total), nil
}

// MustParse как Parse, но паникует при ошибке (для констант и тестов)
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Minor возвращает сумму в сантимах
func (m Money) Minor() int64 {
	return int64(m)
}

// Add складывает суммы
func (m Money) Add(other Money) Money {
	return m + other
}

// Mul умножает сумму на целое количество (ночи, участники, позиции)
func (m Money) Mul(n int64) Money {
	return Money(int64(m) * n)
}

// IsPositive true, если сумма больше нуля
func (m Money) IsPositive() bool {
	return m > 0
}

// String возвращает сумму в виде "360.00"
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/minorPerMajor, v%minorPerMajor)
}

// MarshalJSON сериализует сумму как JSON-число с двумя знаками после точки
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON принимает как число (360.5), так и строку ("360.50")
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value реализует driver.Valuer (колонки NUMERIC(12,2))
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan реализует sql.Scanner
func (m *Money) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return m.scanString(string(v))
	case string:
		return m.scanString(v)
	case int64:
		*m = FromMajor(v)
		return nil
	case float64:
		return m.scanString(strconv.FormatFloat(v, 'f', 2, 64))
	case nil:
		*m = 0
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidAmount, src)
	}
}

func (m *Money) scanString(s string) error {
	// NUMERIC может прийти с лишними нулями: "120.5000"
	if intPart, frac, ok := strings.Cut(s, "."); ok && len(frac) > 2 {
		trimmed := strings.TrimRight(frac, "0")
		if len(trimmed) > 2 {
			return fmt.Errorf("%w: %q has sub-santim precision", ErrInvalidAmount, s)
		}
		s = intPart
		if trimmed != "" {
			s += "." + trimmed
		}
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
