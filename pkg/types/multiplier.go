package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// maxDecimalDigits максимальное число знаков после запятой при выводе в десятичном виде
const maxDecimalDigits = 6

var (
	// ErrInvalidMultiplier возвращается при некорректном множителе цены
	ErrInvalidMultiplier = errors.New("invalid price multiplier")

	// ErrPriceOverflow возвращается, когда результат не помещается в int64
	ErrPriceOverflow = errors.New("price overflow")
)

// Multiplier точный рациональный множитель цены ("1.5", "0.8", "4/3")
// Нулевое значение не валидно, используйте ParseMultiplier
type Multiplier struct {
	r *big.Rat
}

// ParseMultiplier разбирает множитель из десятичной записи или дроби
// Множитель должен быть строго положительным
func ParseMultiplier(s string) (Multiplier, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Multiplier{}, fmt.Errorf("%w: %q", ErrInvalidMultiplier, s)
	}
	if r.Sign() <= 0 {
		return Multiplier{}, fmt.Errorf("%w: must be positive, got %q", ErrInvalidMultiplier, s)
	}
	return Multiplier{r: r}, nil
}

// MustMultiplier разбирает множитель и паникует при ошибке (для тестов)
func MustMultiplier(s string) Multiplier {
	m, err := ParseMultiplier(s)
	if err != nil {
		panic(err)
	}
	return m
}

// IsValid возвращает true, если множитель задан
func (m Multiplier) IsValid() bool {
	return m.r != nil && m.r.Sign() > 0
}

// Apply умножает цену (в минимальных единицах валюты) на множитель
// Округление выполняется один раз, половина округляется вверх
func (m Multiplier) Apply(price int64) (int64, error) {
	if !m.IsValid() {
		return 0, ErrInvalidMultiplier
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: negative price %d", ErrInvalidMultiplier, price)
	}

	// round_half_up(p * n / d) = floor((2*p*n + d) / (2*d)) для неотрицательных значений
	num := new(big.Int).Mul(big.NewInt(price), m.r.Num())
	num.Mul(num, big.NewInt(2))
	num.Add(num, m.r.Denom())

	den := new(big.Int).Mul(m.r.Denom(), big.NewInt(2))

	result := new(big.Int).Quo(num, den)
	if !result.IsInt64() {
		return 0, ErrPriceOverflow
	}
	return result.Int64(), nil
}

// String возвращает десятичную запись, если она точна, иначе дробь "n/d"
func (m Multiplier) String() string {
	if m.r == nil {
		return ""
	}
	if m.r.IsInt() {
		return m.r.Num().String()
	}

	decimal := m.r.FloatString(maxDecimalDigits)
	if back, ok := new(big.Rat).SetString(decimal); ok && back.Cmp(m.r) == 0 {
		return strings.TrimRight(strings.TrimRight(decimal, "0"), ".")
	}
	return m.r.RatString()
}

// Value реализует driver.Valuer, множитель хранится в TEXT колонке
func (m Multiplier) Value() (driver.Value, error) {
	if !m.IsValid() {
		return nil, ErrInvalidMultiplier
	}
	return m.String(), nil
}

// Scan реализует sql.Scanner
func (m *Multiplier) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case float64:
		s = fmt.Sprintf("%g", v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidMultiplier, src)
	}

	parsed, err := ParseMultiplier(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalJSON сериализует множитель строкой, чтобы не терять точность
func (m Multiplier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON принимает как строку ("1.5", "4/3"), так и число (1.5)
func (m *Multiplier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidMultiplier, string(data))
		}
		s = n.String()
	}

	parsed, err := ParseMultiplier(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
