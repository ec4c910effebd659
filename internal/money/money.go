package money

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is the fixed-point wire representation used by older versions of
// the commerce API: an integer units part plus a fractional part scaled
// to 1e9 (nanos in 0..999999999).
type Money struct {
	CurrencyCode string `json:"currencyCode,omitempty"`
	Units        int64  `json:"units"`
	Nanos        int32  `json:"nanos"`
}

// Decimal converts m to its decimal value. A nil Money is zero.
func (m *Money) Decimal() decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	return decimal.New(m.Units, 0).Add(decimal.New(int64(m.Nanos), -9))
}

// Amount is the normalized internal price type. The commerce API encodes
// prices either as a plain JSON number or as a fixed-point {units, nanos}
// object depending on the API version; Amount accepts both and always
// marshals back as a plain number with two decimal places.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func FromFloat(f float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(f)}
}

func FromMoney(m *Money) Amount {
	return Amount{Decimal: m.Decimal()}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}
	if data[0] == '{' {
		var m Money
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("decode fixed-point price: %w", err)
		}
		a.Decimal = m.Decimal()
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("decode price: %w", err)
	}
	a.Decimal = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

var symbols = map[string]string{
	"CNY": "¥",
	"JPY": "¥",
	"USD": "$",
	"CAD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Symbol returns the display symbol for a currency code, defaulting to
// the storefront's home currency symbol when the code is unknown.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return "¥"
}

// Format renders a as a symbol-prefixed display string rounded to two
// decimal places, e.g. Format("CNY", a) == "¥12.50". A fixed-point value
// formats through FromMoney; a nil Money renders as the zero price.
func Format(code string, a Amount) string {
	return Symbol(code) + a.StringFixed(2)
}
