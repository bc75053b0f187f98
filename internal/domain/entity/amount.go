package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Amount is a nullable numeric value as the backend sends it. Numbers, numeric
// strings, empty strings and null are all accepted.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount returns a valid Amount holding f.
func NewAmount(f float64) Amount {
	return Amount{Value: decimal.NewFromFloat(f), Valid: true}
}

// ParseAmount parses s leniently. Blank or unparsable input yields an invalid Amount.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}

	return Amount{Value: d, Valid: true}
}

// Float64 returns the value, or NaN when the amount is absent.
func (a Amount) Float64() float64 {
	if !a.Valid {
		return math.NaN()
	}

	return a.Value.InexactFloat64()
}

// Or returns the value, or def when the amount is absent.
func (a Amount) Or(def float64) float64 {
	if !a.Valid {
		return def
	}

	return a.Value.InexactFloat64()
}

func (a Amount) String() string {
	if !a.Valid {
		return ""
	}

	return a.Value.String()
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Amount{}

		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		*a = ParseAmount(s)

		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return errors.Wrapf(err, "invalid amount %s", data)
	}
	*a = Amount{Value: d, Valid: true}

	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}

	return []byte(a.Value.String()), nil
}
