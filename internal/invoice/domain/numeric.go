package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Numeric is a numeric form field that is either a valid number or the
// explicit blank state. Blank is preserved on display, treated as zero
// when the field enters a sum.
type Numeric struct {
	set   bool
	value decimal.Decimal
}

func NumericFrom(d decimal.Decimal) Numeric {
	return Numeric{set: true, value: d}
}

func NumericFromFloat(v float64) Numeric {
	return Numeric{set: true, value: decimal.NewFromFloat(v)}
}

func NumericFromInt(v int64) Numeric {
	return Numeric{set: true, value: decimal.NewFromInt(v)}
}

// UnsetNumeric is the blank state.
func UnsetNumeric() Numeric {
	return Numeric{}
}

// ParseNumeric accepts a number, a numeric string, or the empty string.
// Any other string is a validation failure, never a silent zero.
func ParseNumeric(v any) (Numeric, error) {
	switch value := v.(type) {
	case nil:
		return Numeric{}, nil
	case Numeric:
		return value, nil
	case decimal.Decimal:
		return NumericFrom(value), nil
	case float64:
		return NumericFromFloat(value), nil
	case float32:
		return NumericFromFloat(float64(value)), nil
	case int:
		return NumericFromInt(int64(value)), nil
	case int64:
		return NumericFromInt(value), nil
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return Numeric{}, nil
		}
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return Numeric{}, fmt.Errorf("%w: %q", ErrNotNumeric, value)
		}
		return NumericFrom(d), nil
	default:
		return Numeric{}, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}

func (n Numeric) IsSet() bool { return n.set }

// Decimal returns the value, zero when blank.
func (n Numeric) Decimal() decimal.Decimal {
	if !n.set {
		return decimal.Zero
	}
	return n.value
}

func (n Numeric) Float64() float64 {
	f, _ := n.Decimal().Float64()
	return f
}

func (n Numeric) Equal(other Numeric) bool {
	if n.set != other.set {
		return false
	}
	if !n.set {
		return true
	}
	return n.value.Equal(other.value)
}

func (n Numeric) String() string {
	if !n.set {
		return ""
	}
	return n.value.String()
}

// MarshalJSON encodes blank as "" and a value as a bare JSON number,
// matching the document wire format.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte(`""`), nil
	}
	return []byte(n.value.String()), nil
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Numeric{}
		return nil
	}
	if data[0] == '"' {
		raw, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrNotNumeric, data)
		}
		parsed, err := ParseNumeric(raw)
		if err != nil {
			return err
		}
		*n = parsed
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotNumeric, data)
	}
	*n = NumericFrom(d)
	return nil
}
