package decimal

import (
	"database/sql/driver"
	"fmt"
	"math/big"
	"strings"
)

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = parseAny(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted, JSON null is a no-op.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	var err error
	*d, err = parseAny(s)
	if err != nil {
		return fmt.Errorf("unmarshaling %v: %w", string(data), err)
	}
	return nil
}

// MarshalJSON implements [json.Marshaler] interface.
// The decimal is encoded as a JSON string to preserve all digits.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	s := d.String()
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// parseAny parses both plain and scientific notation.
func parseAny(s string) (Decimal, error) {
	if strings.ContainsAny(s, "eE") {
		return ParseScientific(s)
	}
	return Parse(s)
}

// Scan implements the [sql.Scanner] interface.
// See also method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = parseAny(value)
	case []byte:
		*d, err = parseAny(string(value))
	case int64:
		*d = NewFromInt64(value)
	case float64:
		*d, err = NewFromFloat64(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T", value, Decimal{})
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// See also method [Decimal.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// NullDecimal represents a decimal that can be null.
// Its zero value is null.
// NullDecimal is not thread-safe.
type NullDecimal struct {
	Decimal Decimal
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullDecimal) Scan(value any) error {
	if value == nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return nil
	}
	err := n.Decimal.Scan(value)
	if err != nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Decimal.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullDecimal) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.Value()
}

// Forms of a decomposed decimal.
const (
	formFinite   byte = 0
	formInfinite byte = 1
	formNaN      byte = 2
)

// Decompose returns the internal decimal state into parts.
// The coefficient is a big-endian unsigned integer and the exponent is the
// negated scale.
// If the provided buf has sufficient capacity, buf may be returned as the
// coefficient with the value set and length set as appropriate.
func (d Decimal) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	var b [12]byte
	coef := b[:]
	if cap(buf) >= len(b) {
		coef = buf[:len(b)]
	}
	b2 := getBint()
	defer putBint(b2)
	b2.setBuf12(d.mag())
	(*big.Int)(b2).FillBytes(coef)
	// Leading zero bytes are dropped, a zero coefficient has no bytes.
	for len(coef) > 0 && coef[0] == 0 {
		coef = coef[1:]
	}
	return formFinite, d.neg, coef, -int32(d.scale)
}

// Compose sets the internal decimal value from parts.
// Positive exponents are applied to the coefficient, negative exponents
// become the scale.
//
// Compose returns an error if:
//   - the form is not finite;
//   - the value does not fit into 96 bits or the scale exceeds [MaxScale].
func (d *Decimal) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	switch form {
	case formFinite:
	case formInfinite, formNaN:
		return fmt.Errorf("failed to compose %T: form %v is not supported", Decimal{}, form)
	default:
		return fmt.Errorf("failed to compose %T: unknown form %v", Decimal{}, form)
	}
	b := getBint()
	defer putBint(b)
	(*big.Int)(b).SetBytes(coefficient)
	if negative {
		b.neg(b)
	}
	coef, ok := b.buf12()
	if !ok {
		return fmt.Errorf("failed to compose %T: %w", Decimal{}, newBigOverflowError((*big.Int)(b)))
	}
	var (
		f   Decimal
		err error
		exp = int64(exponent)
	)
	switch {
	case exp > MaxScale:
		err = &Error{Kind: KindScaleExceedsMaximumPrecision, Scale: uint32(exp)}
	case exp > 0:
		f, err = newDecimalUnsafe(negative, coef, 0).Mul(pow10Decimal(int(exp)))
	case -exp > MaxScale:
		err = &Error{Kind: KindScaleExceedsMaximumPrecision, Scale: uint32(-exp)}
	default:
		f = newDecimalUnsafe(negative, coef, int(-exp))
	}
	if err != nil {
		return fmt.Errorf("failed to compose %T: %w", Decimal{}, err)
	}
	*d = f
	return nil
}
