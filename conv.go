package decimal

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shabbyrobe/go-num"
)

// NewFromInt64 converts an integer to a decimal with scale 0.
func NewFromInt64(v int64) Decimal {
	return New(v, 0)
}

// NewFromInt32 converts an integer to a decimal with scale 0.
func NewFromInt32(v int32) Decimal {
	return New(int64(v), 0)
}

// NewFromUint64 converts an unsigned integer to a decimal with scale 0.
func NewFromUint64(v uint64) Decimal {
	return newDecimalUnsafe(false, buf12{uint32(v), uint32(v >> 32)}, 0)
}

// NewFromUint32 converts an unsigned integer to a decimal with scale 0.
func NewFromUint32(v uint32) Decimal {
	return newDecimalUnsafe(false, buf12{v}, 0)
}

// NewFromInt128 converts a 128-bit integer to a decimal with scale 0.
//
// NewFromInt128 returns an error of kind [KindExceedsMaximumPossibleValue]
// or [KindLessThanMinimumPossibleValue] if the absolute value of v does not
// fit into 96 bits.
func NewFromInt128(v num.I128) (Decimal, error) {
	hi, lo := v.Raw()
	neg := int64(hi) < 0
	if neg {
		hi, lo = negate128(hi, lo)
	}
	if hi>>32 != 0 {
		kind := KindExceedsMaximumPossibleValue
		if neg {
			kind = KindLessThanMinimumPossibleValue
		}
		return Decimal{}, &Error{Kind: kind, Value: v}
	}
	return newDecimalUnsafe(neg, buf12{uint32(lo), uint32(lo >> 32), uint32(hi)}, 0), nil
}

// NewFromUint128 converts an unsigned 128-bit integer to a decimal with
// scale 0.
//
// NewFromUint128 returns an error of kind [KindExceedsMaximumPossibleValue]
// if v does not fit into 96 bits.
func NewFromUint128(v num.U128) (Decimal, error) {
	hi, lo := v.Raw()
	if hi>>32 != 0 {
		e := &Error{Kind: KindExceedsMaximumPossibleValue}
		if v.IsI128() {
			e.Value = v.AsI128()
		}
		return Decimal{}, e
	}
	return newDecimalUnsafe(false, buf12{uint32(lo), uint32(lo >> 32), uint32(hi)}, 0), nil
}

// NewFromBigInt returns a decimal equal to v / 10^scale.
//
// NewFromBigInt returns an error if:
//   - the scale is negative or greater than [MaxScale];
//   - the absolute value of v does not fit into 96 bits.
func NewFromBigInt(v *big.Int, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, newScaleError(scale)
	}
	coef, ok := (*bint)(v).buf12()
	if !ok {
		return Decimal{}, newBigOverflowError(v)
	}
	return newDecimalUnsafe((*bint)(v).sign() < 0, coef, scale), nil
}

// newBigOverflowError returns the signed overflow error for an integer that
// does not fit into 96 bits.
func newBigOverflowError(v *big.Int) *Error {
	e := &Error{Kind: KindExceedsMaximumPossibleValue}
	if v.Sign() < 0 {
		e.Kind = KindLessThanMinimumPossibleValue
	}
	if v.BitLen() < 128 {
		e.Value = i128FromBig(v)
	}
	return e
}

// i128FromBig converts an integer with less than 128 bits to num.I128.
func i128FromBig(v *big.Int) num.I128 {
	var b [16]byte
	v.FillBytes(b[:])
	hi, lo := binary.BigEndian.Uint64(b[0:8]), binary.BigEndian.Uint64(b[8:16])
	if v.Sign() < 0 {
		hi, lo = negate128(hi, lo)
	}
	return num.I128FromRaw(hi, lo)
}

// NewFromFloat64 converts a float to a (possibly rounded) decimal.
// Floats with an absolute value of at least 2^53 are integers and are
// converted exactly.
// Smaller floats are first formatted with the smallest number of digits that
// represent them exactly, see [strconv.FormatFloat]. Digits beyond [MaxScale]
// are rounded half away from zero, and trailing zeros are removed.
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the absolute value of the float does not fit into 96 bits.
func NewFromFloat64(f float64) (Decimal, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return Decimal{}, newErrorf("cannot convert %v to %T", f, Decimal{})
	case f >= 0x1p96:
		return Decimal{}, &Error{Kind: KindExceedsMaximumPossibleValue}
	case f <= -0x1p96:
		return Decimal{}, &Error{Kind: KindLessThanMinimumPossibleValue}
	case math.Abs(f) >= 0x1p53:
		v, _ := new(big.Float).SetFloat64(f).Int(nil)
		return NewFromBigInt(v, 0)
	}
	d, err := Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return d.Normalize(), nil
}

// Float64 returns the nearest binary floating-point number rounded
// using round-half-to-even rule.
// The absolute value of a decimal is less than 2^96, so the result is
// always finite and the error is always nil.
func (d Decimal) Float64() (float64, error) {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, newErrorf("cannot convert %v to float64: %v", d, err)
	}
	return f, nil
}

// intPart returns the magnitude of d truncated towards zero.
func (d Decimal) intPart() buf12 {
	q, _ := d.mag().quoRemPow10(d.Scale())
	return q
}

func newRangeError(d Decimal, target string) error {
	return newErrorf("integer part of %v is out of range of %v", d, target)
}

// Int64 returns the integer part of d truncated towards zero.
//
// Int64 returns an error if the integer part does not fit into int64.
func (d Decimal) Int64() (int64, error) {
	q := d.intPart()
	u := uint64(q[1])<<32 | uint64(q[0])
	switch {
	case q[2] != 0:
		return 0, newRangeError(d, "int64")
	case d.neg && u > 1<<63:
		return 0, newRangeError(d, "int64")
	case !d.neg && u > math.MaxInt64:
		return 0, newRangeError(d, "int64")
	}
	if d.neg {
		return int64(-u), nil
	}
	return int64(u), nil
}

// Int32 returns the integer part of d truncated towards zero.
//
// Int32 returns an error if the integer part does not fit into int32.
func (d Decimal) Int32() (int32, error) {
	v, err := d.Int64()
	if err != nil || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, newRangeError(d, "int32")
	}
	return int32(v), nil
}

// Uint64 returns the integer part of d truncated towards zero.
//
// Uint64 returns an error if d is negative or the integer part does not
// fit into uint64.
func (d Decimal) Uint64() (uint64, error) {
	q := d.intPart()
	if d.neg || q[2] != 0 {
		return 0, newRangeError(d, "uint64")
	}
	return uint64(q[1])<<32 | uint64(q[0]), nil
}

// Uint32 returns the integer part of d truncated towards zero.
//
// Uint32 returns an error if d is negative or the integer part does not
// fit into uint32.
func (d Decimal) Uint32() (uint32, error) {
	v, err := d.Uint64()
	if err != nil || v > math.MaxUint32 {
		return 0, newRangeError(d, "uint32")
	}
	return uint32(v), nil
}

// Int128 returns the integer part of d truncated towards zero.
// The integer part of a decimal always fits into 128 bits.
func (d Decimal) Int128() num.I128 {
	q := d.intPart()
	v, _ := i128FromWords(d.neg, q[:])
	return v
}

// Uint128 returns the integer part of d truncated towards zero.
//
// Uint128 returns an error if d is negative.
func (d Decimal) Uint128() (num.U128, error) {
	if d.neg {
		return num.U128{}, newRangeError(d, "uint128")
	}
	q := d.intPart()
	return num.U128FromRaw(uint64(q[2]), uint64(q[1])<<32|uint64(q[0])), nil
}

// BigInt returns the integer part of d truncated towards zero.
func (d Decimal) BigInt() *big.Int {
	z := new(big.Int)
	(*bint)(z).setBuf12(d.intPart())
	if d.neg {
		(*bint)(z).neg((*bint)(z))
	}
	return z
}

// Mantissa returns the signed coefficient of d, that is d * 10^d.Scale().
func (d Decimal) Mantissa() num.I128 {
	m := d.mag()
	v, _ := i128FromWords(d.neg, m[:])
	return v
}

// Coef returns the coefficient of the decimal, that is |d| * 10^d.Scale().
// Also see method [Decimal.Prec].
func (d Decimal) Coef() *big.Int {
	z := new(big.Int)
	(*bint)(z).setBuf12(d.mag())
	return z
}
