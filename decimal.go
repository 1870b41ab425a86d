package decimal

import (
	"fmt"
	"math"
)

// Decimal type is a representation of an exact decimal number with a 96-bit
// coefficient. The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: an integer in the range [0, MaxScale] indicating the position
//     of the decimal point.
//   - Coefficient: an unsigned 96-bit integer value of the decimal without
//     the decimal point, stored as three 32-bit words.
//
// The value of a decimal is (-1)^sign * coefficient / 10^scale.
// For example, a decimal with a coefficient of 12345 and a scale of 2
// represents the value 123.45.
// Such approach allows for multiple representations of the same numerical
// value. For example, 1, 1.0, and 1.00 all have the same value, but they
// have different scales and coefficients.
//
// The decimal does not support special values such as NaN, Infinity, or
// signed zeros.
type Decimal struct {
	lo, mid, hi uint32 // the coefficient, hi*2^64 + mid*2^32 + lo
	neg         bool   // indicates whether the decimal is negative
	scale       uint8  // the position of the decimal point
}

const (
	MaxScale = 28 // maximum number of digits after the decimal point
	MaxPrec  = 29 // maximum length of the coefficient in decimal digits
)

var (
	Zero        = New(0, 0)
	One         = New(1, 0)
	NegativeOne = New(-1, 0)
	Two         = New(2, 0)
	Ten         = New(10, 0)
	Hundred     = New(100, 0)
	Thousand    = New(1_000, 0)

	// Max is the largest representable decimal, 79228162514264337593543950335.
	Max = Decimal{lo: math.MaxUint32, mid: math.MaxUint32, hi: math.MaxUint32}
	// Min is the smallest representable decimal, -79228162514264337593543950335.
	Min = Decimal{lo: math.MaxUint32, mid: math.MaxUint32, hi: math.MaxUint32, neg: true}
)

func newDecimal(neg bool, coef buf12, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, newScaleError(scale)
	}
	return newDecimalUnsafe(neg, coef, scale), nil
}

// newDecimalUnsafe assembles a decimal from a coefficient and a scale that
// are already known to be valid.
func newDecimalUnsafe(neg bool, coef buf12, scale int) Decimal {
	if coef.isZero() {
		neg = false
	}
	return Decimal{lo: coef[0], mid: coef[1], hi: coef[2], neg: neg, scale: uint8(scale)}
}

// newDecimalFromWide reduces a wide intermediate result to a decimal.
// Digits are removed from the right until the coefficient fits into 96 bits
// and the scale does not exceed MaxScale. The removed digits are rounded
// half away from zero.
func newDecimalFromWide(neg bool, w *buf24, scale int) (Decimal, error) {
	s, ok := w.rshRound(neg, scale, arithmeticRounding)
	if !ok {
		return Decimal{}, newOverflowError(neg, w[:])
	}
	return newDecimal(neg, w.lo96(), s)
}

// New returns a decimal equal to value / 10^scale.
// New panics if scale is less than 0 or greater than [MaxScale].
func New(value int64, scale int) Decimal {
	neg, abs := abs64(value)
	d, err := newDecimal(neg, buf12{uint32(abs), uint32(abs >> 32)}, scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", value, scale, err))
	}
	return d
}

func abs64(v int64) (bool, uint64) {
	if v < 0 {
		return true, uint64(-(v + 1)) + 1
	}
	return false, uint64(v)
}

// Parts holds the raw components of a decimal.
// The coefficient is Hi*2^64 + Mid*2^32 + Lo.
type Parts struct {
	Lo, Mid, Hi uint32
	Negative    bool
	Scale       uint32
}

// FromParts returns a decimal assembled from its raw components.
// A negative zero is converted to zero.
//
// FromParts returns an error of kind [KindScaleExceedsMaximumPrecision]
// if the scale is greater than [MaxScale].
func FromParts(lo, mid, hi uint32, neg bool, scale uint32) (Decimal, error) {
	if scale > MaxScale {
		return Decimal{}, &Error{Kind: KindScaleExceedsMaximumPrecision, Scale: scale}
	}
	return newDecimalUnsafe(neg, buf12{lo, mid, hi}, int(scale)), nil
}

// Unpack returns the raw components of d.
// It is the inverse of [FromParts].
func (d Decimal) Unpack() Parts {
	return Parts{Lo: d.lo, Mid: d.mid, Hi: d.hi, Negative: d.neg, Scale: uint32(d.scale)}
}

func (d Decimal) mag() buf12 {
	return buf12{d.lo, d.mid, d.hi}
}

// Scale returns number of digits after the decimal point.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// Prec returns number of digits in the coefficient.
func (d Decimal) Prec() int {
	return d.mag().prec()
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	return d.Fract().IsZero()
}

// WithinOne returns true if -1 < d < 1.
func (d Decimal) WithinOne() bool {
	return d.Prec() <= d.Scale()
}

// Neg returns d with opposite sign.
func (d Decimal) Neg() Decimal {
	return newDecimalUnsafe(!d.neg, d.mag(), d.Scale())
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// CopySign returns d with the same sign as e.
// If e is zero, sign of the result remains unchanged.
func (d Decimal) CopySign(e Decimal) Decimal {
	switch {
	case e.IsZero():
		return d
	case d.IsNeg() != e.IsNeg():
		return d.Neg()
	default:
		return d
	}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.neg && !d.IsZero()
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.lo == 0 && d.mid == 0 && d.hi == 0
}
