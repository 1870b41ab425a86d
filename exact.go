package decimal

import "fmt"

// newDecimalExact reduces a wide intermediate result at scale s to a
// decimal with at least the specified scale.
// Digits beyond the specified scale are rounded like in [newDecimalFromWide].
// If s is less than the specified scale, the result is padded with zeros.
func newDecimalExact(neg bool, w *buf24, s, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, newScaleError(scale)
	}
	if s < scale {
		if !w.lsh(scale-s) || !w.fits96() {
			return Decimal{}, newOverflowError(neg, w[:])
		}
		return newDecimal(neg, w.lo96(), scale)
	}
	d, err := newDecimalFromWide(neg, w, s)
	if err != nil {
		return Decimal{}, err
	}
	if d.Scale() < scale {
		return Decimal{}, newPrecisionLossError(scale)
	}
	return d, nil
}

func newPrecisionLossError(scale int) *Error {
	return newErrorf("significant digits lost at scale %v", scale)
}

// AddExact is similar to [Decimal.Add], but it allows you to specify how many
// digits after the decimal point should be considered significant.
// The result is padded with zeros up to the specified scale.
//
// AddExact returns an error if:
//   - the scale is negative or greater than [MaxScale];
//   - any of the significant digits would be lost during rounding;
//   - the integer part of the sum does not fit into 96 bits.
func (d Decimal) AddExact(e Decimal, scale int) (Decimal, error) {
	neg, w, s := addWide(d, e)
	return newDecimalExact(neg, &w, s, scale)
}

// SubExact is similar to [Decimal.Sub], but it allows you to specify how many
// digits after the decimal point should be considered significant.
// See [Decimal.AddExact].
func (d Decimal) SubExact(e Decimal, scale int) (Decimal, error) {
	return d.AddExact(e.Neg(), scale)
}

// MulExact is similar to [Decimal.Mul], but it allows you to specify how many
// digits after the decimal point should be considered significant.
// The result is padded with zeros up to the specified scale.
//
// MulExact returns an error if:
//   - the scale is negative or greater than [MaxScale];
//   - any of the significant digits would be lost during rounding;
//   - the integer part of the product does not fit into 96 bits.
func (d Decimal) MulExact(e Decimal, scale int) (Decimal, error) {
	var (
		w      buf24
		dm, em = d.mag(), e.mag()
	)
	mulWords(w[:], dm[:], em[:])
	return newDecimalExact(d.neg != e.neg, &w, d.Scale()+e.Scale(), scale)
}

// QuoExact is similar to [Decimal.Quo], but it allows you to specify how many
// digits after the decimal point should be considered significant.
// An exact quotient is padded with zeros up to the specified scale.
//
// QuoExact returns an error if:
//   - the scale is negative or greater than [MaxScale];
//   - the divisor is 0, see [ErrDivisionByZero];
//   - the quotient cannot be computed to the specified scale;
//   - the integer part of the quotient does not fit into 96 bits.
func (d Decimal) QuoExact(e Decimal, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, newScaleError(scale)
	}
	q, exact, err := d.quo(e)
	if err != nil {
		return Decimal{}, err
	}
	if q.Scale() >= scale {
		return q, nil
	}
	if !exact {
		return Decimal{}, newPrecisionLossError(scale)
	}
	return q.Rescale(scale)
}

// ParseExact is similar to [Parse], but it allows you to specify how many
// digits after the decimal point should be considered significant.
// The result is padded with zeros up to the specified scale.
//
// ParseExact returns an error if:
//   - the scale is negative or greater than [MaxScale];
//   - the string does not represent a valid decimal number;
//   - any of the significant digits would be lost during rounding;
//   - the padded coefficient does not fit into 96 bits.
func ParseExact(s string, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, newScaleError(scale)
	}
	d, err := Parse(s)
	if err != nil {
		return Decimal{}, err
	}
	if d.Scale() >= scale {
		return d, nil
	}
	if fracDigits(s) > d.Scale() {
		return Decimal{}, newPrecisionLossError(scale)
	}
	return d.Rescale(scale)
}

// fracDigits returns the number of digits after the decimal point of a
// string accepted by [Parse].
func fracDigits(s string) int {
	n, point := 0, false
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == '.':
			point = true
		case point && '0' <= b && b <= '9':
			n++
		}
	}
	return n
}

// MustParseExact is like [ParseExact] but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables holding
// decimals.
func MustParseExact(s string, scale int) Decimal {
	d, err := ParseExact(s, scale)
	if err != nil {
		panic(fmt.Sprintf("ParseExact(%q, %v) failed: %v", s, scale, err))
	}
	return d
}

// Quantize returns d rescaled to the same scale as e.
// The sign and coefficient of e are ignored.
// See [Decimal.Rescale].
func (d Decimal) Quantize(e Decimal) (Decimal, error) {
	return d.Rescale(e.Scale())
}

// Zero returns decimal with a value 0 but the same scale as d.
func (d Decimal) Zero() Decimal {
	return newDecimalUnsafe(false, buf12{}, d.Scale())
}

// One returns decimal with a value 1 but the same scale as d.
func (d Decimal) One() Decimal {
	return newDecimalUnsafe(false, pow10w[d.Scale()], d.Scale())
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between d and the next larger decimal with the same scale.
func (d Decimal) ULP() Decimal {
	return newDecimalUnsafe(false, buf12{1}, d.Scale())
}

// IsOne returns true if d == -1 or d == 1.
func (d Decimal) IsOne() bool {
	coef := d.mag()
	return cmpWords(coef[:], pow10w[d.Scale()][:]) == 0
}
