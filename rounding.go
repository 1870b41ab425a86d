package decimal

import "fmt"

// RoundingStrategy specifies how the discarded digits are handled when a
// decimal is rounded to fewer digits after the decimal point.
type RoundingStrategy uint8

const (
	// RoundHalfEven rounds to the nearest neighbour, and midpoints to the even
	// neighbour. This is also known as "Bankers Rounding": 6.5 -> 6, 7.5 -> 8.
	RoundHalfEven RoundingStrategy = iota
	// RoundHalfUp rounds to the nearest neighbour, and midpoints away from zero:
	// 6.5 -> 7, -6.5 -> -7.
	RoundHalfUp
	// RoundHalfDown rounds to the nearest neighbour, and midpoints towards zero:
	// 6.5 -> 6, -6.5 -> -6.
	RoundHalfDown
	// RoundDown truncates towards zero: 6.8 -> 6, -6.8 -> -6.
	RoundDown
	// RoundUp rounds away from zero: 6.2 -> 7, -6.2 -> -7.
	RoundUp
	// RoundFloor rounds towards negative infinity: 6.8 -> 6, -6.2 -> -7.
	RoundFloor
	// RoundCeiling rounds towards positive infinity: 6.2 -> 7, -6.8 -> -6.
	RoundCeiling
)

// arithmeticRounding is applied whenever an arithmetic result, a parsed
// string or a converted float carries more digits than can be represented.
const arithmeticRounding = RoundHalfUp

func (s RoundingStrategy) String() string {
	switch s {
	case RoundHalfEven:
		return "half-even"
	case RoundHalfUp:
		return "half-up"
	case RoundHalfDown:
		return "half-down"
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundFloor:
		return "floor"
	case RoundCeiling:
		return "ceiling"
	}
	return fmt.Sprintf("RoundingStrategy(%d)", uint8(s))
}

// roundUp decides whether the magnitude of a truncated value must be
// incremented by one unit in the last place.
// half compares the discarded fraction with one half (-1, 0 or +1),
// inexact reports whether the discarded fraction is non-zero,
// odd reports whether the truncated magnitude is odd.
func (s RoundingStrategy) roundUp(neg, odd bool, half int, inexact bool) bool {
	if !inexact {
		return false
	}
	switch s {
	case RoundHalfEven:
		return half > 0 || half == 0 && odd
	case RoundHalfUp:
		return half >= 0
	case RoundHalfDown:
		return half > 0
	case RoundDown:
		return false
	case RoundUp:
		return true
	case RoundFloor:
		return neg
	case RoundCeiling:
		return !neg
	}
	return false
}

// halfDigit compares a discarded digit, followed by sticky non-zero digits,
// with one half.
func halfDigit(digit uint32, sticky bool) int {
	switch {
	case digit > 5:
		return 1
	case digit < 5:
		return -1
	case sticky:
		return 1
	}
	return 0
}

// rshRound divides x by 10 until it fits into 96 bits and its scale does not
// exceed MaxScale, rounding the discarded digits with strategy.
// It returns the resulting scale and reports false if x does not fit into
// 96 bits even at scale 0.
func (x *buf24) rshRound(neg bool, scale int, strategy RoundingStrategy) (int, bool) {
	for {
		var (
			rem     uint32
			sticky  bool
			dropped bool
		)
		for scale > 0 && (!x.fits96() || scale > MaxScale) {
			sticky = sticky || rem != 0
			rem = divWordsUint32(x[:], x[:], 10)
			scale--
			dropped = true
		}
		if !x.fits96() {
			return scale, false
		}
		if !dropped {
			return scale, true
		}
		if !strategy.roundUp(neg, x[0]&1 != 0, halfDigit(rem, sticky), rem != 0 || sticky) {
			return scale, true
		}
		addWordsUint32(x[:], 1)
		if x.fits96() {
			return scale, true
		}
		// Rounding carried into bit 96, one more digit has to go.
	}
}

// Round returns d rounded to the specified number of digits after the
// decimal point using half-to-even rounding.
// If the scale of d is less than or equal to the specified scale, d is
// returned unchanged.
//
// Round panics if the scale is negative.
func (d Decimal) Round(scale int) Decimal {
	return d.RoundWithStrategy(scale, RoundHalfEven)
}

// RoundWithStrategy is similar to [Decimal.Round], but it allows you to
// specify the rounding strategy.
//
// RoundWithStrategy panics if the scale is negative.
func (d Decimal) RoundWithStrategy(scale int, strategy RoundingStrategy) Decimal {
	if scale < 0 {
		panic(fmt.Sprintf("%q.RoundWithStrategy(%v, %v) failed: %v", d, scale, strategy, newScaleError(scale)))
	}
	if scale >= d.Scale() {
		return d
	}

	var (
		coef    buf12
		rem     buf12
		half    int
		inexact bool
	)

	// Splitting the coefficient into the retained and the discarded parts
	coef, rem = d.mag().quoRemPow10(d.Scale() - scale)
	if !rem.isZero() {
		inexact = true
		// Comparing the discarded part with 5 * 10^(shift - 1)
		hw := pow10w[d.Scale()-scale-1]
		mulWordsUint32(hw[:], hw[:], 5)
		half = cmpWords(rem[:], hw[:])
	}

	// Rounding
	if strategy.roundUp(d.neg, coef.isOdd(), half, inexact) {
		// The result is at most 2^96 / 10 + 1, so it cannot overflow.
		addWordsUint32(coef[:], 1)
	}

	return newDecimalUnsafe(d.neg, coef, scale)
}

// Trunc returns d truncated to the specified number of digits after the
// decimal point. If the scale of d is less than or equal to the specified
// scale, d is returned unchanged.
// Also see method [Decimal.Round].
//
// Trunc panics if the scale is negative.
func (d Decimal) Trunc(scale int) Decimal {
	return d.RoundWithStrategy(scale, RoundDown)
}

// Ceil returns d rounded up, towards positive infinity, to the specified
// number of digits after the decimal point.
// Also see method [Decimal.Floor].
//
// Ceil panics if the scale is negative.
func (d Decimal) Ceil(scale int) Decimal {
	return d.RoundWithStrategy(scale, RoundCeiling)
}

// Floor returns d rounded down, towards negative infinity, to the specified
// number of digits after the decimal point.
// Also see method [Decimal.Ceil].
//
// Floor panics if the scale is negative.
func (d Decimal) Floor(scale int) Decimal {
	return d.RoundWithStrategy(scale, RoundFloor)
}

// Fract returns the fractional part of d, that is d - d.Trunc(0).
// The result has the same sign and scale as d.
func (d Decimal) Fract() Decimal {
	_, rem := d.mag().quoRemPow10(d.Scale())
	return newDecimalUnsafe(d.neg, rem, d.Scale())
}

// Normalize returns d with all trailing zeros removed.
// Zero is normalized to 0 with scale 0.
func (d Decimal) Normalize() Decimal {
	coef := d.mag()
	z := min(coef.ntz(), d.Scale())
	if coef.isZero() {
		z = d.Scale()
	}
	coef, _ = coef.rsh(z)
	return newDecimalUnsafe(d.neg, coef, d.Scale()-z)
}

// MinScale returns the smallest scale that d can be rescaled to without
// rounding. Also see method [Decimal.Normalize].
func (d Decimal) MinScale() int {
	return d.Normalize().Scale()
}

// Rescale returns d with the specified scale.
// If the scale is smaller than the scale of d, the discarded digits are
// rounded half away from zero. If the scale is larger, d is padded with
// trailing zeros.
//
// Rescale returns an error if:
//   - the scale is negative or greater than [MaxScale];
//   - the padded coefficient does not fit into 96 bits.
func (d Decimal) Rescale(scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, newScaleError(scale)
	}
	if scale <= d.Scale() {
		return d.RoundWithStrategy(scale, arithmeticRounding), nil
	}
	w := d.mag().wide()
	w.lsh(scale - d.Scale())
	if !w.fits96() {
		return Decimal{}, newOverflowError(d.neg, w[:])
	}
	return newDecimal(d.neg, w.lo96(), scale)
}

// quoRemPow10 calculates x / 10^shift and x mod 10^shift for
// 0 <= shift <= MaxScale.
func (x buf12) quoRemPow10(shift int) (q, r buf12) {
	if shift == 0 {
		return x, buf12{}
	}
	// Fast path
	if x[2] == 0 && shift < len(pow10u64) {
		v, p := uint64(x[1])<<32|uint64(x[0]), pow10u64[shift]
		q64, r64 := v/p, v%p
		return buf12{uint32(q64), uint32(q64 >> 32)}, buf12{uint32(r64), uint32(r64 >> 32)}
	}
	// General case
	var (
		n, m = x.wide(), pow10w[shift].wide()
		qw   buf24
		rw   buf24
	)
	quoRemWords(qw[:], rw[:], n[:], m[:])
	return qw.lo96(), rw.lo96()
}
