package interop

import (
	"fmt"

	"github.com/govalues/decimal96"
	"github.com/robaho/fixed"
)

// FixedScale is the number of digits after the decimal point of
// [fixed.Fixed].
const FixedScale = 7

// fixedMax is the largest magnitude that [fixed.Fixed] can hold.
var fixedMax = decimal.MustParse("99999999999.9999999")

// FromFixed converts a fixed-point number to a decimal with at most
// [FixedScale] digits after the decimal point.
//
// FromFixed returns an error if f is NaN.
func FromFixed(f fixed.Fixed) (decimal.Decimal, error) {
	if f.IsNaN() {
		return decimal.Decimal{}, fmt.Errorf("converting %v: NaN is not supported", f)
	}
	d, err := decimal.Parse(f.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return d, nil
}

// ToFixed converts a decimal to a fixed-point number.
// Digits beyond [FixedScale] are rounded half away from zero, the same way
// the arithmetic operations of package decimal round.
//
// ToFixed returns an error if the rounded decimal is out of range of
// [fixed.Fixed].
func ToFixed(d decimal.Decimal) (fixed.Fixed, error) {
	r := d.RoundWithStrategy(FixedScale, decimal.RoundHalfUp)
	if r.Abs().Greater(fixedMax) {
		return fixed.NaN, fmt.Errorf("converting %v: out of range for %T", d, fixed.Fixed{})
	}
	v := r.Coef().Int64()
	if r.IsNeg() {
		v = -v
	}
	return fixed.NewI(v, uint(r.Scale())), nil
}
