package interop

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/decimal96"
)

// FromAPD converts an apd decimal to a decimal.
//
// FromAPD returns an error if:
//   - x is NaN or infinite;
//   - the integer part of x does not fit into 96 bits;
//   - x has more than [decimal.MaxScale] significant digits after the
//     decimal point.
func FromAPD(x *apd.Decimal) (decimal.Decimal, error) {
	if x.Form != apd.Finite {
		return decimal.Decimal{}, fmt.Errorf("converting %v: special values are not supported", x)
	}
	coef := x.Coeff.MathBigInt()
	if x.Negative {
		coef.Neg(coef)
	}
	d, err := fromExp(coef, x.Exponent)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", x, err)
	}
	return d, nil
}

// ToAPD converts a decimal to an apd decimal with the same coefficient and
// exponent -d.Scale().
func ToAPD(d decimal.Decimal) *apd.Decimal {
	var coef apd.BigInt
	coef.SetMathBigInt(d.Coef())
	x := apd.NewWithBigInt(&coef, -int32(d.Scale()))
	x.Negative = d.IsNeg()
	return x
}
