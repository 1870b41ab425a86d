// Package interop converts decimals to and from other decimal and integer
// libraries.
//
// Every conversion is either exact or fails. Errors wrap the errors of
// package decimal, so they can be matched with [errors.Is] against
// [decimal.ErrExceedsMaximumPossibleValue] and the other sentinels.
package interop

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal96"
)

var (
	bigTen = big.NewInt(10)
	// Any non-zero integer overflows 96 bits when multiplied by a power of
	// ten greater than 10^maxExp.
	maxExp int32 = decimal.MaxScale
)

// fromExp returns a decimal equal to coef * 10^exp.
// Positive exponents are applied to the coefficient.
// Exponents below -MaxScale are accepted only if the coefficient has enough
// trailing zeros to be represented exactly.
func fromExp(coef *big.Int, exp int32) (decimal.Decimal, error) {
	if coef.Sign() == 0 {
		return decimal.New(0, int(min(max(-exp, 0), decimal.MaxScale))), nil
	}
	switch {
	case exp > maxExp:
		if coef.Sign() < 0 {
			return decimal.Decimal{}, decimal.ErrLessThanMinimumPossibleValue
		}
		return decimal.Decimal{}, decimal.ErrExceedsMaximumPossibleValue
	case exp > 0:
		p := new(big.Int).Exp(bigTen, big.NewInt(int64(exp)), nil)
		return decimal.NewFromBigInt(p.Mul(p, coef), 0)
	case exp < -decimal.MaxScale:
		var (
			scale = -exp
			z     = new(big.Int).Set(coef)
			q     = new(big.Int)
			r     = new(big.Int)
		)
		for ; exp < -decimal.MaxScale; exp++ {
			q.QuoRem(z, bigTen, r)
			if r.Sign() != 0 {
				return decimal.Decimal{}, fmt.Errorf("%v significant digits after the decimal point: %w", scale, decimal.ErrScaleExceedsMaximumPrecision)
			}
			z, q = q, z
		}
		return decimal.NewFromBigInt(z, int(-exp))
	}
	return decimal.NewFromBigInt(coef, int(-exp))
}

// signedCoef returns the coefficient of d with the sign of d.
func signedCoef(d decimal.Decimal) *big.Int {
	c := d.Coef()
	if d.IsNeg() {
		c.Neg(c)
	}
	return c
}
