// Package oracle computes reference results for the arithmetic of package
// decimal using arbitrary-precision apd decimals.
//
// The exact result of an operation is computed first, then it is reduced to
// the largest scale, not greater than [decimal.MaxScale], at which it fits
// into 96 bits. The reduction rounds half away from zero.
package oracle

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/decimal96"
	"github.com/govalues/decimal96/interop"
)

// MinPrecision is the smallest number of significant digits that is enough
// to compute all quotients exactly up to the rounding digit.
const MinPrecision = 90

// limit is 2^96, the smallest coefficient that does not fit.
var limit = new(apd.BigInt).SetMathBigInt(new(big.Int).Lsh(big.NewInt(1), 96))

// Oracle is safe for concurrent use.
type Oracle struct {
	round *apd.Context // half away from zero
	trunc *apd.Context // towards zero
}

// New returns an oracle that computes intermediate quotients with the
// given number of significant digits.
func New(precision uint32) (*Oracle, error) {
	if precision < MinPrecision {
		return nil, fmt.Errorf("precision %v is less than %v", precision, MinPrecision)
	}
	round := apd.BaseContext.WithPrecision(precision)
	round.Rounding = apd.RoundHalfUp
	trunc := apd.BaseContext.WithPrecision(precision)
	trunc.Rounding = apd.RoundDown
	return &Oracle{round: round, trunc: trunc}, nil
}

// Add returns the reference result of x + y.
func (o *Oracle) Add(x, y decimal.Decimal) (decimal.Decimal, error) {
	var z apd.Decimal
	if _, err := o.round.Add(&z, interop.ToAPD(x), interop.ToAPD(y)); err != nil {
		return decimal.Decimal{}, fmt.Errorf("adding: %w", err)
	}
	return o.reduce(&z)
}

// Sub returns the reference result of x - y.
func (o *Oracle) Sub(x, y decimal.Decimal) (decimal.Decimal, error) {
	var z apd.Decimal
	if _, err := o.round.Sub(&z, interop.ToAPD(x), interop.ToAPD(y)); err != nil {
		return decimal.Decimal{}, fmt.Errorf("subtracting: %w", err)
	}
	return o.reduce(&z)
}

// Mul returns the reference result of x * y.
func (o *Oracle) Mul(x, y decimal.Decimal) (decimal.Decimal, error) {
	var z apd.Decimal
	if _, err := o.round.Mul(&z, interop.ToAPD(x), interop.ToAPD(y)); err != nil {
		return decimal.Decimal{}, fmt.Errorf("multiplying: %w", err)
	}
	return o.reduce(&z)
}

// Quo returns the reference result of x / y.
// An exact quotient keeps the smallest scale, not less than
// x.Scale() - y.Scale(), at which it is exact.
func (o *Oracle) Quo(x, y decimal.Decimal) (decimal.Decimal, error) {
	if y.IsZero() {
		return decimal.Decimal{}, decimal.ErrDivisionByZero
	}
	var (
		q     apd.Decimal
		z     apd.Decimal
		start = max(x.Scale()-y.Scale(), 0)
	)
	cond, err := o.round.Quo(&q, interop.ToAPD(x), interop.ToAPD(y))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("dividing: %w", err)
	}

	if !cond.Inexact() {
		if _, _, err := o.round.Reduce(&z, &q); err != nil {
			return decimal.Decimal{}, fmt.Errorf("reducing: %w", err)
		}
		s := max(int(-z.Exponent), start)
		if s <= decimal.MaxScale {
			if err := o.quantize(o.round, &z, &q, s); err != nil {
				return decimal.Decimal{}, err
			}
			if fits(&z) {
				return finish(&z)
			}
		}
	}

	// Largest scale at which the truncated quotient fits
	s := decimal.MaxScale
	for ; s >= start; s-- {
		if err := o.quantize(o.trunc, &z, &q, s); err != nil {
			return decimal.Decimal{}, err
		}
		if fits(&z) {
			break
		}
	}
	if s < start {
		return decimal.Decimal{}, overflow(q.Negative)
	}
	return o.roundFrom(&q, s)
}

// Rem returns the reference result of x % y.
func (o *Oracle) Rem(x, y decimal.Decimal) (decimal.Decimal, error) {
	if y.IsZero() {
		return decimal.Decimal{}, decimal.ErrDivisionByZero
	}
	var z apd.Decimal
	if _, err := o.round.Rem(&z, interop.ToAPD(x), interop.ToAPD(y)); err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing remainder: %w", err)
	}
	return o.reduce(&z)
}

// reduce rounds an exact result to the largest scale, not greater than
// MaxScale, at which it fits into 96 bits.
func (o *Oracle) reduce(v *apd.Decimal) (decimal.Decimal, error) {
	return o.roundFrom(v, min(int(-v.Exponent), decimal.MaxScale))
}

func (o *Oracle) roundFrom(v *apd.Decimal, scale int) (decimal.Decimal, error) {
	var z apd.Decimal
	for s := scale; s >= 0; s-- {
		if err := o.quantize(o.round, &z, v, s); err != nil {
			return decimal.Decimal{}, err
		}
		if fits(&z) {
			return finish(&z)
		}
	}
	return decimal.Decimal{}, overflow(v.Negative)
}

func (o *Oracle) quantize(ctx *apd.Context, z, v *apd.Decimal, scale int) error {
	if _, err := ctx.Quantize(z, v, -int32(scale)); err != nil {
		return fmt.Errorf("quantizing %v to scale %v: %w", v, scale, err)
	}
	return nil
}

func fits(v *apd.Decimal) bool {
	return v.Coeff.Cmp(limit) < 0
}

func finish(v *apd.Decimal) (decimal.Decimal, error) {
	d, err := interop.FromAPD(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("finishing: %w", err)
	}
	return d, nil
}

func overflow(neg bool) error {
	if neg {
		return decimal.ErrLessThanMinimumPossibleValue
	}
	return decimal.ErrExceedsMaximumPossibleValue
}
