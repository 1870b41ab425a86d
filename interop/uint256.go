package interop

import (
	"fmt"

	"github.com/govalues/decimal96"
	"github.com/holiman/uint256"
)

// FromUint256 returns a decimal equal to x / 10^scale.
//
// FromUint256 returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - x does not fit into 96 bits.
func FromUint256(x *uint256.Int, scale int) (decimal.Decimal, error) {
	d, err := decimal.NewFromBigInt(x.ToBig(), scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", x, err)
	}
	return d, nil
}

// ToUint256 returns the coefficient and the scale of d, such that
// d = x / 10^scale.
//
// ToUint256 returns an error if d is negative.
func ToUint256(d decimal.Decimal) (x *uint256.Int, scale int, err error) {
	if d.IsNeg() {
		return nil, 0, fmt.Errorf("converting %v: negative value cannot be represented by %T", d, uint256.Int{})
	}
	x, overflow := uint256.FromBig(d.Coef())
	if overflow {
		return nil, 0, fmt.Errorf("converting %v: coefficient overflows %T", d, uint256.Int{})
	}
	return x, d.Scale(), nil
}
