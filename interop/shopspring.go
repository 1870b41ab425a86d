package interop

import (
	"fmt"

	"github.com/govalues/decimal96"
	shopspring "github.com/shopspring/decimal"
)

// FromShopspring converts a shopspring decimal to a decimal.
//
// FromShopspring returns an error if:
//   - the integer part of s does not fit into 96 bits;
//   - s has more than [decimal.MaxScale] significant digits after the
//     decimal point.
func FromShopspring(s shopspring.Decimal) (decimal.Decimal, error) {
	d, err := fromExp(s.Coefficient(), s.Exponent())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", s, err)
	}
	return d, nil
}

// ToShopspring converts a decimal to a shopspring decimal with the same
// coefficient and scale.
func ToShopspring(d decimal.Decimal) shopspring.Decimal {
	return shopspring.NewFromBigInt(signedCoef(d), -int32(d.Scale()))
}
