package decimal

// Mul returns the (possibly rounded) product of d and e.
// The result has the sum of the two scales, unless the product does not fit
// into 96 bits or the scale exceeds [MaxScale]. In that case digits are
// removed from the right and the result is rounded half away from zero.
//
// Mul returns an error if the integer part of the product does not fit into
// 96 bits.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	var (
		w      buf24
		dm, em = d.mag(), e.mag()
	)
	mulWords(w[:], dm[:], em[:])
	return newDecimalFromWide(d.neg != e.neg, &w, d.Scale()+e.Scale())
}

// PowInt returns the (possibly rounded) decimal raised to the integer power.
// Negative powers are computed as the reciprocal of the positive power.
// Each intermediate product is rounded like in [Decimal.Mul].
//
// PowInt returns an error if:
//   - an intermediate product does not fit into 96 bits;
//   - d is zero and the power is negative.
func (d Decimal) PowInt(power int64) (Decimal, error) {
	inv, exp := abs64(power)

	var (
		res  = One
		base = d
		err  error
	)
	for exp > 0 {
		if exp&1 == 1 {
			res, err = res.Mul(base)
			if err != nil {
				return Decimal{}, err
			}
		}
		exp >>= 1
		if exp > 0 {
			base, err = base.Mul(base)
			if err != nil {
				return Decimal{}, err
			}
		}
	}

	if inv {
		return One.Quo(res)
	}
	return res, nil
}
