package decimal

import "fmt"

// MustFromParts is like [FromParts] but panics if the scale is out of range.
func MustFromParts(lo, mid, hi uint32, neg bool, scale uint32) Decimal {
	d, err := FromParts(lo, mid, hi, neg, scale)
	if err != nil {
		panic(fmt.Sprintf("MustFromParts(%v, %v, %v, %v, %v) failed: %v", lo, mid, hi, neg, scale, err))
	}
	return d
}

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal) MustAdd(e Decimal) Decimal {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal) MustSub(e Decimal) Decimal {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal) MustMul(e Decimal) Decimal {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustRem is like [Decimal.Rem] but panics if computing error.
func (d Decimal) MustRem(e Decimal) Decimal {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", e, err))
	}
	return f
}

// MustPowInt is like [Decimal.PowInt] but panics if computing error.
func (d Decimal) MustPowInt(power int64) Decimal {
	f, err := d.PowInt(power)
	if err != nil {
		panic(fmt.Sprintf("MustPowInt(%v) failed: %v", power, err))
	}
	return f
}

// MustRescale is like [Decimal.Rescale] but panics if computing error.
func (d Decimal) MustRescale(scale int) Decimal {
	f, err := d.Rescale(scale)
	if err != nil {
		panic(fmt.Sprintf("MustRescale(%v) failed: %v", scale, err))
	}
	return f
}
