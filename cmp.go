package decimal

import "fmt"

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Decimals with different scales but equal values are equal,
// for example 1.0 and 1.00. Also see method [Decimal.CmpTotal].
func (d Decimal) Cmp(e Decimal) int {
	// Signs
	switch ds, es := d.Sign(), e.Sign(); {
	case ds < es:
		return -1
	case ds > es:
		return 1
	case ds == 0:
		return 0
	}

	// Magnitudes
	c := cmpAbs(d, e)
	if d.neg {
		return -c
	}
	return c
}

// cmpAbs compares magnitudes of d and e. The operand with the smaller scale
// is rescaled in a 192-bit buffer, so the comparison is always exact.
func cmpAbs(d, e Decimal) int {
	dw, ew := d.mag().wide(), e.mag().wide()
	switch {
	case d.Scale() < e.Scale():
		dw.lsh(e.Scale() - d.Scale())
	case e.Scale() < d.Scale():
		ew.lsh(d.Scale() - e.Scale())
	}
	return cmpWords(dw[:], ew[:])
}

// CmpTotal compares representation of d and e and returns:
//
//	-1 if d < e
//	-1 if d == e && d.scale > e.scale
//	 0 if d == e && d.scale == e.scale
//	+1 if d == e && d.scale < e.scale
//	+1 if d > e
//
// Also see method [Decimal.Cmp].
func (d Decimal) CmpTotal(e Decimal) int {
	switch d.Cmp(e) {
	case -1:
		return -1
	case 1:
		return 1
	}
	switch {
	case e.Scale() < d.Scale():
		return -1
	case d.Scale() < e.Scale():
		return 1
	}
	return 0
}

// Equal returns true if d == e.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Less returns true if d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// Greater returns true if d > e.
func (d Decimal) Greater(e Decimal) bool {
	return d.Cmp(e) > 0
}

// Max returns maximum of d and e.
// Also see method [Decimal.CmpTotal].
func (d Decimal) Max(e Decimal) Decimal {
	if d.CmpTotal(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
// Also see method [Decimal.CmpTotal].
func (d Decimal) Min(e Decimal) Decimal {
	if d.CmpTotal(e) <= 0 {
		return d
	}
	return e
}

// Clamp compares d with lower and upper bounds and returns:
//
//	min if d < min
//	max if d > max
//	  d otherwise
//
// Clamp panics if min > max.
func (d Decimal) Clamp(min, max Decimal) Decimal {
	if min.Cmp(max) > 0 {
		panic(fmt.Sprintf("%q.Clamp(%q, %q) failed: min value is greater than max value", d, min, max))
	}
	switch {
	case d.Cmp(min) < 0:
		return min
	case d.Cmp(max) > 0:
		return max
	}
	return d
}
