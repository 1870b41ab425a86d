package decimal

// Add returns the (possibly rounded) sum of d and e.
// The result has the larger of the two scales, unless the sum does not fit
// into 96 bits at that scale. In that case digits are removed from the right
// and the result is rounded half away from zero.
//
// Add returns an error if the integer part of the sum does not fit into
// 96 bits. The error is of kind [KindExceedsMaximumPossibleValue] for
// positive sums and [KindLessThanMinimumPossibleValue] for negative sums.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	neg, w, scale := addWide(d, e)
	return newDecimalFromWide(neg, &w, scale)
}

// addWide returns the exact sum of d and e at the larger of the two scales.
func addWide(d, e Decimal) (bool, buf24, int) {
	scale := max(d.Scale(), e.Scale())

	// Alignment
	dw, ew := d.mag().wide(), e.mag().wide()
	dw.lsh(scale - d.Scale())
	ew.lsh(scale - e.Scale())

	// Summation
	var (
		w   buf24
		neg = d.neg
	)
	switch {
	case d.neg == e.neg:
		addWords(w[:], dw[:], ew[:])
	case cmpWords(dw[:], ew[:]) >= 0:
		subWords(w[:], dw[:], ew[:])
	default:
		subWords(w[:], ew[:], dw[:])
		neg = e.neg
	}
	return neg, w, scale
}

// Sub returns the (possibly rounded) difference between d and e.
// It is equivalent to d.Add(e.Neg()), see [Decimal.Add].
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	return d.Add(e.Neg())
}
