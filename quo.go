package decimal

// Quo returns the (possibly rounded) quotient of d and e.
// The result has the smallest scale, not less than d.Scale() - e.Scale(),
// at which the quotient is exact. If there is no such scale, the quotient
// is computed with as many digits as fit into 96 bits and [MaxScale],
// and rounded half away from zero.
//
// Quo returns an error if:
//   - the divisor is 0, see [ErrDivisionByZero];
//   - the integer part of the quotient does not fit into 96 bits.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	q, _, err := d.quo(e)
	return q, err
}

// quo computes the quotient like [Decimal.Quo] and also reports whether the
// quotient is exact.
func (d Decimal) quo(e Decimal) (Decimal, bool, error) {
	if e.IsZero() {
		return Decimal{}, false, ErrDivisionByZero
	}

	var (
		neg   = d.neg != e.neg
		s0    = d.Scale() - e.Scale()
		scale = max(s0, 0)
		n     = d.mag().wide()
		m     = e.mag().wide()
		q, r  buf24
	)

	// Integer quotient at the natural scale
	n.lsh(scale - s0)
	quoRemWords(q[:], r[:], n[:], m[:])
	if !q.fits96() {
		return Decimal{}, false, newOverflowError(neg, q[:])
	}

	// Long division, one decimal digit at a time
	var (
		coef = q.lo96()
		rem  = buf16{r[0], r[1], r[2]}
		div  = buf16{m[0], m[1], m[2]}
	)
	for !isZeroWords(rem[:]) && scale < MaxScale {
		var (
			r10   buf16
			digit byte
		)
		mulWordsUint32(r10[:], rem[:], 10)
		for cmpWords(r10[:], div[:]) >= 0 {
			subWords(r10[:], r10[:], div[:])
			digit++
		}
		next, ok := coef.fsa(digit)
		if !ok {
			break
		}
		coef, rem = next, r10
		scale++
	}

	// Rounding the last digit
	exact := isZeroWords(rem[:])
	if !exact {
		var r2 buf16
		shlWords(r2[:], rem[:], 1)
		half := cmpWords(r2[:], div[:])
		if arithmeticRounding.roundUp(neg, coef.isOdd(), half, true) {
			w := coef.wide()
			addWordsUint32(w[:], 1)
			res, err := newDecimalFromWide(neg, &w, scale)
			return res, false, err
		}
	}

	res, err := newDecimal(neg, coef, scale)
	return res, exact, err
}

// Rem returns the remainder of the truncated division of d by e.
// The result has the larger of the two scales and the sign of d,
// so that d = trunc(d / e) * e + d.Rem(e).
//
// Rem returns an error if the divisor is 0, see [ErrDivisionByZero].
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	_, r, err := quoRemAligned(d, e)
	return r, err
}

// QuoRem returns the quotient q and remainder r of d and e such that
//
//	d = q * e + r, q is an integer and sign(r) = sign(d)
//
// QuoRem returns an error if:
//   - the divisor is 0, see [ErrDivisionByZero];
//   - the integer quotient does not fit into 96 bits.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	qw, r, err := quoRemAligned(d, e)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	neg := d.neg != e.neg
	if !qw.fits96() {
		return Decimal{}, Decimal{}, newOverflowError(neg, qw[:])
	}
	return newDecimalUnsafe(neg, qw.lo96(), 0), r, nil
}

// quoRemAligned rescales d and e to the larger of the two scales and
// performs a single long division of their magnitudes.
// The remainder always fits into 96 bits, because it is less than both
// rescaled magnitudes and one of them is not rescaled.
func quoRemAligned(d, e Decimal) (buf24, Decimal, error) {
	if e.IsZero() {
		return buf24{}, Decimal{}, ErrDivisionByZero
	}
	var (
		scale = max(d.Scale(), e.Scale())
		n     = d.mag().wide()
		m     = e.mag().wide()
		q, r  buf24
	)
	n.lsh(scale - d.Scale())
	m.lsh(scale - e.Scale())
	quoRemWords(q[:], r[:], n[:], m[:])
	return q, newDecimalUnsafe(d.neg, r.lo96(), scale), nil
}
