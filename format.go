package decimal

import (
	"fmt"
	"strconv"
)

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// The fractional part always has exactly d.Scale() digits.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	var (
		buf   [32]byte
		pos   int
		coef  buf12
		scale int
	)

	pos = len(buf) - 1
	coef = d.mag()
	scale = d.Scale()

	// Coefficient
	for {
		buf[pos] = byte(divWordsUint32(coef[:], coef[:], 10)) + '0'
		pos--
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if coef.isZero() {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if coef.isZero() && scale == 0 {
			break
		}
	}

	// Sign
	if d.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	// Convert bytes to string
	return string(buf[pos+1:])
}

// Sci returns a string representation of d in scientific notation.
// The significand has a single integer digit and the fractional digits are
// omitted if they are all zeros:
//
//	1.23e2
//	-1e-28
//	4.500e5
//
// Also see method [ParseScientific].
func (d Decimal) Sci(expSymbol string) string {
	body := d.sciBody(expSymbol)
	if d.IsNeg() {
		return "-" + string(body)
	}
	return string(body)
}

// sciBody returns the unsigned scientific representation of d.
func (d Decimal) sciBody(expSymbol string) []byte {
	var (
		buf  [MaxPrec]byte
		pos  = len(buf)
		coef = d.mag()
	)

	// Digits, most significant first
	for {
		pos--
		buf[pos] = byte(divWordsUint32(coef[:], coef[:], 10)) + '0'
		if coef.isZero() {
			break
		}
	}
	digs := buf[pos:]
	exp := len(digs) - 1 - d.Scale()

	body := make([]byte, 0, len(digs)+len(expSymbol)+4)
	body = append(body, digs[0])
	if len(digs) > 1 && !allZeros(digs[1:]) {
		body = append(body, '.')
		body = append(body, digs[1:]...)
	}
	body = append(body, expSymbol...)
	return strconv.AppendInt(body, int64(exp), 10)
}

func allZeros(b []byte) bool {
	for _, c := range b {
		if c != '0' {
			return false
		}
	}
	return true
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//	%k:         -12345.6%
//	%e:         -1.23456e2
//	%E:         -1.23456E2
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f and %k verbs.
// For %f verb, the default precision is equal to the actual scale of the decimal,
// whereas, for verb %k the default precision is the actual scale of the decimal minus 2.
// Digits beyond the precision are rounded half to even.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	var body []byte

	switch verb {
	case 'e', 'E':
		body = d.sciBody(string(verb))
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'k', 'K':
		// Percentage
		if verb == 'k' || verb == 'K' {
			p, err := d.Mul(Hundred)
			if err != nil {
				badVerb(state, verb, d)
				return
			}
			d = p
		}
		d, body = d.fixedBody(state, verb)
	default:
		badVerb(state, verb, d)
		return
	}

	// Arithmetic sign
	rsign := 0
	if d.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(body) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case d.IsNeg():
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, body...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	state.Write(buf)
}

// fixedBody rounds d to the precision requested by the state and returns
// the rounded decimal along with its unsigned fixed-point representation.
func (d Decimal) fixedBody(state fmt.State, verb rune) (Decimal, []byte) {
	// Rescaling
	tzeroes := 0
	if verb == 'f' || verb == 'F' || verb == 'k' || verb == 'K' {
		scale := 0
		switch p, ok := state.Precision(); {
		case ok:
			scale = p
		case verb == 'k' || verb == 'K':
			scale = d.Scale() - 2
		case verb == 'f' || verb == 'F':
			scale = d.Scale()
		}
		switch {
		case scale < 0:
			scale = 0
		case scale > d.Scale():
			tzeroes = scale - d.Scale()
			scale = d.Scale()
		}
		d = d.Round(scale)
	}

	// Integer and fractional digits
	intdigs, fracdigs := 0, d.Scale()
	if dprec := d.Prec(); dprec > fracdigs {
		intdigs = dprec - fracdigs
	}
	if d.WithinOne() {
		intdigs++ // leading 0
	}

	// Decimal point
	dpoint := 0
	if fracdigs > 0 || tzeroes > 0 {
		dpoint = 1
	}

	// Percentage sign
	psign := 0
	if verb == 'k' || verb == 'K' {
		psign = 1
	}

	// Writing buffer
	width := intdigs + dpoint + fracdigs + tzeroes + psign
	buf := make([]byte, width)
	pos := width - 1
	if psign > 0 {
		buf[pos] = '%'
		pos--
	}
	for i := 0; i < tzeroes; i++ {
		buf[pos] = '0'
		pos--
	}
	dcoef := d.mag()
	for i := 0; i < fracdigs; i++ {
		buf[pos] = byte(divWordsUint32(dcoef[:], dcoef[:], 10)) + '0'
		pos--
	}
	if dpoint > 0 {
		buf[pos] = '.'
		pos--
	}
	for i := 0; i < intdigs; i++ {
		buf[pos] = byte(divWordsUint32(dcoef[:], dcoef[:], 10)) + '0'
		pos--
	}
	return d, buf
}

func badVerb(state fmt.State, verb rune, d Decimal) {
	fmt.Fprintf(state, "%%!%c(decimal.Decimal=%s)", verb, d.String())
}
