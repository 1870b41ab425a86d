package decimal

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	errEmpty            = newErrorString("invalid decimal: empty")
	errTwoDecimalPoints = newErrorString("invalid decimal: two decimal points")
	errLeadingSeparator = newErrorString("invalid decimal: must start lead with a number")
	errUnknownCharacter = newErrorString("invalid decimal: unknown character")
	errNoDigits         = newErrorString("invalid decimal: no digits found")
	errTooManyDigits    = newErrorString("invalid decimal: overflow from too many digits")
	errRoundingOverflow = newErrorString("invalid decimal: overflow when rounding")
	errScientific       = newErrorString("invalid decimal: failed to parse")
)

// Parse converts a string to a (possibly rounded) decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1_000_000.50
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	digits         ::= digit { digit | '_' }
//	significand    ::= digits '.' { digit | '_' } | '.' digits | digits
//	numeric-string ::= [sign] significand
//
// Underscores are ignored, but only after the first digit.
// Parse maintains trailing zeros in the fractional part to preserve scale.
// If the fractional part has more digits than fit into 96 bits or
// [MaxScale], the excess digits are removed and the result is rounded
// half away from zero.
//
// Parse returns an error of kind [KindErrorString] if:
//   - the string does not represent a valid decimal number;
//   - the integer part does not fit into 96 bits.
func Parse(s string) (Decimal, error) {
	if len(s) == 0 {
		return Decimal{}, errEmpty
	}

	var (
		pos    int
		neg    bool
		coef   buf12
		scale  int
		point  bool
		digits bool
	)

	// Sign
	switch s[0] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}

	for ; pos < len(s); pos++ {
		b := s[pos]
		switch {
		case '0' <= b && b <= '9':
			if point && scale == MaxScale {
				return parseRound(s, pos, neg, coef, scale)
			}
			next, ok := coef.fsa(b - '0')
			if !ok {
				if !point {
					return Decimal{}, errTooManyDigits
				}
				return parseRound(s, pos, neg, coef, scale)
			}
			coef = next
			digits = true
			if point {
				scale++
			}
		case b == '.' && !point:
			point = true
		case b == '_' && digits:
			// Separator
		default:
			return Decimal{}, parseCharError(b)
		}
	}

	if !digits {
		return Decimal{}, errNoDigits
	}
	return newDecimalUnsafe(neg, coef, scale), nil
}

// parseRound rounds coef using the digits that start at s[pos] and do not
// fit into the decimal. The remaining characters are still validated.
func parseRound(s string, pos int, neg bool, coef buf12, scale int) (Decimal, error) {
	var (
		digit  byte
		seen   bool
		sticky bool
	)
	for ; pos < len(s); pos++ {
		b := s[pos]
		switch {
		case '0' <= b && b <= '9':
			if !seen {
				digit = b - '0'
				seen = true
			} else if b != '0' {
				sticky = true
			}
		case b == '_':
			// Separator
		default:
			return Decimal{}, parseCharError(b)
		}
	}

	half := halfDigit(uint32(digit), sticky)
	if arithmeticRounding.roundUp(neg, coef.isOdd(), half, digit != 0 || sticky) {
		if addWordsUint32(coef[:], 1) {
			return Decimal{}, errRoundingOverflow
		}
	}
	return newDecimalUnsafe(neg, coef, scale), nil
}

func parseCharError(b byte) error {
	switch b {
	case '.':
		return errTwoDecimalPoints
	case '_':
		return errLeadingSeparator
	}
	return errUnknownCharacter
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// ParseScientific converts a string in scientific notation to a decimal.
// The input string must be in one of the following formats:
//
//	1.83e5
//	-0.22E-9
//	1e+3
//
// The significand is parsed by [Parse]. A negative exponent increases the
// scale. A positive exponent decreases the scale or, if it is larger than the
// scale, multiplies the significand by a power of ten, in which case the
// result is normalized.
//
// ParseScientific returns an error if:
//   - the string has no exponent or the exponent is not a valid integer;
//   - the significand is not valid, see [Parse];
//   - the resulting scale is greater than [MaxScale];
//   - the positive exponent is greater than [MaxScale];
//   - the result does not fit into 96 bits.
func ParseScientific(s string) (Decimal, error) {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return Decimal{}, errScientific
	}
	d, err := Parse(s[:i])
	if err != nil {
		return Decimal{}, err
	}

	// Exponent
	exp, eneg := s[i+1:], false
	if exp != "" && (exp[0] == '-' || exp[0] == '+') {
		exp, eneg = exp[1:], exp[0] == '-'
	}
	if exp == "" || exp[0] < '0' || exp[0] > '9' {
		return Decimal{}, errScientific
	}
	e, err := strconv.ParseUint(exp, 10, 32)
	if err != nil {
		return Decimal{}, errScientific
	}

	scale := uint64(d.Scale())
	switch {
	case eneg:
		scale += e
	case e <= scale:
		scale -= e
	default:
		if e > MaxScale {
			return Decimal{}, &Error{Kind: KindScaleExceedsMaximumPrecision, Scale: uint32(e)}
		}
		d, err = d.Mul(pow10Decimal(int(e)))
		if err != nil {
			return Decimal{}, err
		}
		return d.Normalize(), nil
	}
	if scale > MaxScale {
		return Decimal{}, &Error{Kind: KindScaleExceedsMaximumPrecision, Scale: uint32(min(scale, 1<<32-1))}
	}
	return newDecimalUnsafe(d.neg, d.mag(), int(scale)), nil
}

// MustParseScientific is like [ParseScientific] but panics if the string
// cannot be parsed.
func MustParseScientific(s string) Decimal {
	d, err := ParseScientific(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseScientific(%q) failed: %v", s, err))
	}
	return d
}

// pow10Decimal returns 10^n as an integer decimal, 0 <= n <= MaxScale.
func pow10Decimal(n int) Decimal {
	return newDecimalUnsafe(false, pow10w[n], 0)
}
