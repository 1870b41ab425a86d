package decimal

import (
	"errors"
	"fmt"

	"github.com/shabbyrobe/go-num"
)

// Kind identifies the category of an [Error].
type Kind uint8

const (
	// KindErrorString is a free-text error, see [Error.Msg].
	KindErrorString Kind = iota
	// KindExceedsMaximumPossibleValue is returned when a positive result does
	// not fit into 96 bits at any scale.
	KindExceedsMaximumPossibleValue
	// KindLessThanMinimumPossibleValue is returned when a negative result does
	// not fit into 96 bits at any scale.
	KindLessThanMinimumPossibleValue
	// KindScaleExceedsMaximumPrecision is returned when a scale greater than
	// [MaxScale] is requested.
	KindScaleExceedsMaximumPrecision
)

func (k Kind) String() string {
	switch k {
	case KindErrorString:
		return "error string"
	case KindExceedsMaximumPossibleValue:
		return "exceeds maximum possible value"
	case KindLessThanMinimumPossibleValue:
		return "less than minimum possible value"
	case KindScaleExceedsMaximumPrecision:
		return "scale exceeds maximum precision"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is the error type returned by all fallible operations of the package.
type Error struct {
	Kind Kind
	// Msg is the message of a KindErrorString error.
	Msg string
	// Value is the rejected integer value of an overflow error, if it fits
	// into 128 bits. Otherwise it is zero.
	Value num.I128
	// Scale is the rejected scale of a KindScaleExceedsMaximumPrecision error.
	Scale uint32
}

var (
	// ErrExceedsMaximumPossibleValue matches any error of kind
	// KindExceedsMaximumPossibleValue when used with [errors.Is].
	ErrExceedsMaximumPossibleValue = &Error{Kind: KindExceedsMaximumPossibleValue}
	// ErrLessThanMinimumPossibleValue matches any error of kind
	// KindLessThanMinimumPossibleValue when used with [errors.Is].
	ErrLessThanMinimumPossibleValue = &Error{Kind: KindLessThanMinimumPossibleValue}
	// ErrScaleExceedsMaximumPrecision matches any error of kind
	// KindScaleExceedsMaximumPrecision when used with [errors.Is].
	ErrScaleExceedsMaximumPrecision = &Error{Kind: KindScaleExceedsMaximumPrecision}
	// ErrDivisionByZero is returned by [Decimal.Quo] and [Decimal.Rem] when the
	// divisor is zero.
	ErrDivisionByZero = newErrorString("division by zero")
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindErrorString:
		return e.Msg
	case KindExceedsMaximumPossibleValue:
		if e.Value == (num.I128{}) {
			return "number exceeds maximum value that can be represented"
		}
		return fmt.Sprintf("number %v exceeds maximum value that can be represented", e.Value)
	case KindLessThanMinimumPossibleValue:
		if e.Value == (num.I128{}) {
			return "number less than minimum value that can be represented"
		}
		return fmt.Sprintf("number %v less than minimum value that can be represented", e.Value)
	case KindScaleExceedsMaximumPrecision:
		return fmt.Sprintf("scale %v exceeds the maximum precision allowed: %v > %v", e.Scale, e.Scale, MaxScale)
	}
	return e.Kind.String()
}

// Is reports whether target is an [*Error] of the same kind.
// Free-text errors additionally have to carry the same message, unless the
// target message is empty.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	if e.Kind == KindErrorString && t.Msg != "" {
		return e.Msg == t.Msg
	}
	return true
}

func newErrorString(msg string) *Error {
	return &Error{Kind: KindErrorString, Msg: msg}
}

func newErrorf(format string, a ...any) *Error {
	return newErrorString(fmt.Sprintf(format, a...))
}

func newScaleError(scale int) *Error {
	if scale < 0 {
		return newErrorf("scale %v is negative", scale)
	}
	return &Error{Kind: KindScaleExceedsMaximumPrecision, Scale: uint32(scale)}
}

// newOverflowError returns the signed overflow error for the integer part of
// a magnitude that could not be reduced to 96 bits.
// The magnitude words are stored least significant first.
func newOverflowError(neg bool, mag []uint32) *Error {
	e := &Error{Kind: KindExceedsMaximumPossibleValue}
	if neg {
		e.Kind = KindLessThanMinimumPossibleValue
	}
	if v, ok := i128FromWords(neg, mag); ok {
		e.Value = v
	}
	return e
}

// i128FromWords converts a signed magnitude to a 128-bit integer and reports
// whether it fits.
func i128FromWords(neg bool, mag []uint32) (num.I128, bool) {
	if bitLenWords(mag) > 127 {
		return num.I128{}, false
	}
	var hi, lo uint64
	for i := len(mag) - 1; i >= 0; i-- {
		if i >= 4 {
			continue
		}
		if i >= 2 {
			hi = hi<<32 | uint64(mag[i])
		} else {
			lo = lo<<32 | uint64(mag[i])
		}
	}
	if neg {
		hi, lo = negate128(hi, lo)
	}
	return num.I128FromRaw(hi, lo), true
}

// negate128 returns the two's complement of a 128-bit integer.
func negate128(hi, lo uint64) (uint64, uint64) {
	hi, lo = ^hi, ^lo
	lo++
	if lo == 0 {
		hi++
	}
	return hi, lo
}
