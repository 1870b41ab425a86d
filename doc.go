/*
Package decimal implements immutable exact decimal numbers with a 96-bit
coefficient.
It is specifically designed for financial and general-purpose arithmetic
where binary floating-point rounding is not acceptable.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unsigned 96-bit integer representing the numeric value of
    the decimal without the decimal point.
    It is stored as three 32-bit words, see [Decimal.Unpack] and [FromParts].
  - Scale: a non-negative integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2 represents
    the value 123.45.
    The range of allowed values for the scale is from 0 to 28.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

In this approach, the same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have different
scales and coefficients.
A decimal occupies 16 bytes and is safe for concurrent use.

# Constraints

The range of a decimal is determined by its scale.
Here are the ranges for some scales:

	| Scale | Minimum                          | Maximum                         |
	| ----- | -------------------------------- | ------------------------------- |
	| 0     | -79228162514264337593543950335   | 79228162514264337593543950335   |
	| 2     | -792281625142643375935439503.35  | 792281625142643375935439503.35  |
	| 8     | -792281625142643375935.43950335  | 792281625142643375935.43950335  |
	| 28    | -7.9228162514264337593543950335  | 7.9228162514264337593543950335  |

The smallest positive decimal is 0.0000000000000000000000000001.
Special values such as [NaN], [Infinity], or [negative zeros] are not supported.
This ensures that arithmetic operations always produce either valid decimals
or errors.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [ParseScientific], [Decimal.String], [Decimal.Sci], [Decimal.Format].
  - from/to raw parts and bytes:
    [FromParts], [Decimal.Unpack], [Deserialize], [Decimal.Serialize].
  - from/to float64:
    [NewFromFloat64], [Decimal.Float64].
  - from/to integers:
    [New], [NewFromInt64], [NewFromUint64], [NewFromInt128], [NewFromUint128],
    [NewFromBigInt], [Decimal.Int64], [Decimal.Uint64], [Decimal.Int128],
    [Decimal.Uint128], [Decimal.BigInt].

Conversions to integers truncate the fractional part towards zero.
See the documentation for each method for more details.

# Operations

Each arithmetic operation is carried out using fixed-size arrays of 32-bit
words that are wide enough to hold the exact intermediate result:

  - [Decimal.Add], [Decimal.Sub]:
    the operand with the smaller scale is rescaled, so the exact sum has the
    larger of the two scales.
  - [Decimal.Mul]:
    the exact product has 192 bits and the sum of the two scales.
  - [Decimal.Quo]:
    the quotient is computed digit by digit until it is exact, or until it
    reaches 96 bits or a scale of 28.
  - [Decimal.Rem], [Decimal.QuoRem]:
    both operands are rescaled to the larger scale and divided exactly.

No heap allocations are made during arithmetic operations.

# Rounding

Implicit rounding is applied when an exact result does not fit into 96 bits
or has a scale greater than 28.
In such cases, digits are removed from the right, and the result is rounded
half away from zero.
The same rule applies to [Parse] and [NewFromFloat64].

In addition to implicit rounding, the package provides several methods for
explicit rounding:

  - half-to-even rounding:
    [Decimal.Round].
  - rounding with any [RoundingStrategy]:
    [Decimal.RoundWithStrategy].
  - rounding towards positive infinity:
    [Decimal.Ceil].
  - rounding towards negative infinity:
    [Decimal.Floor].
  - rounding towards zero:
    [Decimal.Trunc].
  - rescaling in both directions:
    [Decimal.Rescale], [Decimal.Quantize].

Implicit rounding can be restricted with [Decimal.AddExact],
[Decimal.SubExact], [Decimal.MulExact], [Decimal.QuoExact] and [ParseExact].
They return an error instead of rounding away a digit within the requested
scale.

See the documentation for each method for more details.

# Errors

Errors are values of type [*Error] with one of the following kinds:

  - [KindExceedsMaximumPossibleValue], [KindLessThanMinimumPossibleValue]:
    the integer part of a result does not fit into 96 bits.
  - [KindScaleExceedsMaximumPrecision]:
    a scale greater than 28 was requested.
  - [KindErrorString]:
    any other error, including invalid strings and [ErrDivisionByZero].

Errors can be matched with [errors.Is] using [ErrExceedsMaximumPossibleValue],
[ErrLessThanMinimumPossibleValue], [ErrScaleExceedsMaximumPrecision] and
[ErrDivisionByZero].
Most fallible operations have a Must variant that panics instead.

Errors are not returned in case of underflow.
If the result is a decimal between -0.00000000000000000000000000005 and
0.00000000000000000000000000005 exclusive, it will be rounded to 0.

[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[NaN]: https://en.wikipedia.org/wiki/NaN
[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
*/
package decimal
