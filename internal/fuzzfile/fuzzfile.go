// Package fuzzfile generates and checks files of arithmetic test records.
//
// A file is a JSON array of records. Each record holds two operands, an
// operator, and the expected result computed by the reference oracle.
// Failed operations are recorded as "error: " followed by the kind of
// the error.
package fuzzfile

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/govalues/decimal96"
	"github.com/govalues/decimal96/internal/oracle"
	"github.com/hashicorp/go-multierror"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Op is an arithmetic operator of a record.
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
	OpRem Op = "rem"
)

// AllOps lists all supported operators.
var AllOps = []Op{OpAdd, OpSub, OpMul, OpDiv, OpRem}

// ParseOp converts the name of an operator to an [Op].
func ParseOp(s string) (Op, error) {
	for _, op := range AllOps {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Eval applies the operator to x and y.
func (op Op) Eval(x, y decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case OpAdd:
		return x.Add(y)
	case OpSub:
		return x.Sub(y)
	case OpMul:
		return x.Mul(y)
	case OpDiv:
		return x.Quo(y)
	case OpRem:
		return x.Rem(y)
	}
	return decimal.Decimal{}, fmt.Errorf("unknown operator %q", op)
}

// Expect applies the operator to x and y using the reference oracle.
func (op Op) Expect(o *oracle.Oracle, x, y decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case OpAdd:
		return o.Add(x, y)
	case OpSub:
		return o.Sub(x, y)
	case OpMul:
		return o.Mul(x, y)
	case OpDiv:
		return o.Quo(x, y)
	case OpRem:
		return o.Rem(x, y)
	}
	return decimal.Decimal{}, fmt.Errorf("unknown operator %q", op)
}

// Record is a single test case.
type Record struct {
	Test     string `json:"test"`
	Left     string `json:"left"`
	Right    string `json:"right"`
	Operator Op     `json:"operator"`
	Result   string `json:"result"`
}

// Outcome formats the result of an operation the way it is stored in a
// record.
func Outcome(d decimal.Decimal, err error) string {
	if err == nil {
		return d.String()
	}
	var e *decimal.Error
	if errors.As(err, &e) && e.Kind != decimal.KindErrorString {
		return "error: " + e.Kind.String()
	}
	return "error: " + err.Error()
}

// Options control the generation of records.
type Options struct {
	Size int    // number of operand pairs
	Seed uint64 // seed of the pseudo-random generator
	Ops  []Op   // operators applied to every pair
}

// Generate creates records for opts.Size random operand pairs, one record
// per pair and operator, with the results computed by o.
func Generate(o *oracle.Oracle, opts Options) ([]Record, error) {
	if opts.Size < 0 {
		return nil, fmt.Errorf("size %v is negative", opts.Size)
	}
	ops := opts.Ops
	if len(ops) == 0 {
		ops = AllOps
	}
	r := rand.New(rand.NewPCG(opts.Seed, opts.Seed>>32|opts.Seed<<32))
	records := make([]Record, 0, opts.Size*len(ops))
	for i := 1; i <= opts.Size; i++ {
		x, y := randomDecimal(r), randomDecimal(r)
		for _, op := range ops {
			want, err := op.Expect(o, x, y)
			if err != nil && !isArithmeticError(err) {
				return nil, fmt.Errorf("computing %v %v %v: %w", x, op, y, err)
			}
			records = append(records, Record{
				Test:     fmt.Sprintf("%d.%s", i, op),
				Left:     x.String(),
				Right:    y.String(),
				Operator: op,
				Result:   Outcome(want, err),
			})
		}
	}
	return records, nil
}

// isArithmeticError reports whether err is an expected outcome of an
// operation rather than a failure of the oracle.
func isArithmeticError(err error) bool {
	return errors.Is(err, decimal.ErrExceedsMaximumPossibleValue) ||
		errors.Is(err, decimal.ErrLessThanMinimumPossibleValue) ||
		errors.Is(err, decimal.ErrDivisionByZero)
}

// randomDecimal returns a decimal with a random number of significant bits,
// a random sign and a random scale.
func randomDecimal(r *rand.Rand) decimal.Decimal {
	w := [3]uint32{r.Uint32(), r.Uint32(), r.Uint32()}
	drop := r.IntN(96)
	for i := 2; i >= 0 && drop > 0; i-- {
		if drop >= 32 {
			w[i] = 0
			drop -= 32
			continue
		}
		w[i] >>= drop
		drop = 0
	}
	return decimal.MustFromParts(w[0], w[1], w[2], r.IntN(2) == 0, uint32(r.IntN(decimal.MaxScale+1)))
}

// Write encodes records as an indented JSON array.
func Write(w io.Writer, records []Record) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}
	return nil
}

// Read decodes records written by [Write].
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	return records, nil
}

// Run evaluates every record and compares the outcome with the recorded
// result. All mismatches are reported in a single error.
func Run(records []Record) error {
	var result *multierror.Error
	for _, rec := range records {
		if err := check(rec); err != nil {
			result = multierror.Append(result, fmt.Errorf("test %v: %w", rec.Test, err))
		}
	}
	return result.ErrorOrNil()
}

func check(rec Record) error {
	x, err := decimal.Parse(rec.Left)
	if err != nil {
		return fmt.Errorf("parsing left operand: %w", err)
	}
	y, err := decimal.Parse(rec.Right)
	if err != nil {
		return fmt.Errorf("parsing right operand: %w", err)
	}
	if _, err := ParseOp(string(rec.Operator)); err != nil {
		return err
	}
	got := Outcome(rec.Operator.Eval(x, y))
	if got != rec.Result {
		return fmt.Errorf("%v %v %v = %v, want %v", rec.Left, rec.Operator, rec.Right, got, rec.Result)
	}
	return nil
}
