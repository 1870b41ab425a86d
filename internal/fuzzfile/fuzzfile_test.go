package fuzzfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/govalues/decimal96"
	"github.com/govalues/decimal96/internal/oracle"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOracle(t *testing.T) *oracle.Oracle {
	t.Helper()
	o, err := oracle.New(100)
	require.NoError(t, err)
	return o
}

func TestParseOp(t *testing.T) {
	for _, op := range AllOps {
		got, err := ParseOp(string(op))
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}
	_, err := ParseOp("pow")
	require.Error(t, err)
}

func TestOp_Eval(t *testing.T) {
	x := decimal.MustParse("7.5")
	y := decimal.MustParse("-2")
	tests := map[Op]string{
		OpAdd: "5.5",
		OpSub: "9.5",
		OpMul: "-15.0",
		OpDiv: "-3.75",
		OpRem: "1.5",
	}
	for op, want := range tests {
		got, err := op.Eval(x, y)
		require.NoError(t, err, op)
		assert.Equal(t, want, got.String(), op)
	}
	_, err := Op("pow").Eval(x, y)
	require.Error(t, err)
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		d    decimal.Decimal
		err  error
		want string
	}{
		{decimal.MustParse("1.50"), nil, "1.50"},
		{decimal.Decimal{}, decimal.ErrExceedsMaximumPossibleValue, "error: exceeds maximum possible value"},
		{decimal.Decimal{}, decimal.ErrLessThanMinimumPossibleValue, "error: less than minimum possible value"},
		{decimal.Decimal{}, decimal.ErrDivisionByZero, "error: division by zero"},
		{decimal.Decimal{}, errors.New("boom"), "error: boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Outcome(tt.d, tt.err))
	}

	_, err := decimal.Max.Add(decimal.One)
	assert.Equal(t, "error: exceeds maximum possible value", Outcome(decimal.Decimal{}, err))
}

func TestGenerate(t *testing.T) {
	o := newOracle(t)

	t.Run("deterministic", func(t *testing.T) {
		opts := Options{Size: 20, Seed: 42}
		a, err := Generate(o, opts)
		require.NoError(t, err)
		b, err := Generate(o, opts)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Len(t, a, 20*len(AllOps))
		assert.Equal(t, "1.add", a[0].Test)
		assert.Equal(t, "20.rem", a[len(a)-1].Test)
	})

	t.Run("ops", func(t *testing.T) {
		records, err := Generate(o, Options{Size: 3, Seed: 1, Ops: []Op{OpMul}})
		require.NoError(t, err)
		require.Len(t, records, 3)
		for _, rec := range records {
			assert.Equal(t, OpMul, rec.Operator)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := Generate(o, Options{Size: -1})
		require.Error(t, err)
	})
}

func TestRoundTrip(t *testing.T) {
	o := newOracle(t)
	records, err := Generate(o, Options{Size: 200, Seed: 7})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records))
	assert.True(t, strings.HasPrefix(buf.String(), "["))
	assert.Contains(t, buf.String(), `"1.add"`)

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, records, got)
	require.NoError(t, Run(got))
}

func TestRun(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		records := []Record{
			{Test: "1.add", Left: "1.1", Right: "2.22", Operator: OpAdd, Result: "3.32"},
			{Test: "1.div", Left: "1", Right: "7", Operator: OpDiv, Result: "0.1428571428571428571428571429"},
			{Test: "2.div", Left: "1", Right: "0", Operator: OpDiv, Result: "error: division by zero"},
			{Test: "3.add", Left: "79228162514264337593543950335", Right: "1", Operator: OpAdd, Result: "error: exceeds maximum possible value"},
		}
		require.NoError(t, Run(records))
	})

	t.Run("mismatch", func(t *testing.T) {
		records := []Record{
			{Test: "1.add", Left: "1.1", Right: "2.22", Operator: OpAdd, Result: "3.33"},
			{Test: "1.sub", Left: "1.1", Right: "2.22", Operator: OpSub, Result: "-1.12"},
			{Test: "2.mul", Left: "x", Right: "1", Operator: OpMul, Result: "1"},
			{Test: "3.pow", Left: "1", Right: "1", Operator: "pow", Result: "1"},
		}
		err := Run(records)
		require.Error(t, err)
		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		require.Len(t, merr.Errors, 3)
		assert.Contains(t, merr.Errors[0].Error(), "test 1.add: 1.1 add 2.22 = 3.32, want 3.33")
		assert.Contains(t, merr.Errors[1].Error(), "test 2.mul: parsing left operand")
		assert.Contains(t, merr.Errors[2].Error(), "test 3.pow")
	})

	t.Run("read", func(t *testing.T) {
		_, err := Read(strings.NewReader("{"))
		require.Error(t, err)
	})
}
