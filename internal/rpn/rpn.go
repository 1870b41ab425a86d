// Package rpn evaluates arithmetic expressions written in reverse Polish
// (postfix) notation, such as "1.5 2 + 3 *".
package rpn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal96"
)

var (
	errNoTokens         = errors.New("no tokens")
	errNotEnoughOperand = errors.New("not enough operands")
)

// Evaluate returns the value of a postfix expression.
// Tokens are separated by white space. Supported operators are
// + - * / % and ^, where the exponent of ^ has to be an integer.
// Operands are parsed with [decimal.Parse], or with
// [decimal.ParseScientific] if they contain an exponent.
func Evaluate(input string) (decimal.Decimal, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return decimal.Decimal{}, fmt.Errorf("parsing tokens: %w", errNoTokens)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return decimal.Decimal{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func processTokens(tokens []string) ([]decimal.Decimal, error) {
	stack := make([]decimal.Decimal, 0, len(tokens))
	var err error
	for _, token := range tokens {
		switch token {
		case "+", "-", "*", "/", "%", "^":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []decimal.Decimal, token string) ([]decimal.Decimal, error) {
	if len(stack) < 2 {
		return nil, errNotEnoughOperand
	}
	left := stack[len(stack)-2]
	right := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result decimal.Decimal
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	case "%":
		result, err = left.Rem(right)
	case "^":
		result, err = power(left, right)
	}
	if err != nil {
		return nil, err
	}
	return append(stack, result), nil
}

func power(base, exp decimal.Decimal) (decimal.Decimal, error) {
	if !exp.IsInt() {
		return decimal.Decimal{}, fmt.Errorf("exponent %v is not an integer", exp)
	}
	n, err := exp.Int64()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return base.PowInt(n)
}

func processOperand(stack []decimal.Decimal, token string) ([]decimal.Decimal, error) {
	parse := decimal.Parse
	if strings.ContainsAny(token, "eE") {
		parse = decimal.ParseScientific
	}
	d, err := parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}
