package exact_test

import (
	"fmt"
	"math"
	"strings"

	"github.com/govalues/exact"
	"github.com/shopspring/decimal"
)

// precision is the precision of every operand of the calculator.
const precision = 2

func evaluate(input string) (exact.Fixed, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return exact.Fixed{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return exact.Fixed{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return exact.Fixed{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]exact.Fixed, error) {
	stack := make([]exact.Fixed, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
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

func processOperator(stack []exact.Fixed, token string) ([]exact.Fixed, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result exact.Fixed
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
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []exact.Fixed, token string) ([]exact.Fixed, error) {
	f, err := exact.ParseFixed(token, precision)
	if err != nil {
		return nil, err
	}
	return append(stack, f), nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in prefix (or Polish) notation.
// Every operand is a fixed-point number with two digits after the decimal point.
func Example_prefixCalculator() {
	f, err := evaluate("* 10 + 1.23 4.56")
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	_, err = evaluate("/ 1 0")
	fmt.Println(err != nil)
	// Output:
	// 57.90
	// true
}

// This example splits a bill of 100.00 between three people.
// The cent that cannot be split evenly goes to the first person.
func Example_splitBill() {
	bill := exact.MustParseFixed("100.00", 2)
	parts := exact.NewFixedPartition(uint64(bill.Raw()), 3)
	for part := range parts.All() {
		fmt.Println(exact.MustNewFixed(int64(part), bill.Precision()))
	}
	// Output:
	// 33.34
	// 33.33
	// 33.33
}

func ExampleMulWide() {
	w := exact.MulWide(math.MaxUint64, 2)
	fmt.Println(w.Hi, w.Lo)
	fmt.Println(exact.DivWide(w.Hi, w.Lo, 2))
	// Output:
	// 1 18446744073709551614
	// 0 18446744073709551615 0 <nil>
}

func ExampleSignDecompose() {
	fmt.Println(exact.SignDecompose(math.MinInt64))
	fmt.Println(exact.SignRecompose(1<<63, true))
	_, err := exact.SignRecompose(1<<63, false)
	fmt.Println(exact.ErrOverflow.Has(err))
	// Output:
	// 9223372036854775808 true
	// -9223372036854775808 <nil>
	// true
}

func ExampleNewFixedFromInt64() {
	f, _ := exact.NewFixedFromInt64(10, 2)
	g, _ := exact.NewFixedFromInt64(5, 2)
	fmt.Println(f.Add(g))
	// Output:
	// 15.00 <nil>
}

func ExampleParseFixed() {
	fmt.Println(exact.ParseFixed("1.005", 2))
	fmt.Println(exact.ParseFixed("-1.005", 2))
	fmt.Println(exact.ParseFixed("1.005", 3))
	// Output:
	// 1.01 <nil>
	// -1.01 <nil>
	// 1.005 <nil>
}

func ExampleFixed_Cmp() {
	f := exact.MustParseFixed("1.5", 1)
	g := exact.MustParseFixed("1.49", 2)
	fmt.Println(f.Cmp(g))
	fmt.Println(g.Cmp(f))
	fmt.Println(f.Cmp(exact.MustParseFixed("1.50", 2)))
	// Output:
	// 1
	// -1
	// 0
}

func ExampleFixed_Mul() {
	f := exact.MustParseFixed("1.5", 1)
	g := exact.MustParseFixed("-1.5", 1)
	fmt.Println(f.Mul(f))
	fmt.Println(f.Mul(g))
	// Output:
	// 2.3 <nil>
	// -2.3 <nil>
}

func ExampleFixed_Quo() {
	f := exact.MustParseFixed("2", 2)
	g := exact.MustParseFixed("3", 2)
	fmt.Println(f.Quo(g))
	// Output:
	// 0.67 <nil>
}

func ExampleFixed_SetPrecision() {
	f := exact.MustParseFixed("1.25", 2)
	fmt.Println(f.SetPrecision(1))
	fmt.Println(f.SetPrecision(4))
	// Output:
	// 1.3 <nil>
	// 1.2500 <nil>
}

func ExampleFraction_Add() {
	x := exact.MustNewFraction(1, 3)
	y := exact.MustNewFraction(1, 6)
	z := x.MustAdd(y)
	fmt.Println(z)
	fmt.Println(z.Simplify())
	// Output:
	// 3/6
	// 1/2
}

func ExampleFraction_Cmp() {
	x := exact.MustNewFraction(1, math.MaxUint64)
	y := exact.MustNewFraction(2, math.MaxUint64-1)
	fmt.Println(x.Cmp(y))
	// Output:
	// -1
}

func ExampleFraction_Mod() {
	x := exact.MustNewFraction(-7, 2)
	y := exact.MustNewFraction(1, 1)
	fmt.Println(x.Mod(y))
	// Output:
	// 1/2 <nil>
}

func ExampleFraction_Round() {
	x := exact.MustNewFraction(2, 3)
	fmt.Println(x.Round(100))
	// Output:
	// 67/100 <nil>
}

func ExampleFixedPartition_All() {
	p := exact.NewFixedPartition(10, 3)
	for part := range p.All() {
		fmt.Println(part)
	}
	// Output:
	// 4
	// 3
	// 3
}

func ExampleNewPartition() {
	weights := []exact.Fraction{
		exact.MustNewFraction(1, 2),
		exact.MustNewFraction(1, 3),
	}
	p, err := exact.NewPartition(7, weights)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Sum(), p.Values())
	// Output:
	// 6 [4 2]
}

func ExampleAllocate() {
	weights := []exact.Percent{
		exact.NewPercent(decimal.NewFromInt(50)),
		exact.NewPercent(decimal.NewFromInt(30)),
		exact.NewPercent(decimal.NewFromInt(20)),
	}
	shares, err := exact.Allocate(weights, exact.MustNewFraction(100, 1))
	if err != nil {
		panic(err)
	}
	fmt.Println(shares)
	// Output:
	// [50/1 30/1 20/1]
}
