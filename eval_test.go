package gocalc

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/anko/env"
	"github.com/mattn/anko/vm"
)

func TestEval(t *testing.T) {
	tests := []struct {
		node *Node
		want int64
	}{
		{node: Leaf(42), want: 42},
		{node: Binary(Leaf(1), OpAdd, Leaf(2)), want: 3},
		{node: Binary(Leaf(1), OpSubtract, Leaf(2)), want: -1},
		{node: Binary(Leaf(6), OpMultiply, Leaf(7)), want: 42},
		{node: Binary(Leaf(7), OpDivide, Leaf(2)), want: 3},
		{node: Binary(Binary(Leaf(0), OpSubtract, Leaf(7)), OpDivide, Leaf(2)), want: -3},
		{node: Binary(Leaf(1), OpSubtract, Binary(Leaf(2), OpSubtract, Leaf(3))), want: 2},
		{node: Binary(Binary(Leaf(1), OpSubtract, Leaf(2)), OpSubtract, Leaf(3)), want: -4},
		{node: Binary(Leaf(math.MaxInt64), OpMultiply, Leaf(1)), want: math.MaxInt64},
		{node: Binary(Leaf(0), OpMultiply, Leaf(math.MaxInt64)), want: 0},
	}
	for _, test := range tests {
		got, err := Eval(test.node)
		if err != nil {
			t.Errorf("%v: %v", test.node, err)
			continue
		}
		if got != test.want {
			t.Errorf("want %d for %v but got %d", test.want, test.node, got)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	minInt := Binary(Binary(Leaf(0), OpSubtract, Leaf(math.MaxInt64)), OpSubtract, Leaf(1))
	tests := []struct {
		node *Node
		want *Error
	}{
		{
			node: Binary(Leaf(5), OpDivide, Leaf(0)),
			want: &Error{Kind: KindDivideByZero, Op: OpDivide, Lhs: 5},
		},
		{
			node: Binary(Leaf(5), OpDivide, Binary(Leaf(3), OpSubtract, Leaf(3))),
			want: &Error{Kind: KindDivideByZero, Op: OpDivide, Lhs: 5},
		},
		{
			node: Binary(Leaf(math.MaxInt64), OpAdd, Leaf(1)),
			want: &Error{Kind: KindOverflow, Op: OpAdd, Lhs: math.MaxInt64, Rhs: 1},
		},
		{
			node: Binary(minInt, OpSubtract, Leaf(1)),
			want: &Error{Kind: KindOverflow, Op: OpSubtract, Lhs: math.MinInt64, Rhs: 1},
		},
		{
			node: Binary(Leaf(math.MaxInt64), OpMultiply, Leaf(2)),
			want: &Error{Kind: KindOverflow, Op: OpMultiply, Lhs: math.MaxInt64, Rhs: 2},
		},
		{
			node: Binary(minInt, OpDivide, Binary(Leaf(0), OpSubtract, Leaf(1))),
			want: &Error{Kind: KindOverflow, Op: OpDivide, Lhs: math.MinInt64, Rhs: -1},
		},
		{
			node: Binary(minInt, OpMultiply, Binary(Leaf(0), OpSubtract, Leaf(1))),
			want: &Error{Kind: KindOverflow, Op: OpMultiply, Lhs: math.MinInt64, Rhs: -1},
		},
		// left operand fails first
		{
			node: Binary(Binary(Leaf(1), OpDivide, Leaf(0)), OpAdd, Binary(Leaf(math.MaxInt64), OpAdd, Leaf(1))),
			want: &Error{Kind: KindDivideByZero, Op: OpDivide, Lhs: 1},
		},
	}
	for _, test := range tests {
		_, err := Eval(test.node)
		var cerr *Error
		if !errors.As(err, &cerr) {
			t.Fatalf("want *Error for %v but got %v", test.node, err)
		}
		if diff := cmp.Diff(test.want, cerr); diff != "" {
			t.Errorf("error mismatch for %v (-want +got):\n%s", test.node, diff)
		}
	}
}

func TestEvalMinInt(t *testing.T) {
	got, err := Calculate("0 - 9223372036854775807 - 1")
	if err != nil {
		t.Fatal(err)
	}
	if got != math.MinInt64 {
		t.Errorf("want %d but got %d", int64(math.MinInt64), got)
	}
}

// randomExpr builds an expression over + - * and parentheses small enough
// that no intermediate value overflows.
func randomExpr(r *rand.Rand, depth int) string {
	if depth == 0 || r.Intn(3) == 0 {
		return fmt.Sprint(r.Intn(10))
	}
	ops := []string{"+", "-", "*"}
	lhs := randomExpr(r, depth-1)
	rhs := randomExpr(r, depth-1)
	s := lhs + " " + ops[r.Intn(len(ops))] + " " + rhs
	if r.Intn(2) == 0 {
		s = "(" + s + ")"
	}
	return s
}

// TestCalculateMatchesAnko cross-checks precedence and associativity against
// an independent interpreter.
func TestCalculateMatchesAnko(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	e := env.NewEnv()
	for i := 0; i < 500; i++ {
		expr := randomExpr(r, 4)
		want, err := vm.Execute(e, nil, expr)
		if err != nil {
			t.Fatalf("anko %q: %v", expr, err)
		}
		got, err := Calculate(expr)
		if err != nil {
			t.Fatalf("%q: %v", expr, err)
		}
		if fmt.Sprint(want) != fmt.Sprint(got) {
			t.Errorf("want %v for %q but got %d", want, expr, got)
		}
	}
}

func TestCalculateMatchesAnkoWithoutSpaces(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	e := env.NewEnv()
	for i := 0; i < 100; i++ {
		expr := randomExpr(r, 4)
		want, err := vm.Execute(e, nil, expr)
		if err != nil {
			t.Fatalf("anko %q: %v", expr, err)
		}
		got, err := Calculate(strings.ReplaceAll(expr, " ", ""))
		if err != nil {
			t.Fatalf("%q: %v", expr, err)
		}
		if fmt.Sprint(want) != fmt.Sprint(got) {
			t.Errorf("want %v for %q but got %d", want, expr, got)
		}
	}
}
