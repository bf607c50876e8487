package gocalc

import (
	"fmt"
	"math"
)

// Eval reduces the tree to a single value. The left operand is always
// evaluated before the right one, so the leftmost failure wins.
func Eval(node *Node) (int64, error) {
	if node == nil {
		return 0, &Error{Kind: KindEmptyStatement}
	}
	switch node.Type {
	case NodeLeaf:
		return node.Value, nil
	case NodeBinary:
		lhs, err := Eval(node.Left)
		if err != nil {
			return 0, err
		}
		rhs, err := Eval(node.Right)
		if err != nil {
			return 0, err
		}
		return apply(node.Op, lhs, rhs)
	}
	return 0, fmt.Errorf("invalid node type: %d", node.Type)
}

func apply(op Op, lhs, rhs int64) (int64, error) {
	overflow := func() (int64, error) {
		return 0, &Error{Kind: KindOverflow, Op: op, Lhs: lhs, Rhs: rhs}
	}
	switch op {
	case OpAdd:
		if (rhs > 0 && lhs > math.MaxInt64-rhs) || (rhs < 0 && lhs < math.MinInt64-rhs) {
			return overflow()
		}
		return lhs + rhs, nil
	case OpSubtract:
		if (rhs < 0 && lhs > math.MaxInt64+rhs) || (rhs > 0 && lhs < math.MinInt64+rhs) {
			return overflow()
		}
		return lhs - rhs, nil
	case OpMultiply:
		if lhs == 0 || rhs == 0 {
			return 0, nil
		}
		r := lhs * rhs
		if r/rhs != lhs || (lhs == -1 && rhs == math.MinInt64) || (rhs == -1 && lhs == math.MinInt64) {
			return overflow()
		}
		return r, nil
	case OpDivide:
		if rhs == 0 {
			return 0, &Error{Kind: KindDivideByZero, Op: op, Lhs: lhs}
		}
		if lhs == math.MinInt64 && rhs == -1 {
			return overflow()
		}
		// Go integer division truncates toward zero.
		return lhs / rhs, nil
	}
	return 0, fmt.Errorf("invalid operator: %v", op)
}
