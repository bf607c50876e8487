// Package gocalc evaluates integer arithmetic expressions built from
// non-negative literals, + - * /, parentheses and spaces.
//
// The pipeline is Tokenize, Validate, Build and Eval. Each stage returns an
// *Error on failure and Calculate stops at the first one:
//
//	v, err := gocalc.Calculate("1 + 3 * (3 - 1) / 2") // 4, nil
//	_, err = gocalc.Calculate("5/0")                  // errors.Is(err, gocalc.ErrDivideByZero)
//
// All functions are pure and safe for concurrent use.
package gocalc

// Calculate evaluates input.
func Calculate(input string) (int64, error) {
	node, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Eval(node)
}
