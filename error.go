package gocalc

import "fmt"

// ErrorKind classifies a calculation failure.
type ErrorKind int

const (
	KindInvalidCharacter ErrorKind = iota
	KindEmptyStatement
	KindInvalidTokenSequence
	KindUnbalancedParen
	KindUnexpectedEnd
	KindDivideByZero
	KindOverflow
)

var kindNames = [...]string{
	KindInvalidCharacter:     "invalid character",
	KindEmptyStatement:       "empty statement",
	KindInvalidTokenSequence: "invalid token sequence",
	KindUnbalancedParen:      "unbalanced parenthesis",
	KindUnexpectedEnd:        "unexpected end of expression",
	KindDivideByZero:         "division by zero",
	KindOverflow:             "integer overflow",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by every stage of the pipeline. Which payload fields are
// set depends on Kind:
//
//	KindInvalidCharacter      Char, Pos (byte offset)
//	KindInvalidTokenSequence  Prev, Token, Index
//	KindUnbalancedParen       Token, Index
//	KindOverflow              Char, Pos for literals; Op, Lhs, Rhs for arithmetic
//	KindDivideByZero          Lhs
type Error struct {
	Kind  ErrorKind
	Char  rune
	Pos   int
	Index int
	Prev  Category
	Token Token
	Op    Op
	Lhs   int64
	Rhs   int64
}

// Sentinels for errors.Is. Only the kind is compared.
var (
	ErrInvalidCharacter     = &Error{Kind: KindInvalidCharacter}
	ErrEmptyStatement       = &Error{Kind: KindEmptyStatement}
	ErrInvalidTokenSequence = &Error{Kind: KindInvalidTokenSequence}
	ErrUnbalancedParen      = &Error{Kind: KindUnbalancedParen}
	ErrUnexpectedEnd        = &Error{Kind: KindUnexpectedEnd}
	ErrDivideByZero         = &Error{Kind: KindDivideByZero}
	ErrOverflow             = &Error{Kind: KindOverflow}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidCharacter:
		return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Pos)
	case KindInvalidTokenSequence:
		if e.Index == 0 {
			return fmt.Sprintf("invalid token sequence: %q cannot start an expression", e.Token)
		}
		return fmt.Sprintf("invalid token sequence: %q cannot follow %s (token %d)", e.Token, e.Prev, e.Index)
	case KindUnbalancedParen:
		if e.Token.Type == TokenLParen {
			return fmt.Sprintf("unbalanced parenthesis: %q at token %d is never closed", e.Token, e.Index)
		}
		return fmt.Sprintf("unbalanced parenthesis: %q at token %d has no matching %q", e.Token, e.Index, LParen)
	case KindOverflow:
		if e.Char != 0 {
			return fmt.Sprintf("integer overflow: number literal too large at offset %d", e.Pos)
		}
		return fmt.Sprintf("integer overflow: %d %s %d", e.Lhs, e.Op, e.Rhs)
	case KindDivideByZero:
		return fmt.Sprintf("division by zero: %d / 0", e.Lhs)
	}
	return e.Kind.String()
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
