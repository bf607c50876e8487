package gocalc

import "strconv"

// Category is the coarse grammatical class of a token.
type Category int

const (
	NumberLike Category = iota
	OperatorLike
	GroupOpen
	GroupClose
)

var categoryNames = [...]string{
	NumberLike:   "number",
	OperatorLike: "operator",
	GroupOpen:    "'('",
	GroupClose:   "')'",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

// Category returns the class used by Validate.
func (t Token) Category() Category {
	switch t.Type {
	case TokenNumber:
		return NumberLike
	case TokenLParen:
		return GroupOpen
	case TokenRParen:
		return GroupClose
	}
	return OperatorLike
}

// successors lists which categories may directly follow each category.
var successors = [...][4]bool{
	NumberLike:   {OperatorLike: true, GroupClose: true},
	OperatorLike: {NumberLike: true, GroupOpen: true},
	GroupOpen:    {NumberLike: true, GroupOpen: true},
	GroupClose:   {GroupClose: true, OperatorLike: true},
}

// Validate checks that every adjacent pair of tokens is allowed. The sequence
// is treated as if it followed an opening parenthesis. Parenthesis balance is
// left to Build.
func Validate(tokens []Token) error {
	if len(tokens) == 0 {
		return &Error{Kind: KindEmptyStatement}
	}
	prev := GroupOpen
	for i, tok := range tokens {
		c := tok.Category()
		if !successors[prev][c] {
			return &Error{Kind: KindInvalidTokenSequence, Prev: prev, Token: tok, Index: i}
		}
		prev = c
	}
	return nil
}
