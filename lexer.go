package gocalc

import "math"

// Tokenize scans input into tokens. Digits are read greedily into a single
// number; spaces only separate. Any other character aborts the scan and no
// tokens are returned.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	var acc int64
	pending := false

	flush := func() {
		if pending {
			tokens = append(tokens, Number(acc))
			acc, pending = 0, false
		}
	}

	for pos, r := range input {
		if r >= '0' && r <= '9' {
			d := int64(r - '0')
			if acc > (math.MaxInt64-d)/10 {
				return nil, &Error{Kind: KindOverflow, Char: r, Pos: pos}
			}
			acc = acc*10 + d
			pending = true
			continue
		}
		flush()
		switch r {
		case '+':
			tokens = append(tokens, Plus)
		case '-':
			tokens = append(tokens, Minus)
		case '*':
			tokens = append(tokens, Star)
		case '/':
			tokens = append(tokens, Slash)
		case '(':
			tokens = append(tokens, LParen)
		case ')':
			tokens = append(tokens, RParen)
		case ' ':
		default:
			return nil, &Error{Kind: KindInvalidCharacter, Char: r, Pos: pos}
		}
	}
	flush()
	return tokens, nil
}
