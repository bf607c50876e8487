package gocalc

import "strconv"

// TokenType identifies the kind of a lexed token.
type TokenType int

const (
	TokenNumber TokenType = iota
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
)

var tokenNames = [...]string{
	TokenNumber: "NUMBER",
	TokenPlus:   "PLUS",
	TokenMinus:  "MINUS",
	TokenStar:   "STAR",
	TokenSlash:  "SLASH",
	TokenLParen: "LPAREN",
	TokenRParen: "RPAREN",
}

func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return "TokenType(" + strconv.Itoa(int(tt)) + ")"
}

// Token is a single lexical unit. Value is only meaningful for TokenNumber.
type Token struct {
	Type  TokenType
	Value int64
}

var (
	Plus   = Token{Type: TokenPlus}
	Minus  = Token{Type: TokenMinus}
	Star   = Token{Type: TokenStar}
	Slash  = Token{Type: TokenSlash}
	LParen = Token{Type: TokenLParen}
	RParen = Token{Type: TokenRParen}
)

// Number returns a number token holding v.
func Number(v int64) Token {
	return Token{Type: TokenNumber, Value: v}
}

// String returns the source text of the token.
func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return strconv.FormatInt(t.Value, 10)
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	}
	return t.Type.String()
}
