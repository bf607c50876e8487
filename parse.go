package gocalc

import (
	"bytes"
	"fmt"
	"strconv"
)

// Op is a binary arithmetic operator.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Precedence returns the binding strength of op. Higher binds tighter.
func (op Op) Precedence() int {
	if op == OpMultiply || op == OpDivide {
		return 2
	}
	return 1
}

var tokenOps = map[TokenType]Op{
	TokenPlus:  OpAdd,
	TokenMinus: OpSubtract,
	TokenStar:  OpMultiply,
	TokenSlash: OpDivide,
}

type NodeType int

const (
	NodeLeaf NodeType = iota
	NodeBinary
)

// Node is an expression tree node. A NodeLeaf holds Value; a NodeBinary
// owns Left and Right and applies Op to them.
type Node struct {
	Type  NodeType
	Value int64
	Op    Op
	Left  *Node
	Right *Node
}

func Leaf(v int64) *Node {
	return &Node{Type: NodeLeaf, Value: v}
}

func Binary(lhs *Node, op Op, rhs *Node) *Node {
	return &Node{Type: NodeBinary, Op: op, Left: lhs, Right: rhs}
}

// String renders n as fully parenthesized infix, e.g. "((1+2)-3)". Feeding
// the result back through Parse yields the same tree.
func (n *Node) String() string {
	var buf bytes.Buffer
	n.write(&buf)
	return buf.String()
}

func (n *Node) write(buf *bytes.Buffer) {
	if n == nil {
		buf.WriteString("nil")
		return
	}
	switch n.Type {
	case NodeLeaf:
		buf.WriteString(strconv.FormatInt(n.Value, 10))
	case NodeBinary:
		buf.WriteByte('(')
		n.Left.write(buf)
		buf.WriteString(n.Op.String())
		n.Right.write(buf)
		buf.WriteByte(')')
	}
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	if n.Type == NodeLeaf {
		return 1
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

type parser struct {
	tokens []Token
	pos    int
}

// Build turns a token sequence into an expression tree, honoring operator
// precedence, left associativity and parenthesized grouping. Tokens are
// expected to have passed Validate, but parenthesis balance is checked here.
func Build(tokens []Token) (*Node, error) {
	if len(tokens) == 0 {
		return nil, &Error{Kind: KindEmptyStatement}
	}
	p := &parser{tokens: tokens}
	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		if tok.Type == TokenRParen {
			return nil, &Error{Kind: KindUnbalancedParen, Token: tok, Index: p.pos}
		}
		return nil, p.unexpected()
	}
	return node, nil
}

// Parse tokenizes, validates and builds input.
func Parse(input string) (*Node, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	if err := Validate(tokens); err != nil {
		return nil, err
	}
	return Build(tokens)
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() Token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

// peekOp returns the operator at the cursor if it has the given precedence.
func (p *parser) peekOp(prec int) (Op, bool) {
	tok, ok := p.peek()
	if !ok {
		return 0, false
	}
	op, ok := tokenOps[tok.Type]
	if !ok || op.Precedence() != prec {
		return 0, false
	}
	return op, true
}

// unexpected reports the token at the cursor as out of place.
func (p *parser) unexpected() error {
	prev := GroupOpen
	if p.pos > 0 {
		prev = p.tokens[p.pos-1].Category()
	}
	return &Error{Kind: KindInvalidTokenSequence, Prev: prev, Token: p.tokens[p.pos], Index: p.pos}
}

// parseExpression: term (("+" | "-") term)*
func (p *parser) parseExpression() (*Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp(1)
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Binary(left, op, right)
	}
}

// parseTerm: factor (("*" | "/") factor)*
func (p *parser) parseTerm() (*Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp(2)
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = Binary(left, op, right)
	}
}

// parseFactor: "(" expression ")" | number
func (p *parser) parseFactor() (*Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &Error{Kind: KindUnexpectedEnd, Index: p.pos}
	}
	switch tok.Type {
	case TokenNumber:
		p.advance()
		return Leaf(tok.Value), nil
	case TokenLParen:
		open := p.pos
		p.advance()
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok {
			return nil, &Error{Kind: KindUnbalancedParen, Token: tok, Index: open}
		}
		if closing.Type != TokenRParen {
			return nil, p.unexpected()
		}
		p.advance()
		return node, nil
	}
	return nil, p.unexpected()
}
