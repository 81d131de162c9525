// SPDX-License-Identifier: MIT
// Package exprlang: recursive-descent parser.

package exprlang

import (
	"strconv"

	"github.com/katalvlaran/lvmat/matrix"
)

// Parser turns a token stream into an AST.
// A Parser is single-use; Parse creates one per call.
type Parser struct {
	tokens []Token
	pos    int
	cur    Token
}

// Parse parses src into an AST.
// MAIN DESCRIPTION:
//   - One expression, nothing after it; blank input is an error.
//
// Implementation:
//   - Stage 1: tokenize the whole input (illegal bytes fail here).
//   - Stage 2: expr → term → unary → primary by precedence climbing.
//   - Stage 3: require EOF.
//
// Errors:
//   - *SyntaxError (errors.Is ErrSyntax) with the byte offset of the offending token.
func Parse(src string) (Node, error) {
	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	p.cur = p.tokens[0]

	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenEOF {
		return nil, syntaxErrorf(p.cur.Pos, "unexpected %s after expression", p.cur)
	}

	return n, nil
}

// MustParse is Parse for expressions known to be valid; it panics on error.
func MustParse(src string) Node {
	n, err := Parse(src)
	if err != nil {
		panic(err)
	}

	return n
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.cur = p.tokens[p.pos]
}

// parseExpr: term (('+' | '-') term)*
func (p *Parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenPlus || p.cur.Type == TokenMinus {
		op := matrix.OpAdd
		if p.cur.Type == TokenMinus {
			op = matrix.OpSub
		}
		at := p.cur.Pos
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, L: left, R: right, At: at}
	}

	return left, nil
}

// parseTerm: unary (('*' | '/') unary)*
func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenStar || p.cur.Type == TokenSlash {
		op := matrix.OpMul
		if p.cur.Type == TokenSlash {
			op = matrix.OpDiv
		}
		at := p.cur.Pos
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, L: left, R: right, At: at}
	}

	return left, nil
}

// parseUnary: '-' unary | primary
func (p *Parser) parseUnary() (Node, error) {
	if p.cur.Type == TokenMinus {
		at := p.cur.Pos
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &Unary{X: x, At: at}, nil
	}

	return p.parsePrimary()
}

// parsePrimary: NUMBER | IDENT | '(' expr ')'
func (p *Parser) parsePrimary() (Node, error) {
	tok := p.cur
	switch tok.Type {
	case TokenNumber:
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, syntaxErrorf(tok.Pos, "malformed number %q", tok.Value)
		}
		p.advance()

		return &Number{Value: v, Text: tok.Value, At: tok.Pos}, nil
	case TokenIdent:
		p.advance()

		return &Ident{Name: tok.Value, At: tok.Pos}, nil
	case TokenLeftParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != TokenRightParen {
			return nil, syntaxErrorf(p.cur.Pos, "expected ')' to close '(' at offset %d, found %s", tok.Pos, p.cur)
		}
		p.advance()

		return inner, nil
	case TokenEOF:
		return nil, syntaxErrorf(tok.Pos, "unexpected end of expression")
	default:
		return nil, syntaxErrorf(tok.Pos, "unexpected %s", tok)
	}
}
