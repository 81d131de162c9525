// SPDX-License-Identifier: MIT
// Package exprlang: lexical analysis.

package exprlang

import "fmt"

// TokenType classifies a lexical token.
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers and literals
	TokenIdent  // a, weights_2
	TokenNumber // 3, 0.25, 1e-3

	// Operators and delimiters
	TokenPlus       // +
	TokenMinus      // -
	TokenStar       // *
	TokenSlash      // /
	TokenLeftParen  // (
	TokenRightParen // )
)

var tokenNames = [...]string{
	TokenEOF:        "EOF",
	TokenIllegal:    "ILLEGAL",
	TokenIdent:      "IDENT",
	TokenNumber:     "NUMBER",
	TokenPlus:       "'+'",
	TokenMinus:      "'-'",
	TokenStar:       "'*'",
	TokenSlash:      "'/'",
	TokenLeftParen:  "'('",
	TokenRightParen: "')'",
}

// String returns a readable name of the token type.
func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}

	return "UNKNOWN"
}

// Token is a lexical token with its byte offset in the input.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIdent, TokenNumber, TokenIllegal:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	default:
		return t.Type.String()
	}
}

// Lexer splits an expression into tokens. It works on bytes; identifiers are ASCII.
type Lexer struct {
	input   string
	pos     int  // offset of ch
	readPos int  // offset after ch
	ch      byte // current byte; 0 at end of input, but NUL may also occur in-band
}

// NewLexer creates a lexer positioned at the first byte of input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()

	return l
}

// NextToken returns the next token. After the end of input it keeps returning TokenEOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	pos := l.pos
	if l.atEnd() {
		return Token{Type: TokenEOF, Pos: pos}
	}

	var tok Token
	switch l.ch {
	case '+':
		tok = Token{Type: TokenPlus, Value: "+", Pos: pos}
	case '-':
		tok = Token{Type: TokenMinus, Value: "-", Pos: pos}
	case '*':
		tok = Token{Type: TokenStar, Value: "*", Pos: pos}
	case '/':
		tok = Token{Type: TokenSlash, Value: "/", Pos: pos}
	case '(':
		tok = Token{Type: TokenLeftParen, Value: "(", Pos: pos}
	case ')':
		tok = Token{Type: TokenRightParen, Value: ")", Pos: pos}
	default:
		switch {
		case isLetter(l.ch):
			return Token{Type: TokenIdent, Value: l.readIdentifier(), Pos: pos}
		case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
			return Token{Type: TokenNumber, Value: l.readNumber(), Pos: pos}
		default:
			tok = Token{Type: TokenIllegal, Value: string(l.ch), Pos: pos}
		}
	}
	l.readChar()

	return tok
}

// Tokenize returns every token up to and including EOF, or a *SyntaxError at
// the first illegal byte.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		switch tok.Type {
		case TokenEOF:
			return tokens, nil
		case TokenIllegal:
			return tokens, syntaxErrorf(tok.Pos, "illegal character %q", tok.Value)
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// atEnd reports whether every byte of input has been consumed.
func (l *Lexer) atEnd() bool { return l.pos >= len(l.input) }

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}

	return l.input[l.readPos]
}

// readIdentifier reads letters, digits and underscores.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}

	return l.input[start:l.pos]
}

// readNumber reads digits, an optional fraction and an optional exponent.
// Malformed exponents ("1e", "2e+") are left for strconv to reject.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.pos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
