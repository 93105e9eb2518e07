package lex

import (
	"strings"
)

type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
}

func New(input string) *Lexer {
	l := &Lexer{
		input:   input,
		pos:     0,
		readPos: 0,
		ch:      0,
	}
	l.readChar()
	return l
}

func (l *Lexer) NextToken() Token {
	l.skipWhiteSpaces()

	switch l.ch {
	case ',':
		tok := Token{Kind: COMMA, Value: string(l.ch)}
		l.readChar()
		return tok
	case '(':
		tok := Token{Kind: OPENROUNDED, Value: string(l.ch)}
		l.readChar()
		return tok
	case ')':
		tok := Token{Kind: CLOSEDROUNDED, Value: string(l.ch)}
		l.readChar()
		return tok
	case '"':
		str, ok := l.readString()
		if !ok {
			return Token{Kind: INVALID, Value: str}
		}
		return Token{Kind: STRING, Value: str}
	case 0:
		return Token{Kind: END, Value: ""}
	default:
		str := l.readWord() // str could be a command or a bare key/value
		return Token{Kind: KeyIdentKind(str), Value: str}
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

func (l *Lexer) skipWhiteSpaces() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// isWordChar accepts everything that is not whitespace or punctuation used
// by the command syntax, so keys like 3.55 or user-42 need no quoting.
func isWordChar(ch byte) bool {
	switch ch {
	case 0, ' ', '\t', '\n', '\r', ',', '(', ')', '"':
		return false
	}
	return true
}

func (l *Lexer) readWord() string {
	start := l.pos
	for isWordChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readString reads a double quoted string. Backslash escapes the next byte.
// The second result is false when the closing quote is missing.
func (l *Lexer) readString() (string, bool) {
	l.readChar() // read start " of string
	var sb strings.Builder
	for l.ch != '"' {
		if l.ch == 0 {
			return sb.String(), false
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return sb.String(), false
			}
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
	l.readChar() // read end " of string
	return sb.String(), true
}

func KeyIdentKind(str string) TokenKind {
	switch strings.ToUpper(str) {
	case "INITIALIZE":
		return INITIALIZE
	case "INSERT":
		return INSERT
	case "SEARCH":
		return SEARCH
	case "USE":
		return USE
	case "DROP":
		return DROP
	case "PRINT":
		return PRINT
	case "STATS":
		return STATS
	case "CHECK":
		return CHECK
	default:
		return IDENT
	}
}
