package lex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokens(input string) []Token {
	l := New(input)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == END || tok.Kind == INVALID {
			return toks
		}
	}
}

func TestNextToken(t *testing.T) {
	got := tokens(`Insert(3.55, Value1)`)
	want := []Token{
		{Kind: INSERT, Value: "Insert"},
		{Kind: OPENROUNDED, Value: "("},
		{Kind: IDENT, Value: "3.55"},
		{Kind: COMMA, Value: ","},
		{Kind: IDENT, Value: "Value1"},
		{Kind: CLOSEDROUNDED, Value: ")"},
		{Kind: END, Value: ""},
	}
	require.Equal(t, want, got)
}

func TestNextTokenQuotedStrings(t *testing.T) {
	got := tokens(`search("a key", "with \"quotes\"")`)
	require.Equal(t, SEARCH, got[0].Kind)
	require.Equal(t, Token{Kind: STRING, Value: "a key"}, got[2])
	require.Equal(t, Token{Kind: STRING, Value: `with "quotes"`}, got[4])
	require.Equal(t, END, got[len(got)-1].Kind)
}

func TestNextTokenUnterminatedString(t *testing.T) {
	got := tokens(`Search("open`)
	require.Equal(t, INVALID, got[len(got)-1].Kind)
}

func TestKeyIdentKind(t *testing.T) {
	tests := []struct {
		word string
		kind TokenKind
	}{
		{"initialize", INITIALIZE},
		{"INSERT", INSERT},
		{"Search", SEARCH},
		{"use", USE},
		{"Drop", DROP},
		{"print", PRINT},
		{"stats", STATS},
		{"check", CHECK},
		{"value", IDENT},
		{"3.55", IDENT},
	}
	for _, tt := range tests {
		require.Equal(t, tt.kind, KeyIdentKind(tt.word), tt.word)
	}
	require.True(t, SEARCH.IsCommand())
	require.False(t, IDENT.IsCommand())
}
