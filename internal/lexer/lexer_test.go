package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexSingleTokens(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind Kind
		text string
	}{
		{"positive number", "42", Number, "42"},
		{"negative number", "-17", Number, "-17"},
		{"plus sign alone", "+", Symbol, "+"},
		{"minus sign alone", "-", Symbol, "-"},
		{"plus prefixed number", "+1", Number, "+1"},
		{"minus prefixed number", "-2", Number, "-2"},
		{"true literal", "#t", Boolean, "#t"},
		{"false literal", "#f", Boolean, "#f"},
		{"hash symbol", "#unbound", Symbol, "#unbound"},
		{"hash alone", "#", Symbol, "#"},
		{"ordinary symbol", "foo", Symbol, "foo"},
		{"predicate symbol", "null?", Symbol, "null?"},
		{"bang symbol", "set!", Symbol, "set!"},
		{"open bracket", "(", Bracket, "("},
		{"close bracket", ")", Bracket, ")"},
		{"quote", "'", Quote, "'"},
		{"dot", ".", Dot, "."},
		{"comparator symbol", "<=", Symbol, "<="},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Lex(tc.src)
			require.NoError(t, err)
			require.Len(t, toks, 1)
			assert.Equal(t, tc.kind, toks[0].Kind)
			assert.Equal(t, tc.text, toks[0].Text)
		})
	}
}

func TestLexSequence(t *testing.T) {
	toks, err := Lex("(+ 1 -2 'x . #t)")
	require.NoError(t, err)

	want := []Token{
		{Bracket, "("},
		{Symbol, "+"},
		{Number, "1"},
		{Number, "-2"},
		{Quote, "'"},
		{Symbol, "x"},
		{Dot, "."},
		{Boolean, "#t"},
		{Bracket, ")"},
	}
	assert.Equal(t, want, toks)
}

func TestLexWhitespaceIsSkipped(t *testing.T) {
	toks, err := Lex("  \t(  1\n2 )  ")
	require.NoError(t, err)
	assert.Len(t, toks, 4)
}

func TestLexEmptyInput(t *testing.T) {
	toks, err := Lex("   ")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestLexRejectsUnrecognizedCharacter(t *testing.T) {
	_, err := Lex("@")
	require.Error(t, err)
}

func TestLexSignDoesNotAbsorbFollowingLetters(t *testing.T) {
	// "+" can't grow past a sign into a symbol: the race is won by Number
	// once a digit follows, and otherwise the sign ends as a one-character
	// Symbol, whatever trails it.
	toks, err := Lex("+foo")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, Symbol, toks[0].Kind)
	assert.Equal(t, "+", toks[0].Text)
	assert.Equal(t, Symbol, toks[1].Kind)
	assert.Equal(t, "foo", toks[1].Text)
}
