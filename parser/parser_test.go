package parser

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/psmietanaa/Risp/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAtoms(t *testing.T) {
	for _, test := range []struct {
		text string
		want *lisp.LVal
	}{
		{"3", lisp.Number(3)},
		{"-3", lisp.Number(-3)},
		{"0.5", lisp.Number(0.5)},
		{"1e3", lisp.Number(1000)},
		{"abc", lisp.Symbol("abc")},
		// operators are symbols, not numbers
		{"+", lisp.Symbol("+")},
		{"-", lisp.Symbol("-")},
		{"!=", lisp.Symbol("!=")},
		// an atom that fails float parsing is a symbol
		{"1abc", lisp.Symbol("1abc")},
		{"my-func", lisp.Symbol("my-func")},
	} {
		v, err := Parse([]byte(test.text))
		require.NoError(t, err, test.text)
		assert.True(t, v.Equal(test.want), test.text)
	}
}

func TestParseLists(t *testing.T) {
	v, err := Parse([]byte("()"))
	require.NoError(t, err)
	assert.True(t, v.Equal(lisp.Nil()))

	v, err = Parse([]byte("(+ 1 2)"))
	require.NoError(t, err)
	assert.True(t, v.Equal(lisp.List(lisp.Symbol("+"), lisp.Number(1), lisp.Number(2))))

	v, err = Parse([]byte("(fn f (n) (* n n))"))
	require.NoError(t, err)
	want := lisp.List(
		lisp.Symbol("fn"),
		lisp.Symbol("f"),
		lisp.List(lisp.Symbol("n")),
		lisp.List(lisp.Symbol("*"), lisp.Symbol("n"), lisp.Symbol("n")),
	)
	assert.True(t, v.Equal(want))
}

func TestParseWhitespace(t *testing.T) {
	v, err := Parse([]byte("  (\n+ 1\t2 )  "))
	require.NoError(t, err)
	assert.True(t, v.Equal(lisp.List(lisp.Symbol("+"), lisp.Number(1), lisp.Number(2))))
}

func TestParseTrailingTextIgnored(t *testing.T) {
	// a program is one expression, anything after it is ignored
	v, err := Parse([]byte("(+ 1 2) (+ 3 4)"))
	require.NoError(t, err)
	assert.True(t, v.Equal(lisp.List(lisp.Symbol("+"), lisp.Number(1), lisp.Number(2))))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("(+ 1 2"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))

	_, err = Parse([]byte("((1 2)"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))

	_, err = Parse([]byte(")"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected closing delimiter")

	_, err = Parse([]byte(") (1 2)"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected closing delimiter")

	_, err = Parse([]byte(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))

	_, err = Parse([]byte("   \n\t"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"(", "+", "1", "2", ")"}, tokens([]byte("(+ 1 2)")))
	assert.Equal(t, []string{"(", "(", ")", ")"}, tokens([]byte("(())")))
	assert.Empty(t, tokens([]byte(" \n ")))
}
