package lisp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	env := NewEnv()
	require.NoError(t, env.DefineValue("x", Number(5)))
	require.NoError(t, env.DefineValue("xs", List(Number(1), Symbol("x"))))
	require.NoError(t, env.DefineFn("f", []string{"n"}, Symbol("n")))

	assert.Equal(t, "5", env.Render(Symbol("x")))
	// value bindings render recursively without evaluation
	assert.Equal(t, "(1 5)", env.Render(Symbol("xs")))
	assert.Equal(t, "<func-object: f>", env.Render(Symbol("f")))
	assert.Equal(t, "unbound", env.Render(Symbol("unbound")))
	assert.Equal(t, "0.5", env.Render(Number(0.5)))
	assert.Equal(t, "(+ 1 2)", env.Render(List(Symbol("+"), Number(1), Number(2))))
	assert.Equal(t, "()", env.Render(Nil()))
}

func TestPrintWritesOneLine(t *testing.T) {
	var out bytes.Buffer
	env := NewEnv(WithStdout(&out))
	r := env.Eval(List(Symbol("print"), Number(1), Symbol("a"), List(Number(2))))
	require.Equal(t, LNone, r.Type)
	assert.Equal(t, "1 a (2)\n", out.String())
}

func TestPrintRequiresOperand(t *testing.T) {
	var out bytes.Buffer
	env := NewEnv(WithStdout(&out))
	r := env.Eval(List(Symbol("print")))
	require.Equal(t, LError, r.Type)
	assert.Equal(t, "print: at least one operand expected", r.String())
	assert.Empty(t, out.String())
}
