package lisp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalSelfEvaluating(t *testing.T) {
	env := NewEnv()
	assert.True(t, env.Eval(Number(3)).Equal(Number(3)))
	assert.True(t, env.Eval(Nil()).Equal(Nil()))
	// an unbound symbol evaluates to itself
	assert.True(t, env.Eval(Symbol("zzz")).Equal(Symbol("zzz")))
}

func TestEvalValueBinding(t *testing.T) {
	env := NewEnv()
	require.NoError(t, env.DefineValue("x", Number(5)))
	assert.True(t, env.Eval(Symbol("x")).Equal(Number(5)))

	// the stored body is re-evaluated against the current frames on every
	// reference
	require.NoError(t, env.DefineValue("y", Symbol("x")))
	assert.True(t, env.Eval(Symbol("y")).Equal(Number(5)))
	require.NoError(t, env.DefineValue("x", Number(6)))
	assert.True(t, env.Eval(Symbol("y")).Equal(Number(6)))
}

func TestEvalImplicitList(t *testing.T) {
	env := NewEnv()
	v := env.Eval(List(Number(1), List(Symbol("+"), Number(1), Number(1)), Number(3)))
	assert.True(t, v.Equal(List(Number(1), Number(2), Number(3))))
}

func TestEvalCall(t *testing.T) {
	env := NewEnv()
	body := List(Symbol("+"), Symbol("a"), Symbol("b"))
	require.NoError(t, env.DefineFn("add", []string{"a", "b"}, body))

	r := env.Eval(List(Symbol("add"), Number(1), Number(2)))
	assert.True(t, r.Equal(Number(3)))
	assert.Equal(t, 1, env.Depth())
}

func TestEvalArityMismatch(t *testing.T) {
	env := NewEnv()
	require.NoError(t, env.DefineFn("add", []string{"a", "b"}, Symbol("a")))

	r := env.Eval(List(Symbol("add"), Number(1)))
	require.Equal(t, LError, r.Type)
	assert.Equal(t, "add: expects 2 arguments (got 1)", r.String())
	// no parameter was bound
	assert.False(t, env.Contains("a"))
	assert.Equal(t, 1, env.Depth())
}

func TestEvalFramePoppedOnError(t *testing.T) {
	env := NewEnv()
	// body fails with a type error mid-call
	body := List(Symbol("+"), Symbol("a"), Nil())
	require.NoError(t, env.DefineFn("bad", []string{"a"}, body))

	r := env.Eval(List(Symbol("bad"), Number(1)))
	require.Equal(t, LError, r.Type)
	assert.Equal(t, 1, env.Depth())
	assert.False(t, env.Contains("a"))
}

func TestEvalNoValueArgument(t *testing.T) {
	var out bytes.Buffer
	env := NewEnv(WithStdout(&out))
	require.NoError(t, env.DefineFn("id", []string{"v"}, Symbol("v")))

	r := env.Eval(List(Symbol("id"), List(Symbol("print"), Number(1))))
	require.Equal(t, LError, r.Type)
	assert.Equal(t, "id: cannot pass no-value as an argument", r.String())
	// the argument was evaluated before the failure
	assert.Equal(t, "1\n", out.String())
}

func TestEvalStackDepthDuringCall(t *testing.T) {
	env := NewEnv()
	require.NoError(t, env.DefineFn("probe", []string{"x"}, Symbol("x")))
	assert.Equal(t, 1, env.Depth())
	r := env.Eval(List(Symbol("probe"), Number(1)))
	assert.True(t, r.Equal(Number(1)))
	assert.Equal(t, 1, env.Depth())
}
