package lisp

import (
	"errors"
	"io"
	"os"
)

// ErrNoFrame is returned when defining a binding in an environment with no
// live frames.  A default environment always has its root frame so language
// evaluation cannot reach this condition.
var ErrNoFrame = errors.New("environment has no frame")

// Binding is a named entry in a scope frame.  A binding with no formals is a
// value binding and its body is evaluated anew on every reference.  A binding
// with formals is a function binding and its body is evaluated per call with
// the formals bound to evaluated arguments.
type Binding struct {
	Formals []string
	Body    *LVal
}

// IsFunction returns true if b binds a function rather than a value.
func (b *Binding) IsFunction() bool {
	return len(b.Formals) > 0
}

type frame map[string]*Binding

// LEnv is a lisp environment, a stack of scope frames.  Lookup scans from the
// most recently pushed frame outward.  An LEnv is owned by a single
// evaluation run and is not safe for concurrent use.
type LEnv struct {
	frames []frame

	// Stdout receives output written by the print form.
	Stdout io.Writer
}

// NewEnv initializes and returns a new LEnv with a root frame seeded with the
// canonical True and False bindings.
func NewEnv(cfg ...Config) *LEnv {
	env := &LEnv{Stdout: os.Stdout}
	env.PushFrame()
	env.frames[0][FalseSymbol] = &Binding{Body: Nil()}
	env.frames[0][TrueSymbol] = &Binding{Body: List(Number(1))}
	for _, fn := range cfg {
		fn(env)
	}
	return env
}

// PushFrame pushes an empty frame onto the stack.  Each function call pushes
// exactly one frame before evaluating its body and pops it after.
func (env *LEnv) PushFrame() {
	env.frames = append(env.frames, make(frame))
}

// PopFrame removes the innermost frame, dropping any bindings it holds.
func (env *LEnv) PopFrame() {
	if len(env.frames) == 0 {
		return
	}
	env.frames[len(env.frames)-1] = nil
	env.frames = env.frames[:len(env.frames)-1]
}

// Depth returns the number of live frames.
func (env *LEnv) Depth() int {
	return len(env.frames)
}

// Lookup searches the frames innermost-first for name and returns the first
// binding found.  An inner binding shadows, but does not destroy, an outer
// binding of the same name.
func (env *LEnv) Lookup(name string) (*Binding, bool) {
	for i := len(env.frames) - 1; i >= 0; i-- {
		if b, ok := env.frames[i][name]; ok {
			return b, true
		}
	}
	return nil, false
}

// Contains returns true if name is bound in any frame.
func (env *LEnv) Contains(name string) bool {
	_, ok := env.Lookup(name)
	return ok
}

// DefineValue binds name to v in the innermost frame, overwriting any
// earlier binding of name in that frame.
func (env *LEnv) DefineValue(name string, v *LVal) error {
	return env.define(name, &Binding{Body: v})
}

// DefineFn binds name to a function with the given formals and unevaluated
// body in the innermost frame.
func (env *LEnv) DefineFn(name string, formals []string, body *LVal) error {
	return env.define(name, &Binding{Formals: formals, Body: body})
}

func (env *LEnv) define(name string, b *Binding) error {
	if len(env.frames) == 0 {
		return ErrNoFrame
	}
	env.frames[len(env.frames)-1][name] = b
	return nil
}
