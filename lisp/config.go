package lisp

import "io"

// Config is a function that configures a new environment.
type Config func(env *LEnv)

// WithStdout returns a Config that makes an environment write print output
// to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) {
		env.Stdout = w
	}
}
