// Package risptest provides a table-driven harness for language-level tests.
package risptest

import (
	"bytes"
	"testing"

	"github.com/psmietanaa/Risp/lisp"
	"github.com/psmietanaa/Risp/parser"
)

// TestSequence is a sequence of risp expressions which are evaluated
// sequentially against a single lisp.LEnv.
type TestSequence []struct {
	Expr   string // a risp expression
	Result string // the evaluated result rendering, "" for no-value
	Output string // output written by print during evaluation
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated lisp.LEnv.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var out bytes.Buffer
		env := lisp.NewEnv(lisp.WithStdout(&out))
		for j, expr := range test.TestSequence {
			out.Reset()
			v, err := parser.Parse([]byte(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			result := env.Eval(v).String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)",
					i, test.Name, j, expr.Result, result)
			}
			if out.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)",
					i, test.Name, j, expr.Output, out.String())
			}
		}
	}
}
