package lisp

import (
	"bytes"
	"fmt"
	"strings"
)

// (print args...)
//
// Renders each operand without evaluating it, joins the renderings with a
// single space, and writes the result as one line to the environment's
// output writer.
func opPrint(env *LEnv, args []*LVal) *LVal {
	if len(args) == 0 {
		return berrf("print", "at least one operand expected")
	}
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = env.Render(a)
	}
	fmt.Fprintln(env.Stdout, strings.Join(out, " "))
	return None()
}

// Render produces the print rendering of v.  A symbol bound to a value
// renders as the rendering of its bound value, a symbol bound to a function
// renders as an opaque placeholder naming the symbol, and an unbound symbol
// renders as its own text.  Lists render parenthesized, space separated, and
// recursively.  No arithmetic or boolean evaluation happens here.
func (env *LEnv) Render(v *LVal) string {
	switch v.Type {
	case LSymbol:
		b, ok := env.Lookup(v.Str)
		if !ok {
			return v.Str
		}
		if b.IsFunction() {
			return fmt.Sprintf("<func-object: %s>", v.Str)
		}
		return env.Render(b.Body)
	case LNumber:
		return formatNumber(v.Num)
	case LList:
		var buf bytes.Buffer
		buf.WriteString("(")
		for i, c := range v.Cells {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(env.Render(c))
		}
		buf.WriteString(")")
		return buf.String()
	default:
		return v.String()
	}
}
