package lisp

import (
	"bytes"
	"fmt"
	"strconv"
)

// LType is the type of an LVal.
type LType uint

// Possible LType values.  LNumber, LSymbol, and LList are expression types
// produced by the parser.  LNone and LError only occur as evaluation results.
const (
	LInvalid LType = iota
	LNumber
	LSymbol
	LList
	LNone
	LError
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LNumber:  "number",
	LSymbol:  "symbol",
	LList:    "list",
	LNone:    "no-value",
	LError:   "error",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LVal is a lisp value.  Expression LVals are immutable after construction
// and may be shared by multiple owners (a function body is referenced by its
// binding and by every pending call evaluating it).
type LVal struct {
	Type  LType
	Num   float64
	Str   string
	Err   error
	Cells []*LVal
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// List returns an LVal representing a list containing the given cells.
func List(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Nil returns an LVal representing the empty list, the canonical false value.
func Nil() *LVal {
	return List()
}

// Bool returns the canonical symbol for b, True or False.
func Bool(b bool) *LVal {
	if b {
		return Symbol(TrueSymbol)
	}
	return Symbol(FalseSymbol)
}

// None returns an LVal representing the absence of a value, the result of
// statement forms like let, fn, and print.
func None() *LVal {
	return &LVal{
		Type: LNone,
	}
}

// Error returns an LVal representing the error corresponding to err.
func Error(err error) *LVal {
	return &LVal{
		Type: LError,
		Err:  err,
	}
}

// Errorf returns an error LVal with a formatted message.
func Errorf(format string, v ...interface{}) *LVal {
	return &LVal{
		Type: LError,
		Err:  fmt.Errorf(format, v...),
	}
}

// IsNil returns true if v is the empty list.
func (v *LVal) IsNil() bool {
	return v.Type == LList && len(v.Cells) == 0
}

// Equal returns true if v and u are structurally equal.  Numbers compare
// under IEEE-754 equality, so NaN is never equal to anything and negative
// zero equals zero.  Values of different types are never equal.
func (v *LVal) Equal(u *LVal) bool {
	if v.Type != u.Type {
		return false
	}
	switch v.Type {
	case LNumber:
		return v.Num == u.Num
	case LSymbol:
		return v.Str == u.Str
	case LList:
		if len(v.Cells) != len(u.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(u.Cells[i]) {
				return false
			}
		}
		return true
	case LNone:
		return true
	default:
		return false
	}
}

func (v *LVal) String() string {
	switch v.Type {
	case LNumber:
		return formatNumber(v.Num)
	case LSymbol:
		return v.Str
	case LList:
		return exprString(v, "(", ")")
	case LNone:
		return ""
	case LError:
		return v.Err.Error()
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// formatNumber renders x in plain decimal with the shortest digit string
// that round-trips.  Large magnitudes never switch to exponent notation.
func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
