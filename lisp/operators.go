package lisp

// LBuiltin is a function implementing a special form.  Arguments arrive raw
// and unevaluated; each form decides what to evaluate.
type LBuiltin func(env *LEnv, args []*LVal) *LVal

type langOp struct {
	name string
	fun  LBuiltin
}

// langSpecialOps lists every special form.  The names double as the
// reserved-word set checked by let and fn.
var langSpecialOps = []*langOp{
	{"+", opAdd},
	{"-", opSub},
	{"*", opMul},
	{"/", opDiv},
	{"or", opOr},
	{"and", opAnd},
	{"not", opNot},
	{"=", opEq},
	{"!=", opNEq},
	{"if", opIf},
	{"let", opLet},
	{"fn", opFn},
	{"print", opPrint},
}

var specialOpIndex map[string]*langOp

func init() {
	specialOpIndex = make(map[string]*langOp, len(langSpecialOps))
	for _, op := range langSpecialOps {
		specialOpIndex[op.name] = op
	}
}

func lookupSpecialOp(name string) (*langOp, bool) {
	op, ok := specialOpIndex[name]
	return op, ok
}

// Reserved returns true if name is a special-form keyword and therefore
// cannot be bound with let or fn.
func Reserved(name string) bool {
	_, ok := specialOpIndex[name]
	return ok
}

func berrf(name string, format string, v ...interface{}) *LVal {
	return Errorf(name+": "+format, v...)
}

func opAdd(env *LEnv, args []*LVal) *LVal {
	return evalArith(env, "+", args, func(a, b float64) float64 { return a + b })
}

func opSub(env *LEnv, args []*LVal) *LVal {
	return evalArith(env, "-", args, func(a, b float64) float64 { return a - b })
}

func opMul(env *LEnv, args []*LVal) *LVal {
	return evalArith(env, "*", args, func(a, b float64) float64 { return a * b })
}

// opDiv folds division over its operands.  Division by zero follows IEEE-754
// semantics and produces an infinity or NaN rather than an error.
func opDiv(env *LEnv, args []*LVal) *LVal {
	return evalArith(env, "/", args, func(a, b float64) float64 { return a / b })
}

// evalArith evaluates every operand, requires each to be a number, and left
// folds starting from the first operand's value.  A single operand is
// returned unchanged; there is no unary negation or reciprocal.
func evalArith(env *LEnv, name string, args []*LVal, fold func(a, b float64) float64) *LVal {
	if len(args) == 0 {
		return berrf(name, "at least one operand expected")
	}
	xs := make([]float64, len(args))
	for i, a := range args {
		r := env.Eval(a)
		if r.Type == LError {
			return r
		}
		if r.Type != LNumber {
			return berrf(name, "operand is not a number: %s", r.Type)
		}
		xs[i] = r.Num
	}
	result := xs[0]
	for _, x := range xs[1:] {
		result = fold(result, x)
	}
	return Number(result)
}

func opOr(env *LEnv, args []*LVal) *LVal {
	return evalBool(env, "or", args)
}

func opAnd(env *LEnv, args []*LVal) *LVal {
	return evalBool(env, "and", args)
}

func opNot(env *LEnv, args []*LVal) *LVal {
	if len(args) != 1 {
		return berrf("not", "one operand expected (got %d)", len(args))
	}
	return evalBool(env, "not", args)
}

// evalBool evaluates every operand, computes its truthiness, and left folds
// with or/and semantics.  The result is always one of the canonical symbols
// True or False.
func evalBool(env *LEnv, name string, args []*LVal) *LVal {
	if len(args) == 0 {
		return berrf(name, "at least one operand expected")
	}
	xs := make([]bool, len(args))
	for i, a := range args {
		r := env.Eval(a)
		if r.Type == LError {
			return r
		}
		x, ok := truthy(r)
		if !ok {
			return berrf(name, "operand is not a boolean: %s", r.Type)
		}
		xs[i] = x
	}
	result := xs[0]
	for _, x := range xs[1:] {
		switch name {
		case "or":
			result = result || x
		case "and":
			result = result && x
		}
	}
	if name == "not" {
		return Bool(!result)
	}
	return Bool(result)
}

// truthy maps an evaluated value to a boolean.  A symbol is falsy iff it is
// exactly False; any other symbol, bound or not, is truthy.  A list is falsy
// iff empty.  Numbers and no-value results are not booleans and ok is false.
func truthy(v *LVal) (x bool, ok bool) {
	switch v.Type {
	case LSymbol:
		return v.Str != FalseSymbol, true
	case LList:
		return len(v.Cells) > 0, true
	default:
		return false, false
	}
}

func opEq(env *LEnv, args []*LVal) *LVal {
	return evalEquality(env, "=", args)
}

func opNEq(env *LEnv, args []*LVal) *LVal {
	return evalEquality(env, "!=", args)
}

// evalEquality evaluates every operand and compares each against the first
// structurally.  = holds iff all operands equal the first; != holds iff any
// operand differs from the first, which for more than two operands is not
// pairwise distinctness.  A no-value operand is compared as its own
// unevaluated expression.
func evalEquality(env *LEnv, name string, args []*LVal) *LVal {
	if len(args) == 0 {
		return berrf(name, "at least one operand expected")
	}
	xs := make([]*LVal, len(args))
	for i, a := range args {
		r := env.Eval(a)
		switch r.Type {
		case LError:
			return r
		case LNone:
			xs[i] = a
		default:
			xs[i] = r
		}
	}
	first := xs[0]
	switch name {
	case "=":
		for _, x := range xs[1:] {
			if !x.Equal(first) {
				return Bool(false)
			}
		}
		return Bool(true)
	default: // !=
		for _, x := range xs[1:] {
			if !x.Equal(first) {
				return Bool(true)
			}
		}
		return Bool(false)
	}
}

// (if predicate then else)
func opIf(env *LEnv, args []*LVal) *LVal {
	if len(args) != 3 {
		return berrf("if", "three arguments expected (got %d)", len(args))
	}
	r := env.Eval(args[0])
	if r.Type == LError {
		return r
	}
	x, ok := truthy(r)
	if !ok {
		return berrf("if", "predicate is not a boolean: %s", r.Type)
	}
	if x {
		return env.Eval(args[1])
	}
	return env.Eval(args[2])
}

// (let name expr)
func opLet(env *LEnv, args []*LVal) *LVal {
	if len(args) != 2 {
		return berrf("let", "two arguments expected (got %d)", len(args))
	}
	name := args[0]
	if name.Type != LSymbol {
		return berrf("let", "first argument is not a symbol: %s", name.Type)
	}
	if Reserved(name.Str) {
		return berrf("let", "%s is a reserved word", name.Str)
	}
	r := env.Eval(args[1])
	switch r.Type {
	case LError:
		return r
	case LNone:
		return berrf("let", "cannot assign no-value to %s", name.Str)
	}
	if err := env.DefineValue(name.Str, r); err != nil {
		return Error(err)
	}
	return None()
}

// (fn name (params...) body)
func opFn(env *LEnv, args []*LVal) *LVal {
	if len(args) != 3 {
		return berrf("fn", "three arguments expected (got %d)", len(args))
	}
	name := args[0]
	if name.Type != LSymbol {
		return berrf("fn", "first argument is not a symbol: %s", name.Type)
	}
	if Reserved(name.Str) {
		return berrf("fn", "%s is a reserved word", name.Str)
	}
	params := args[1]
	if params.Type != LList {
		return berrf("fn", "second argument is not a list: %s", params.Type)
	}
	formals := make([]string, len(params.Cells))
	for i, c := range params.Cells {
		if c.Type != LSymbol {
			return berrf("fn", "parameter is not a symbol: %s", c.Type)
		}
		formals[i] = c.Str
	}
	if err := env.DefineFn(name.Str, formals, args[2]); err != nil {
		return Error(err)
	}
	return None()
}
