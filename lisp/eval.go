package lisp

// Eval evaluates v in the context of env and returns the resulting LVal.
// Numbers and the empty list are self-evaluating.  A bare symbol is resolved
// through the function-application path with zero arguments.  A non-empty
// list is dispatched on its head: special forms first, then bound symbols as
// calls, and anything else is implicit list construction.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.call(v, nil)
	case LNumber:
		return v
	case LList:
		if len(v.Cells) == 0 {
			return v
		}
		return env.evalList(v)
	default:
		return v
	}
}

func (env *LEnv) evalList(v *LVal) *LVal {
	head := v.Cells[0]
	if head.Type == LSymbol {
		if op, ok := lookupSpecialOp(head.Str); ok {
			return op.fun(env, v.Cells[1:])
		}
		if env.Contains(head.Str) {
			return env.call(head, v.Cells[1:])
		}
	}
	return env.evalCells(v)
}

// evalCells implements implicit list construction.  Every cell, head
// included, is evaluated in order.  Results of no-value statements are
// dropped and the first error aborts construction.  This is how arbitrary
// data lists evaluate to themselves and how a program composes multiple
// top-level forms inside one enclosing list.
func (env *LEnv) evalCells(v *LVal) *LVal {
	cells := make([]*LVal, 0, len(v.Cells))
	for _, c := range v.Cells {
		r := env.Eval(c)
		if r.Type == LError {
			return r
		}
		if r.Type == LNone {
			continue
		}
		cells = append(cells, r)
	}
	return List(cells...)
}

// call resolves sym against env and applies it to args.  An unbound symbol
// evaluates to itself, which is how free names and forwarded arguments behave
// as literal atoms.  A value binding re-evaluates its stored body against the
// current frame stack on every reference, ignoring args.  A function binding
// evaluates args in the caller's frames, then evaluates its body against one
// new frame holding only the parameters.  Free variables in the body resolve
// against whatever frames the caller has live, not the definition site.
func (env *LEnv) call(sym *LVal, args []*LVal) *LVal {
	b, ok := env.Lookup(sym.Str)
	if !ok {
		return sym
	}
	if !b.IsFunction() {
		return env.Eval(b.Body)
	}
	if len(b.Formals) != len(args) {
		return Errorf("%s: expects %d arguments (got %d)", sym.Str, len(b.Formals), len(args))
	}
	vals := make([]*LVal, len(args))
	for i, a := range args {
		r := env.Eval(a)
		switch r.Type {
		case LError:
			return r
		case LNone:
			return Errorf("%s: cannot pass no-value as an argument", sym.Str)
		}
		vals[i] = r
	}
	env.PushFrame()
	defer env.PopFrame()
	for i, name := range b.Formals {
		if err := env.DefineValue(name, vals[i]); err != nil {
			return Error(err)
		}
	}
	return env.Eval(b.Body)
}
