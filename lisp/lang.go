package lisp

// Canonical boolean symbols, pre-bound in every default environment.
const (
	TrueSymbol  = "True"
	FalseSymbol = "False"
)
