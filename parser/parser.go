/*
Package parser parses risp source text into lisp values.

	expr := '(' <expr>* ')' | <atom>
	atom := /[^\s()]+/

An atom that parses as a 64-bit float is a number literal; every other atom
is a symbol.  There are no strings, comments, or quoting syntax.  A program
is a single expression; text after the first complete expression is ignored.
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	parsec "github.com/prataprc/goparsec"
	"github.com/psmietanaa/Risp/lisp"
)

// ErrUnexpectedEOF reports input that ended before the first expression was
// complete.  Interactive front ends match on it to keep reading lines.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeList
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeTerm:    "TERM",
	nodeList:    "LIST",
}

// Parse parses the first complete expression in text.
func Parse(text []byte) (*lisp.LVal, error) {
	if err := checkDelimiters(text); err != nil {
		return nil, err
	}
	s := parsec.NewScanner(text)
	root, _ := newParsecParser()(s)
	v := getLVal(root)
	if v == nil {
		return nil, errors.New("malformed input")
	}
	return v, nil
}

// checkDelimiters scans tokens until the first top-level expression closes,
// classifying delimiter errors that the combinator grammar cannot report on
// its own.
func checkDelimiters(text []byte) error {
	depth := 0
	started := false
	for _, tok := range tokens(text) {
		switch tok {
		case "(":
			depth++
			started = true
		case ")":
			depth--
			if depth < 0 {
				return errors.New("unexpected closing delimiter")
			}
			if depth == 0 {
				return nil
			}
		default:
			if depth == 0 {
				// a bare atom is a complete expression
				return nil
			}
		}
	}
	if depth > 0 {
		return errors.Wrap(ErrUnexpectedEOF, "unterminated list")
	}
	if !started {
		return errors.Wrap(ErrUnexpectedEOF, "no expression found")
	}
	return nil
}

// tokens splits text into parenthesis markers and atoms.
func tokens(text []byte) []string {
	spaced := strings.NewReplacer("(", " ( ", ")", " ) ").Replace(string(text))
	return strings.Fields(spaced)
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	atom := parsec.Token(`[^\s()]+`, "ATOM")
	term := parsec.OrdChoice(astNode(nodeTerm), atom)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	list := parsec.And(astNode(nodeList), openP, exprList, closeP)
	expr = parsec.OrdChoice(nil, term, list)
	return expr
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

func newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch typ {
	case nodeTerm:
		term, ok := nodes[0].(*parsec.Terminal)
		if !ok {
			return nil
		}
		if f, err := strconv.ParseFloat(term.Value, 64); err == nil {
			return lisp.Number(f)
		}
		return lisp.Symbol(term.Value)
	case nodeList:
		lval := lisp.List()
		// terminal parsec nodes '(' and ')' are dropped
		for _, c := range nodes {
			if v, ok := c.(*lisp.LVal); ok {
				lval.Cells = append(lval.Cells, v)
			}
		}
		return lval
	default:
		return nil
	}
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newAST(t, nodes)
	}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func getLVal(root parsec.ParsecNode) *lisp.LVal {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		return nil
	}
	lval, ok := nodes[0].(*lisp.LVal)
	if !ok {
		return nil
	}
	return lval
}
