// Package repl implements the interactive risp front end.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/psmietanaa/Risp/lisp"
	"github.com/psmietanaa/Risp/parser"
)

// Options control the REPL's presentation.
type Options struct {
	Prompt      string
	HistoryFile string
	NoColor     bool
}

// DefaultPrompt is used when Options.Prompt is empty.
const DefaultPrompt = ">>> "

// Run reads programs from the terminal and evaluates each one against a
// fresh default environment.  Input spanning multiple lines is accumulated
// until the expression is complete.  Only error messages and print output
// are written; no binding survives from one program to the next.
func Run(opts Options) error {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: opts.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	errText := color.New(color.FgRed).SprintFunc()
	if opts.NoColor {
		errText = fmt.Sprint
	}
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	fmt.Println("Welcome to Risp!")
	var buf []byte
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			buf = append(buf, line...)
		} else {
			buf = []byte(line)
		}
		if len(strings.TrimSpace(string(buf))) == 0 {
			buf = nil
			continue
		}
		v, perr := parser.Parse(buf)
		if perr != nil {
			if errors.Is(perr, parser.ErrUnexpectedEOF) {
				rl.SetPrompt(contPrompt)
				continue
			}
			fmt.Fprintln(os.Stderr, errText(perr.Error()))
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		buf = nil
		rl.SetPrompt(prompt)

		env := lisp.NewEnv()
		r := env.Eval(v)
		if r.Type == lisp.LError {
			fmt.Fprintln(os.Stderr, errText(r.String()))
		}
	}
}
