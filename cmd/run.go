package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/psmietanaa/Risp/lisp"
	"github.com/psmietanaa/Risp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run risp code",
	Long:  `Run risp code supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for i := range exprs {
			if !runProgram(exprs[i]) {
				os.Exit(1)
			}
		}
	},
}

// runProgram parses and evaluates one program against a fresh default
// environment, reporting any error on stderr.
func runProgram(text []byte) bool {
	v, err := parser.Parse(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	log.Debug("program parsed", "bytes", len(text))
	env := lisp.NewEnv()
	r := env.Eval(v)
	if r.Type == lisp.LError {
		fmt.Fprintln(os.Stderr, r)
		return false
	}
	if runPrint && r.Type != lisp.LNone {
		fmt.Println(r)
	}
	return true
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "unable to open the file")
		}
		exprs[i] = b
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as risp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print program results to stdout")
}
