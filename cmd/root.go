// Package cmd implements the risp command line interface.
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/psmietanaa/Risp/config"
	"github.com/psmietanaa/Risp/repl"
	"github.com/spf13/cobra"
)

var (
	rootDebug  bool
	rootRCPath string
)

// rootCmd starts the REPL when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "risp",
	Short: "A minimal lisp interpreter",
	Long: `Risp is a minimal lisp interpreter.  Without arguments an interactive
session is started.  Use the run subcommand to evaluate files or expressions.`,
	SilenceUsage: true,
	Args:         cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			// risp FILE... evaluates each file as one program
			exprs, err := runReadExpressions(args)
			if err != nil {
				return err
			}
			for i := range exprs {
				if !runProgram(exprs[i]) {
					os.Exit(1)
				}
			}
			return nil
		}
		cfg := loadConfig()
		return repl.Run(repl.Options{
			Prompt:      cfg.Prompt,
			HistoryFile: cfg.HistoryFile,
			NoColor:     cfg.NoColor,
		})
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		if rootDebug {
			log.SetLevel(log.DebugLevel)
		}
	})
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&rootRCPath, "config", "",
		"Path to the rc file")
}

func loadConfig() *config.Config {
	if rootRCPath != "" {
		cfg, err := config.Load(rootRCPath)
		if err != nil {
			log.Error("unable to load config", "path", rootRCPath, "err", err)
			os.Exit(1)
		}
		return cfg
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Warn("ignoring unusable config", "err", err)
		return config.Default()
	}
	log.Debug("config loaded", "prompt", cfg.Prompt, "historyFile", cfg.HistoryFile)
	return cfg
}
