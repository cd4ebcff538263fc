// Command golisp is the interpreter's driver: a REPL by default, or a
// script runner when given a file, per spec.md §6.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leinonen/golisp/pkg/lisp"
	"github.com/leinonen/golisp/pkg/repl"
)

var (
	evalFlag  string
	noColor   bool
	configPath string
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "golisp [file] [args...]",
		Short: "golisp is an interpreter for a small Lisp-family language",
		Args:  cobra.ArbitraryArgs,
		RunE:  run,
	}
	cmd.Flags().StringVarP(&evalFlag, "eval", "e", "", "evaluate one expression and print its result, then exit")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored REPL output")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a golisp.yaml config file (default: ./golisp.yaml or ~/.golisp.yaml)")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	env, err := lisp.NewRootEnvironment()
	if err != nil {
		return fmt.Errorf("bootstrapping interpreter: %w", err)
	}

	if evalFlag != "" {
		return evalAndPrint(env, evalFlag)
	}

	if len(args) > 0 {
		return runFile(env, args[0], args[1:])
	}

	return startREPL(env, cfg)
}

func evalAndPrint(env *lisp.Environment, src string) error {
	form, err := lisp.ReadString(src)
	if err != nil {
		return err
	}
	result, err := lisp.Eval(form, env)
	if err != nil {
		return err
	}
	fmt.Println(lisp.PrintString(result, true))
	return nil
}

func runFile(env *lisp.Environment, path string, scriptArgs []string) error {
	lisp.SetArgv(env, scriptArgs)
	loadCall := lisp.NewList(lisp.Symbol("load-file"), lisp.Str(path))
	_, err := lisp.Eval(loadCall, env)
	return err
}

func startREPL(env *lisp.Environment, cfg *config) error {
	opts := repl.Options{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
		Colors:      cfg.Colors && !noColor,
	}
	session, err := repl.New(env, opts)
	if err != nil {
		return err
	}
	defer session.Close()
	return session.Run(fmt.Sprintf("Mal [%s]", cfg.HostLanguage))
}
