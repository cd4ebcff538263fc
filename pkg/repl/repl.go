// Package repl implements the interactive line editor driving the
// language's read-eval-print loop: spec.md §6's external interface.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/leinonen/golisp/pkg/lisp"
)

// REPL owns the line editor, history file and root environment for one
// interactive session.
type REPL struct {
	env         *lisp.Environment
	rl          *readline.Instance
	colors      bool
	errorFmt    *ErrorFormatter
	prompt      string
	contPrompt  string
}

// Options configures a REPL's ambient presentation; New replaces empty
// Prompt, ContPrompt and HistoryFile fields with its own defaults.
type Options struct {
	Prompt      string
	ContPrompt  string
	HistoryFile string
	Colors      bool
}

// New constructs a REPL over env, wiring up readline with fuzzy
// completion (completion.go) over env's bound symbols.
func New(env *lisp.Environment, opts Options) (*REPL, error) {
	if opts.Prompt == "" {
		opts.Prompt = "user> "
	}
	if opts.ContPrompt == "" {
		opts.ContPrompt = "  ... "
	}
	if opts.HistoryFile == "" {
		opts.HistoryFile = "/tmp/golisp_history"
	}

	color.NoColor = !opts.Colors

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          opts.Prompt,
		HistoryFile:     opts.HistoryFile,
		AutoComplete:    &fuzzyCompleter{provider: newCompletionProvider(env)},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("repl: initializing readline: %w", err)
	}

	return &REPL{
		env:        env,
		rl:         rl,
		colors:     opts.Colors,
		errorFmt:   NewErrorFormatter(),
		prompt:     opts.Prompt,
		contPrompt: opts.ContPrompt,
	}, nil
}

// Close releases the line editor's resources (history file handle).
func (r *REPL) Close() error { return r.rl.Close() }

// Run drives the loop: read a balanced-parens expression, Eval it
// against the root environment, print the result or a formatted error.
// It returns nil on a clean EOF exit, matching spec.md §6.
func (r *REPL) Run(banner string) error {
	if banner != "" {
		r.printBanner(banner)
	}

	for {
		input, err := r.readExpression()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println("EOF")
				return nil
			}
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return err
		}

		form, err := lisp.ReadString(input)
		if err != nil {
			var rerr *lisp.ReaderError
			if errors.As(err, &rerr) && rerr.Kind == lisp.ErrEmptyInput {
				continue // blank/whitespace-only input: silently re-prompt
			}
			fmt.Fprintln(os.Stderr, r.errorFmt.Format(err))
			continue
		}

		result, err := lisp.Eval(form, r.env)
		if err != nil {
			fmt.Fprintln(os.Stderr, r.errorFmt.Format(err))
			continue
		}
		fmt.Println(lisp.PrintString(result, true))
	}
}

func (r *REPL) printBanner(banner string) {
	title := color.New(color.FgCyan, color.Bold)
	title.Println(banner)
}

// readExpression reads lines from readline until parentheses balance,
// the same bracket-counting approach the teacher's REPL uses, adapted
// to also track [] and {} since this language's reader accepts vector
// and hash-map literals at toplevel.
func (r *REPL) readExpression() (string, error) {
	var lines []string
	depth := 0
	inString := false
	escaped := false
	first := true

	for {
		if first {
			r.rl.SetPrompt(r.prompt)
			first = false
		} else {
			r.rl.SetPrompt(r.contPrompt)
		}

		line, err := r.rl.Readline()
		if err != nil {
			return "", err
		}
		lines = append(lines, line)

		for _, ch := range line {
			if escaped {
				escaped = false
				continue
			}
			switch {
			case ch == '\\' && inString:
				escaped = true
			case ch == '"':
				inString = !inString
			case !inString && strings.ContainsRune("([{", ch):
				depth++
			case !inString && strings.ContainsRune(")]}", ch):
				depth--
			}
		}

		joined := strings.Join(lines, "\n")
		if depth <= 0 && strings.TrimSpace(joined) != "" {
			return joined, nil
		}
	}
}
