package repl

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/leinonen/golisp/pkg/lisp"
)

// ErrorFormatter renders an evaluation error the way spec.md §6
// requires ("Error: " stderr-style prefix), color-coding by the
// taxonomy row from errors.go so a symbol-not-found error reads
// differently from a type error at a glance.
type ErrorFormatter struct {
	prefix    *color.Color
	syntax    *color.Color
	undefined *color.Color
	typeErr   *color.Color
	general   *color.Color
}

// NewErrorFormatter builds a formatter with the teacher's palette
// (pkg/repl/errors.go), remapped onto this language's error taxonomy.
func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		prefix:    color.New(color.FgRed, color.Bold),
		syntax:    color.New(color.FgRed, color.Bold),
		undefined: color.New(color.FgYellow, color.Bold),
		typeErr:   color.New(color.FgCyan, color.Bold),
		general:   color.New(color.FgWhite, color.Bold),
	}
}

// Format renders err with the "Error: " prefix and a category color.
func (ef *ErrorFormatter) Format(err error) string {
	body := ef.colorFor(err).Sprint(err.Error())
	return fmt.Sprintf("%s%s", ef.prefix.Sprint("Error: "), body)
}

func (ef *ErrorFormatter) colorFor(err error) *color.Color {
	switch err.(type) {
	case *lisp.ReaderError:
		return ef.syntax
	case *lisp.SymbolNotFoundError:
		return ef.undefined
	case *lisp.TypeError, *lisp.ArityError, *lisp.IndexError:
		return ef.typeErr
	default:
		return ef.general
	}
}
