package lisp

import (
	_ "embed"
	"fmt"
)

//go:embed stdlib.lisp
var stdlibSource string

// NewRootEnvironment builds the environment every program starts in: the
// host builtins from the core_*.go files, *ARGV*/*host-language*, the
// eval builtin that always runs against the root regardless
// of its caller's lexical environment (spec.md §9 Open Question
// resolution), and the embedded stdlib.lisp bootstrap forms.
func NewRootEnvironment() (*Environment, error) {
	root := NewEnvironment(nil)

	registerArithmetic(root)
	registerCollections(root)
	registerStrings(root)
	registerIO(root)
	registerMeta(root)

	root.Set("eval", &Builtin{
		Name: "eval",
		Fn: func(args []Value) (Value, error) {
			if err := arity("eval", args, 1); err != nil {
				return nil, err
			}
			return Eval(args[0], root)
		},
	})

	root.Set("*ARGV*", NewList())
	root.Set("*host-language*", Str("golisp"))

	if err := loadSource(root, stdlibSource); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return root, nil
}

// SetArgv rebinds *ARGV* to the program arguments following the script
// path, as spec.md §6's CLI contract requires.
func SetArgv(env *Environment, argv []string) {
	elems := make([]Value, len(argv))
	for i, a := range argv {
		elems[i] = Str(a)
	}
	env.Set("*ARGV*", NewList(elems...))
}

// loadSource reads and evaluates every top-level form in src against
// env in sequence, the same thing original_source's init_env does with
// repeated rep(...) calls over its bootstrap definitions.
func loadSource(env *Environment, src string) error {
	form, err := ReadString("(do " + src + "\nnil)")
	if err != nil {
		return err
	}
	_, err = Eval(form, env)
	return err
}
