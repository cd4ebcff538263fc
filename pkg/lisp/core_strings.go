package lisp

import (
	"fmt"
	"strings"
)

// registerStrings binds string/printing and type-predicate builtins
// (spec.md §4.4).
func registerStrings(env *Environment) {
	env.Set("pr-str", builtin("pr-str", func(args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = PrintString(a, true)
		}
		return Str(strings.Join(parts, " ")), nil
	}))

	env.Set("str", builtin("str", func(args []Value) (Value, error) {
		var sb strings.Builder
		for _, a := range args {
			sb.WriteString(PrintString(a, false))
		}
		return Str(sb.String()), nil
	}))

	env.Set("prn", builtin("prn", func(args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = PrintString(a, true)
		}
		fmt.Println(strings.Join(parts, " "))
		return Nil{}, nil
	}))

	env.Set("println", builtin("println", func(args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = PrintString(a, false)
		}
		fmt.Println(strings.Join(parts, " "))
		return Nil{}, nil
	}))

	env.Set("symbol", builtin("symbol", func(args []Value) (Value, error) {
		if err := arity("symbol", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, newTypeError("Str", args[0])
		}
		return Symbol(s), nil
	}))

	env.Set("symbol?", builtin("symbol?", func(args []Value) (Value, error) {
		if err := arity("symbol?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(Symbol)
		return Bool(ok), nil
	}))

	env.Set("keyword", builtin("keyword", func(args []Value) (Value, error) {
		if err := arity("keyword", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case Keyword:
			return v, nil
		case Str:
			return Keyword(v), nil
		default:
			return nil, newTypeError("Str or Keyword", args[0])
		}
	}))

	env.Set("keyword?", builtin("keyword?", func(args []Value) (Value, error) {
		if err := arity("keyword?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(Keyword)
		return Bool(ok), nil
	}))

	env.Set("nil?", builtin("nil?", func(args []Value) (Value, error) {
		if err := arity("nil?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(Nil)
		return Bool(ok), nil
	}))

	env.Set("true?", builtin("true?", func(args []Value) (Value, error) {
		if err := arity("true?", args, 1); err != nil {
			return nil, err
		}
		b, ok := args[0].(Bool)
		return Bool(ok && bool(b)), nil
	}))

	env.Set("false?", builtin("false?", func(args []Value) (Value, error) {
		if err := arity("false?", args, 1); err != nil {
			return nil, err
		}
		b, ok := args[0].(Bool)
		return Bool(ok && !bool(b)), nil
	}))

	env.Set("number?", builtin("number?", func(args []Value) (Value, error) {
		if err := arity("number?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(Int)
		return Bool(ok), nil
	}))

	env.Set("string?", builtin("string?", func(args []Value) (Value, error) {
		if err := arity("string?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(Str)
		return Bool(ok), nil
	}))

	env.Set("fn?", builtin("fn?", func(args []Value) (Value, error) {
		if err := arity("fn?", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case *Builtin:
			return Bool(true), nil
		case *Closure:
			return Bool(!v.IsMacro), nil
		default:
			return Bool(false), nil
		}
	}))

	env.Set("macro?", builtin("macro?", func(args []Value) (Value, error) {
		if err := arity("macro?", args, 1); err != nil {
			return nil, err
		}
		c, ok := args[0].(*Closure)
		return Bool(ok && c.IsMacro), nil
	}))
}
