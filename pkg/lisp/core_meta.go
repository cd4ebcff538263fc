package lisp

// registerMeta binds atoms, metadata, error-throwing and read-string
// (spec.md §4.4).
func registerMeta(env *Environment) {
	env.Set("atom", builtin("atom", func(args []Value) (Value, error) {
		if err := arity("atom", args, 1); err != nil {
			return nil, err
		}
		return NewAtom(args[0]), nil
	}))

	env.Set("atom?", builtin("atom?", func(args []Value) (Value, error) {
		if err := arity("atom?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(*Atom)
		return Bool(ok), nil
	}))

	env.Set("deref", builtin("deref", func(args []Value) (Value, error) {
		if err := arity("deref", args, 1); err != nil {
			return nil, err
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, newTypeError("Atom", args[0])
		}
		return a.Value, nil
	}))

	env.Set("reset!", builtin("reset!", func(args []Value) (Value, error) {
		if err := arity("reset!", args, 2); err != nil {
			return nil, err
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, newTypeError("Atom", args[0])
		}
		a.Value = args[1]
		return a.Value, nil
	}))

	env.Set("swap!", builtin("swap!", func(args []Value) (Value, error) {
		if len(args) < 2 {
			return nil, newArityError("swap! expects at least 2 arguments, got %d", len(args))
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, newTypeError("Atom", args[0])
		}
		fn, ok := args[1].(Callable)
		if !ok {
			return nil, &NotAFunctionError{Value: args[1]}
		}
		callArgs := append([]Value{a.Value}, args[2:]...)
		result, err := fn.Call(callArgs)
		if err != nil {
			return nil, err
		}
		a.Value = result
		return result, nil
	}))

	env.Set("meta", builtin("meta", func(args []Value) (Value, error) {
		if err := arity("meta", args, 1); err != nil {
			return nil, err
		}
		return metaOf(args[0]), nil
	}))

	env.Set("with-meta", builtin("with-meta", func(args []Value) (Value, error) {
		if err := arity("with-meta", args, 2); err != nil {
			return nil, err
		}
		return withMeta(args[0], args[1]), nil
	}))

	env.Set("throw", builtin("throw", func(args []Value) (Value, error) {
		if err := arity("throw", args, 1); err != nil {
			return nil, err
		}
		return nil, &ThrownValue{Value: args[0]}
	}))

	env.Set("read-string", builtin("read-string", func(args []Value) (Value, error) {
		if err := arity("read-string", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, newTypeError("Str", args[0])
		}
		return ReadString(string(s))
	}))
}
