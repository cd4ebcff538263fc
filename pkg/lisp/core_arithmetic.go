package lisp

// registerArithmetic binds the integer arithmetic and comparison
// builtins (spec.md §4.4). Division is integer division; the single-
// argument forms follow the standard Lisp convention spec.md §9 singles
// out: (- x) = -x, (* x) = x, (/ x) = 1/x (integer).
func registerArithmetic(env *Environment) {
	env.Set("+", builtin("+", func(args []Value) (Value, error) {
		ints, err := intArgs("+", args)
		if err != nil {
			return nil, err
		}
		var sum Int
		for _, n := range ints {
			sum += n
		}
		return sum, nil
	}))

	env.Set("-", builtin("-", func(args []Value) (Value, error) {
		ints, err := intArgs("-", args)
		if err != nil {
			return nil, err
		}
		if len(ints) == 0 {
			return nil, newArityError("- expects at least 1 argument")
		}
		if len(ints) == 1 {
			return -ints[0], nil
		}
		result := ints[0]
		for _, n := range ints[1:] {
			result -= n
		}
		return result, nil
	}))

	env.Set("*", builtin("*", func(args []Value) (Value, error) {
		ints, err := intArgs("*", args)
		if err != nil {
			return nil, err
		}
		if len(ints) == 0 {
			return Int(1), nil
		}
		if len(ints) == 1 {
			return ints[0], nil
		}
		result := Int(1)
		for _, n := range ints {
			result *= n
		}
		return result, nil
	}))

	env.Set("/", builtin("/", func(args []Value) (Value, error) {
		ints, err := intArgs("/", args)
		if err != nil {
			return nil, err
		}
		if len(ints) == 0 {
			return nil, newArityError("/ expects at least 1 argument")
		}
		if len(ints) == 1 {
			if ints[0] == 0 {
				return nil, &ArityError{Message: "division by zero"}
			}
			return Int(1) / ints[0], nil
		}
		result := ints[0]
		for _, n := range ints[1:] {
			if n == 0 {
				return nil, &ArityError{Message: "division by zero"}
			}
			result /= n
		}
		return result, nil
	}))

	env.Set("%", builtin("%", func(args []Value) (Value, error) {
		ints, err := intArgs("%", args)
		if err != nil {
			return nil, err
		}
		if len(ints) != 2 {
			return nil, newArityError("%% expects 2 arguments, got %d", len(ints))
		}
		if ints[1] == 0 {
			return nil, &ArityError{Message: "modulo by zero"}
		}
		return ints[0] % ints[1], nil
	}))

	cmp := func(name string, ok func(a, b Int) bool) *Builtin {
		return builtin(name, func(args []Value) (Value, error) {
			ints, err := intArgs(name, args)
			if err != nil {
				return nil, err
			}
			if len(ints) != 2 {
				return nil, newArityError("%s expects 2 arguments, got %d", name, len(ints))
			}
			return Bool(ok(ints[0], ints[1])), nil
		})
	}
	env.Set("<", cmp("<", func(a, b Int) bool { return a < b }))
	env.Set("<=", cmp("<=", func(a, b Int) bool { return a <= b }))
	env.Set(">", cmp(">", func(a, b Int) bool { return a > b }))
	env.Set(">=", cmp(">=", func(a, b Int) bool { return a >= b }))

	env.Set("=", builtin("=", func(args []Value) (Value, error) {
		if len(args) < 2 {
			return nil, newArityError("= expects at least 2 arguments, got %d", len(args))
		}
		for _, arg := range args[1:] {
			if !Equal(args[0], arg) {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	}))
}

func intArgs(name string, args []Value) ([]Int, error) {
	out := make([]Int, len(args))
	for i, arg := range args {
		n, ok := arg.(Int)
		if !ok {
			return nil, newTypeError(name+" Int argument", arg)
		}
		out[i] = n
	}
	return out, nil
}

func builtin(name string, fn func(args []Value) (Value, error)) *Builtin {
	return &Builtin{Name: name, Fn: fn}
}
