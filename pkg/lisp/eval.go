package lisp

// Eval evaluates expr in env. It is written as an explicit trampoline:
// special forms that continue in tail position (if/do/let*/quasiquote,
// and direct or mutual tail calls to closures) rewrite ast/env in place
// and loop instead of recursing, so tail-recursive language programs
// don't grow the Go call stack (spec.md §5).
func Eval(ast Value, env *Environment) (Value, error) {
	for {
		l, ok := ast.(*List)
		if !ok {
			return evalAst(ast, env)
		}
		if l.IsEmpty() {
			return l, nil
		}

		expanded, err := macroexpand(l, env)
		if err != nil {
			return nil, err
		}
		nl, ok := expanded.(*List)
		if !ok {
			return evalAst(expanded, env)
		}
		l = nl
		if l.IsEmpty() {
			return l, nil
		}

		if head, ok := l.First().(Symbol); ok {
			action, err := evalSpecialForm(head, l.Rest(), env)
			if err != nil {
				return nil, err
			}
			if action.handled {
				if action.tail {
					ast, env = action.tailAst, action.tailEnv
					continue
				}
				return action.result, nil
			}
		}

		fn, err := Eval(l.First(), env)
		if err != nil {
			return nil, err
		}

		var args []Value
		for c := l.Rest(); c != nil; c = c.tail {
			v, err := Eval(c.head, env)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}

		switch callee := fn.(type) {
		case *Closure:
			newEnv, err := bindParams(callee.Params, args, callee.Env)
			if err != nil {
				return nil, err
			}
			ast, env = callee.Body, newEnv
			continue
		case *Builtin:
			return callee.Call(args)
		default:
			return nil, &NotAFunctionError{Value: fn}
		}
	}
}

// evalAst evaluates a non-List ast node: spec.md §4.5's "evaluation of
// non-list values".
func evalAst(ast Value, env *Environment) (Value, error) {
	switch v := ast.(type) {
	case Symbol:
		return env.Get(v)
	case *Vector:
		out := make([]Value, len(v.Elements))
		for i, elem := range v.Elements {
			r, err := Eval(elem, env)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return &Vector{Elements: out}, nil
	case *HashMap:
		out := NewHashMap()
		for _, key := range v.Keys() {
			r, err := Eval(v.Get(key), env)
			if err != nil {
				return nil, err
			}
			if err := out.Set(key, r); err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return ast, nil
	}
}

// isTruthy implements spec.md's two-value falsiness: Nil and Bool(false)
// are falsy, everything else (including Int(0)) is truthy.
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(val)
	default:
		return true
	}
}

// isMacroCall reports whether ast is a list whose head is a Symbol bound
// to a macro closure.
func isMacroCall(ast *List, env *Environment) bool {
	if ast.IsEmpty() {
		return false
	}
	sym, ok := ast.First().(Symbol)
	if !ok {
		return false
	}
	found := env.find(sym)
	if found == nil {
		return false
	}
	closure, ok := found.bindings[sym].(*Closure)
	return ok && closure.IsMacro
}

// macroexpand repeatedly expands ast while its head is a macro, per
// spec.md §4.5 step 2.
func macroexpand(ast Value, env *Environment) (Value, error) {
	for {
		l, ok := ast.(*List)
		if !ok || !isMacroCall(l, env) {
			return ast, nil
		}
		sym := l.First().(Symbol)
		macroVal, _ := env.Get(sym)
		macro := macroVal.(*Closure)
		expanded, err := macro.Call(l.Rest().Slice())
		if err != nil {
			return nil, err
		}
		ast = expanded
	}
}

// specialFormAction describes how evalSpecialForm wants the trampoline
// to proceed: either a final result, a tail continuation (new ast/env),
// or "not a special form" (handled == false) so the caller falls
// through to ordinary function application.
type specialFormAction struct {
	result  Value
	tailAst Value
	tailEnv *Environment
	tail    bool
	handled bool
}

func finalResult(v Value) (specialFormAction, error) {
	return specialFormAction{result: v, handled: true}, nil
}

func tailCall(ast Value, env *Environment) (specialFormAction, error) {
	return specialFormAction{tailAst: ast, tailEnv: env, tail: true, handled: true}, nil
}

var notSpecialForm = specialFormAction{handled: false}

// evalSpecialForm dispatches on a list's leading symbol. spec.md §4.5.
func evalSpecialForm(head Symbol, rest *List, env *Environment) (specialFormAction, error) {
	switch head {
	case "def!":
		args := rest.Slice()
		if len(args) != 2 {
			return specialFormAction{}, newArityError("def! expects 2 arguments, got %d", len(args))
		}
		sym, ok := args[0].(Symbol)
		if !ok {
			return specialFormAction{}, newTypeError("Symbol", args[0])
		}
		value, err := Eval(args[1], env)
		if err != nil {
			return specialFormAction{}, err
		}
		env.Set(sym, value)
		return finalResult(value)

	case "let*":
		args := rest.Slice()
		if len(args) != 2 {
			return specialFormAction{}, newArityError("let* expects 2 arguments (bindings body), got %d", len(args))
		}
		bindings, err := bindingSlice(args[0])
		if err != nil {
			return specialFormAction{}, err
		}
		if len(bindings)%2 != 0 {
			return specialFormAction{}, newArityError("let* bindings must have an even number of forms")
		}
		letEnv := NewEnvironment(env)
		for i := 0; i < len(bindings); i += 2 {
			sym, ok := bindings[i].(Symbol)
			if !ok {
				return specialFormAction{}, newTypeError("Symbol binding name", bindings[i])
			}
			value, err := Eval(bindings[i+1], letEnv)
			if err != nil {
				return specialFormAction{}, err
			}
			letEnv.Set(sym, value)
		}
		return tailCall(args[1], letEnv)

	case "do":
		args := rest.Slice()
		if len(args) == 0 {
			return finalResult(Nil{})
		}
		for _, expr := range args[:len(args)-1] {
			if _, err := Eval(expr, env); err != nil {
				return specialFormAction{}, err
			}
		}
		return tailCall(args[len(args)-1], env)

	case "if":
		args := rest.Slice()
		if len(args) < 2 || len(args) > 3 {
			return specialFormAction{}, newArityError("if expects 2-3 arguments, got %d", len(args))
		}
		cond, err := Eval(args[0], env)
		if err != nil {
			return specialFormAction{}, err
		}
		if isTruthy(cond) {
			return tailCall(args[1], env)
		}
		if len(args) == 3 {
			return tailCall(args[2], env)
		}
		return tailCall(Nil{}, env)

	case "fn*":
		args := rest.Slice()
		if len(args) != 2 {
			return specialFormAction{}, newArityError("fn* expects 2 arguments (params body), got %d", len(args))
		}
		params, err := paramList(args[0])
		if err != nil {
			return specialFormAction{}, err
		}
		return finalResult(&Closure{Params: params, Body: args[1], Env: env})

	case "quote":
		args := rest.Slice()
		if len(args) != 1 {
			return specialFormAction{}, newArityError("quote expects 1 argument, got %d", len(args))
		}
		return finalResult(args[0])

	case "quasiquote":
		args := rest.Slice()
		if len(args) != 1 {
			return specialFormAction{}, newArityError("quasiquote expects 1 argument, got %d", len(args))
		}
		return tailCall(quasiquote(args[0]), env)

	case "defmacro!":
		args := rest.Slice()
		if len(args) != 2 {
			return specialFormAction{}, newArityError("defmacro! expects 2 arguments, got %d", len(args))
		}
		sym, ok := args[0].(Symbol)
		if !ok {
			return specialFormAction{}, newTypeError("Symbol", args[0])
		}
		value, err := Eval(args[1], env)
		if err != nil {
			return specialFormAction{}, err
		}
		closure, ok := value.(*Closure)
		if !ok {
			return specialFormAction{}, newTypeError("function expression", value)
		}
		macro := *closure
		macro.IsMacro = true
		env.Set(sym, &macro)
		return finalResult(&macro)

	case "macroexpand":
		args := rest.Slice()
		if len(args) != 1 {
			return specialFormAction{}, newArityError("macroexpand expects 1 argument, got %d", len(args))
		}
		expanded, err := macroexpand(args[0], env)
		if err != nil {
			return specialFormAction{}, err
		}
		return finalResult(expanded)

	case "try*":
		args := rest.Slice()
		if len(args) < 1 || len(args) > 2 {
			return specialFormAction{}, newArityError("try* expects 1-2 arguments, got %d", len(args))
		}
		if len(args) == 1 {
			result, err := Eval(args[0], env)
			if err != nil {
				return specialFormAction{}, err
			}
			return finalResult(result)
		}
		catchForm, ok := args[1].(*List)
		if !ok || catchForm.Len() != 3 {
			return specialFormAction{}, newArityError("try*'s second argument must be (catch* SYM HANDLER)")
		}
		catchParts := catchForm.Slice()
		catchHead, ok := catchParts[0].(Symbol)
		if !ok || catchHead != "catch*" {
			return specialFormAction{}, newArityError("try*'s second argument must start with catch*")
		}
		catchSym, ok := catchParts[1].(Symbol)
		if !ok {
			return specialFormAction{}, newTypeError("Symbol", catchParts[1])
		}
		handler := catchParts[2]

		result, evalErr := Eval(args[0], env)
		if evalErr == nil {
			return finalResult(result)
		}

		var caught Value
		if thrown, ok := evalErr.(*ThrownValue); ok {
			caught = thrown.Value
		} else {
			caught = Str(evalErr.Error())
		}
		catchEnv := NewEnvironment(env)
		catchEnv.Set(catchSym, caught)
		return tailCall(handler, catchEnv)

	case "py*", "py!*", ".":
		return specialFormAction{}, &errNotSupported{Form: string(head)}

	default:
		return notSpecialForm, nil
	}
}

// bindingSlice accepts either a List or Vector of alternating
// symbol/expr forms (let* bindings).
func bindingSlice(v Value) ([]Value, error) {
	switch b := v.(type) {
	case *List:
		return b.Slice(), nil
	case *Vector:
		return b.Elements, nil
	default:
		return nil, newTypeError("List or Vector of bindings", v)
	}
}

// paramList accepts either a List or Vector of parameter Symbols.
func paramList(v Value) (*List, error) {
	switch p := v.(type) {
	case *List:
		return p, nil
	case *Vector:
		return NewList(p.Elements...), nil
	default:
		return nil, newTypeError("List or Vector of parameters", v)
	}
}

// Equal implements spec.md §4.4's structural "=": Nil=Nil, same-type
// scalars by value, List/Vector sequence-equal (cross-kind allowed) if
// same length and element-wise equal, Maps equal if same key set and
// pairwise-equal values.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case Keyword:
		bv, ok := b.(Keyword)
		return ok && av == bv
	case *List:
		return equalSequence(av.Slice(), b)
	case *Vector:
		return equalSequence(av.Elements, b)
	case *HashMap:
		bv, ok := b.(*HashMap)
		if !ok || av.Count() != bv.Count() {
			return false
		}
		for _, key := range av.Keys() {
			if !bv.Contains(key) || !Equal(av.Get(key), bv.Get(key)) {
				return false
			}
		}
		return true
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && av == bv
	default:
		return a == b
	}
}

func equalSequence(aElems []Value, b Value) bool {
	var bElems []Value
	switch bv := b.(type) {
	case *List:
		bElems = bv.Slice()
	case *Vector:
		bElems = bv.Elements
	default:
		return false
	}
	if len(aElems) != len(bElems) {
		return false
	}
	for i := range aElems {
		if !Equal(aElems[i], bElems[i]) {
			return false
		}
	}
	return true
}
