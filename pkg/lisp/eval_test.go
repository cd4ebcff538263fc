package lisp

import "testing"

func evalSrc(t *testing.T, env *Environment, src string) Value {
	t.Helper()
	form, err := ReadString(src)
	if err != nil {
		t.Fatalf("ReadString(%q): %v", src, err)
	}
	result, err := Eval(form, env)
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return result
}

func newTestEnv(t *testing.T) *Environment {
	t.Helper()
	env, err := NewRootEnvironment()
	if err != nil {
		t.Fatalf("NewRootEnvironment: %v", err)
	}
	return env
}

func TestEvalArithmetic(t *testing.T) {
	env := newTestEnv(t)
	if got := evalSrc(t, env, "(+ 1 2 3)"); got != Int(6) {
		t.Fatalf("(+ 1 2 3) = %v, want 6", got)
	}
	if got := evalSrc(t, env, "(- 10 1 2)"); got != Int(7) {
		t.Fatalf("(- 10 1 2) = %v, want 7", got)
	}
	if got := evalSrc(t, env, "(* 2 3 4)"); got != Int(24) {
		t.Fatalf("(* 2 3 4) = %v, want 24", got)
	}
	if got := evalSrc(t, env, "(/ 20 2 5)"); got != Int(2) {
		t.Fatalf("(/ 20 2 5) = %v, want 2", got)
	}
}

func TestEvalDefAndLet(t *testing.T) {
	env := newTestEnv(t)
	evalSrc(t, env, "(def! x 10)")
	if got := evalSrc(t, env, "x"); got != Int(10) {
		t.Fatalf("x = %v, want 10", got)
	}
	if got := evalSrc(t, env, "(let* (y 5) (+ x y))"); got != Int(15) {
		t.Fatalf("let* result = %v, want 15", got)
	}
	// let* bindings must not leak into the outer environment.
	if _, err := env.Get("y"); err == nil {
		t.Fatal("y leaked out of let*")
	}
}

func TestEvalIfTruthiness(t *testing.T) {
	env := newTestEnv(t)
	if got := evalSrc(t, env, "(if 0 :truthy :falsy)"); got != Keyword("truthy") {
		t.Fatalf("(if 0 ...) = %v, want :truthy (Int(0) is truthy)", got)
	}
	if got := evalSrc(t, env, "(if false :truthy :falsy)"); got != Keyword("falsy") {
		t.Fatalf("(if false ...) = %v, want :falsy", got)
	}
	if got := evalSrc(t, env, "(if nil :truthy :falsy)"); got != Keyword("falsy") {
		t.Fatalf("(if nil ...) = %v, want :falsy", got)
	}
	if got := evalSrc(t, env, "(if false :truthy)"); got != (Nil{}) {
		t.Fatalf("(if false :truthy) with no else = %v, want nil", got)
	}
}

func TestEvalClosuresAndCapture(t *testing.T) {
	env := newTestEnv(t)
	evalSrc(t, env, "(def! adder (fn* (n) (fn* (x) (+ x n))))")
	evalSrc(t, env, "(def! add5 (adder 5))")
	if got := evalSrc(t, env, "(add5 10)"); got != Int(15) {
		t.Fatalf("(add5 10) = %v, want 15", got)
	}
}

func TestTailCallDoesNotGrowStack(t *testing.T) {
	env := newTestEnv(t)
	evalSrc(t, env, `(def! count-to
		(fn* (n target)
			(if (= n target)
				n
				(count-to (+ n 1) target))))`)
	got := evalSrc(t, env, "(count-to 0 100000)")
	if got != Int(100000) {
		t.Fatalf("tail-recursive count-to 100000 = %v, want 100000", got)
	}
}

func TestEvalTryCatchThrow(t *testing.T) {
	env := newTestEnv(t)
	got := evalSrc(t, env, `(try* (throw "boom") (catch* e e))`)
	if got != Str("boom") {
		t.Fatalf("caught value = %v, want \"boom\"", got)
	}
}

func TestEvalTryCatchHostError(t *testing.T) {
	env := newTestEnv(t)
	got := evalSrc(t, env, `(try* (nonexistent-symbol) (catch* e (symbol? e)))`)
	if got != Bool(false) {
		t.Fatalf("host error caught as %v, want a Str (symbol? should be false)", got)
	}
}

func TestEqualCrossKindSequences(t *testing.T) {
	a, _ := ReadString("(1 2 3)")
	b, _ := ReadString("[1 2 3]")
	if !Equal(a, b) {
		t.Fatal("a List and a Vector with the same elements should be Equal")
	}
}
