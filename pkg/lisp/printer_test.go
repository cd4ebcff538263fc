package lisp

import "testing"

func TestPrintReadableRoundTrip(t *testing.T) {
	cases := []string{
		"42",
		"-17",
		"true",
		"false",
		"nil",
		"abc",
		":kw",
		`"hi there"`,
		"(1 2 3)",
		"[1 2 3]",
		"(+ 1 (* 2 3))",
	}
	for _, src := range cases {
		form, err := ReadString(src)
		if err != nil {
			t.Fatalf("ReadString(%q): %v", src, err)
		}
		printed := PrintString(form, true)
		reparsed, err := ReadString(printed)
		if err != nil {
			t.Fatalf("re-reading printed form %q: %v", printed, err)
		}
		if !Equal(form, reparsed) {
			t.Errorf("round-trip mismatch: %q -> %q -> %v", src, printed, PrintString(reparsed, true))
		}
	}
}

func TestPrintStringEscaping(t *testing.T) {
	s := Str("a\"b\\c\nd")
	readable := PrintString(s, true)
	want := `"a\"b\\c\nd"`
	if readable != want {
		t.Errorf("readable print = %q, want %q", readable, want)
	}
	notReadable := PrintString(s, false)
	if notReadable != "a\"b\\c\nd" {
		t.Errorf("non-readable print = %q, want raw contents", notReadable)
	}
}

func TestPrintHashMapKeyValuePairing(t *testing.T) {
	hm := NewHashMap()
	_ = hm.Set(Keyword("a"), Int(1))
	_ = hm.Set(Keyword("b"), Int(2))
	got := PrintString(hm, true)
	want := "{:a 1 :b 2}"
	if got != want {
		t.Errorf("PrintString(hashmap) = %q, want %q (insertion order preserved)", got, want)
	}
}

func TestPrintFunctionsAndAtoms(t *testing.T) {
	b := &Builtin{Name: "+"}
	if got := PrintString(b, true); got != "#<builtin:+>" {
		t.Errorf("builtin print = %q", got)
	}
	c := &Closure{}
	if got := PrintString(c, true); got != "#<function>" {
		t.Errorf("closure print = %q", got)
	}
	c.IsMacro = true
	if got := PrintString(c, true); got != "#<macro>" {
		t.Errorf("macro print = %q", got)
	}
	a := NewAtom(Int(5))
	if got := PrintString(a, true); got != "(atom 5)" {
		t.Errorf("atom print = %q", got)
	}
}
