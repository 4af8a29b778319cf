package bfvm

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestTokenize(t *testing.T) {
	ins := Tokenize("hello, +world-! [>.<] # comment\n->é")
	if got := ins.String(); got != ",+-[>.<]->" {
		t.Fatalf("got %q", got)
	}
	for _, i := range ins {
		if !i.Valid() {
			t.Fatalf("got %v", i)
		}
	}

	if ins := Tokenize(""); len(ins) != 0 {
		t.Fatalf("got %v", ins)
	}
	if ins := Tokenize("no instructions here"); len(ins) != 0 {
		t.Fatalf("got %v", ins)
	}
}

func TestTokenizeReader(t *testing.T) {
	src := "a+b-c>d<e.f,g[h]i"
	ins, err := TokenizeReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if ins.String() != Tokenize(src).String() {
		t.Fatalf("got %q", ins)
	}

	readErr := errors.New("broken")
	_, err = TokenizeReader(iotest.ErrReader(readErr))
	if !errors.Is(err, readErr) {
		t.Fatalf("got %v", err)
	}
}

func TestInstructionValid(t *testing.T) {
	for _, c := range []byte("+-<>.,[]") {
		if !Instruction(c).Valid() {
			t.Fatalf("%c should be valid", c)
		}
	}
	for _, c := range []byte("ab 0#\n") {
		if Instruction(c).Valid() {
			t.Fatalf("%c should not be valid", c)
		}
	}
}
