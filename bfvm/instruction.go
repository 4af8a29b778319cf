package bfvm

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

type Instruction byte

const (
	OpIncr      Instruction = '+'
	OpDecr      Instruction = '-'
	OpNext      Instruction = '>'
	OpPrev      Instruction = '<'
	OpOutput    Instruction = '.'
	OpInput     Instruction = ','
	OpLoopStart Instruction = '['
	OpLoopEnd   Instruction = ']'
)

func (i Instruction) Valid() bool {
	switch i {
	case OpIncr, OpDecr, OpNext, OpPrev, OpOutput, OpInput, OpLoopStart, OpLoopEnd:
		return true
	}
	return false
}

func (i Instruction) String() string {
	return string(rune(i))
}

type Instructions []Instruction

func (ins Instructions) String() string {
	var b strings.Builder
	b.Grow(len(ins))
	for _, i := range ins {
		b.WriteByte(byte(i))
	}
	return b.String()
}

// Tokenize keeps the eight instruction symbols of src in order and drops everything else.
func Tokenize(src string) (ret Instructions) {
	for i := 0; i < len(src); i++ {
		// all symbols are ASCII, so multi-byte runes never match
		if ins := Instruction(src[i]); ins.Valid() {
			ret = append(ret, ins)
		}
	}
	return
}

func TokenizeReader(r io.Reader) (Instructions, error) {
	var ret Instructions
	br := bufio.NewReader(r)
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return ret, nil
		}
		if err != nil {
			return nil, err
		}
		if ins := Instruction(c); ins.Valid() {
			ret = append(ret, ins)
		}
	}
}
