package bfvm

import (
	"context"
	"time"
)

// Program is a tokenized and bracket-checked instruction sequence.
// It is never mutated after construction and can be shared by concurrent executions.
type Program struct {
	Name         string
	Instructions Instructions
	JumpTable    JumpTable
}

func NewProgram(name string, ins Instructions) (*Program, error) {
	table, err := BuildJumpTable(ins)
	if err != nil {
		return nil, err
	}
	return &Program{
		Name:         name,
		Instructions: ins,
		JumpTable:    table,
	}, nil
}

func Compile(name string, src string) (*Program, error) {
	return NewProgram(name, Tokenize(src))
}

// Execute runs the program on a fresh machine.
// Output is returned only when the program terminates without error.
func (p *Program) Execute(ctx context.Context, input string, timeout time.Duration) (Output, error) {
	m := NewMachine(p, input, WithTimeout(timeout))
	if err := m.Run(ctx); err != nil {
		return nil, err
	}
	return m.Output, nil
}
