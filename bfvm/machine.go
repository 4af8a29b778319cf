package bfvm

import (
	"context"
	"fmt"
	"time"
)

type Cell = int64

const (
	DefaultTapeSize = 30000
	tapeGrowth      = 4
)

// Machine holds the mutable state of one execution.
type Machine struct {
	Program     *Program
	PC          int
	CP          int
	Cells       []Cell
	Input       []rune
	InputCursor int
	Output      Output
	Steps       int64

	timeout  time.Duration
	cellMask Cell
	started  time.Time
}

type MachineOption func(*Machine)

// WithTimeout sets the wall-clock budget. Non-positive means unlimited.
func WithTimeout(timeout time.Duration) MachineOption {
	return func(m *Machine) {
		m.timeout = timeout
	}
}

// WithCellWidth makes cells wrap as unsigned integers of the given bit width.
// Zero keeps unrestricted cells.
func WithCellWidth(bits int) MachineOption {
	return func(m *Machine) {
		if bits <= 0 || bits >= 64 {
			m.cellMask = 0
			return
		}
		m.cellMask = Cell(1)<<bits - 1
	}
}

func WithTapeSize(n int) MachineOption {
	return func(m *Machine) {
		if n < 1 {
			n = 1
		}
		m.Cells = make([]Cell, n)
	}
}

func NewMachine(program *Program, input string, options ...MachineOption) *Machine {
	m := &Machine{
		Program: program,
		Input:   []rune(input),
	}
	for _, option := range options {
		option(m)
	}
	if m.Cells == nil {
		m.Cells = make([]Cell, DefaultTapeSize)
	}
	return m
}

func (m *Machine) Run(ctx context.Context) error {
	m.started = time.Now()
	code := m.Program.Instructions
	done := ctx.Done()

	for m.PC < len(code) {
		if m.timeout > 0 && time.Since(m.started) > m.timeout {
			return &TimeoutError{
				Timeout: m.timeout,
				PC:      m.PC,
				Steps:   m.Steps,
			}
		}
		select {
		case <-done:
			return fmt.Errorf("execution cancelled at PC=%d: %w", m.PC, ctx.Err())
		default:
		}

		if err := m.step(code[m.PC]); err != nil {
			return err
		}
		m.PC++
		m.Steps++
	}

	return nil
}

func (m *Machine) Elapsed() time.Duration {
	if m.started.IsZero() {
		return 0
	}
	return time.Since(m.started)
}

func (m *Machine) step(ins Instruction) error {
	switch ins {

	case OpIncr:
		m.Cells[m.CP] = m.wrap(m.Cells[m.CP] + 1)

	case OpDecr:
		m.Cells[m.CP] = m.wrap(m.Cells[m.CP] - 1)

	case OpNext:
		if m.CP+1 >= len(m.Cells) {
			m.Cells = append(m.Cells, make([]Cell, tapeGrowth)...)
		}
		m.CP++

	case OpPrev:
		if m.CP == 0 {
			return &CellUnderflowError{
				PC: m.PC,
			}
		}
		m.CP--

	case OpOutput:
		m.Output = append(m.Output, m.Cells[m.CP])

	case OpInput:
		if m.InputCursor < len(m.Input) {
			m.Cells[m.CP] = m.wrap(Cell(m.Input[m.InputCursor]))
			m.InputCursor++
		} else {
			// EOF
			m.Cells[m.CP] = 0
		}

	case OpLoopStart:
		// lands on the matching ']', the PC increment in Run steps past it
		if m.Cells[m.CP] == 0 {
			m.PC = m.Program.JumpTable[m.PC]
		}

	case OpLoopEnd:
		if m.Cells[m.CP] != 0 {
			m.PC = m.Program.JumpTable[m.PC]
		}

	}
	return nil
}

func (m *Machine) wrap(v Cell) Cell {
	if m.cellMask != 0 {
		return v & m.cellMask
	}
	return v
}

// Inspect summarizes the machine state around the cell pointer.
func (m *Machine) Inspect() map[string]any {
	const window = 8
	from := max(0, m.CP-window)
	to := min(len(m.Cells), m.CP+window+1)
	var current string
	if m.PC < len(m.Program.Instructions) {
		current = m.Program.Instructions[m.PC].String()
	}
	return map[string]any{
		"program":      m.Program.Name,
		"pc":           m.PC,
		"cp":           m.CP,
		"instruction":  current,
		"steps":        m.Steps,
		"tape_length":  len(m.Cells),
		"window_start": from,
		"window":       append([]Cell(nil), m.Cells[from:to]...),
		"input_cursor": m.InputCursor,
		"output":       m.Output.Text(),
		"cell": func(i int) Cell {
			if i < 0 || i >= len(m.Cells) {
				return 0
			}
			return m.Cells[i]
		},
	}
}
