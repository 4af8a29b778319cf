package bfvm

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnmatchedLoop = errors.New("unmatched '['")
	ErrCellUnderflow = errors.New("negative cell index")
	ErrTimeout       = errors.New("execution timed out")
)

type ParseError struct {
	PC int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unmatched '[' at PC=%d", e.PC)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrUnmatchedLoop
}

type CellUnderflowError struct {
	PC int
}

func (e *CellUnderflowError) Error() string {
	return fmt.Sprintf("negative cell index at PC=%d", e.PC)
}

func (e *CellUnderflowError) Is(target error) bool {
	return target == ErrCellUnderflow
}

type TimeoutError struct {
	Timeout time.Duration
	PC      int
	Steps   int64
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("execution timed out after %v at PC=%d (%d steps)", e.Timeout, e.PC, e.Steps)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}
