package bfconfigs

import (
	"fmt"
	"runtime"
	"time"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

const (
	DefaultTimeout           = 5 * time.Second
	DefaultPrivilegedTimeout = 60 * time.Second
)

var (
	timeoutFlag           = cmds.Var[int]("-timeout")
	privilegedTimeoutFlag = cmds.Var[int]("-privileged-timeout")
	cellWidthFlag         = cmds.Var[int]("-cell-width")
	maxConcurrentFlag     = cmds.Var[int]("-max-concurrent")
	tapFlag               = cmds.Switch("-tap")
)

// Timeout is the execution budget of ordinary callers.
type Timeout time.Duration

func (Module) Timeout(
	loader configs.Loader,
) Timeout {
	ms := vars.FirstNonZero(
		*timeoutFlag,
		configs.First[int](loader, "timeout_ms"),
	)
	if ms <= 0 {
		return Timeout(DefaultTimeout)
	}
	return Timeout(time.Duration(ms) * time.Millisecond)
}

// PrivilegedTimeout is the execution budget of privileged callers.
type PrivilegedTimeout time.Duration

func (Module) PrivilegedTimeout(
	loader configs.Loader,
) PrivilegedTimeout {
	ms := vars.FirstNonZero(
		*privilegedTimeoutFlag,
		configs.First[int](loader, "privileged_timeout_ms"),
	)
	if ms <= 0 {
		return PrivilegedTimeout(DefaultPrivilegedTimeout)
	}
	return PrivilegedTimeout(time.Duration(ms) * time.Millisecond)
}

// CellWidth is the bit width cells wrap at, zero for unrestricted cells.
type CellWidth int

func (Module) CellWidth(
	loader configs.Loader,
) CellWidth {
	width := vars.FirstNonZero(
		*cellWidthFlag,
		configs.First[int](loader, "cell_width"),
	)
	switch width {
	case 0, 8, 16, 32:
	default:
		panic(fmt.Errorf("bad cell width: %d", width))
	}
	return CellWidth(width)
}

type MaxConcurrent int

func (Module) MaxConcurrent(
	loader configs.Loader,
) MaxConcurrent {
	return MaxConcurrent(vars.FirstNonZero(
		max(*maxConcurrentFlag, 0),
		configs.First[int](loader, "max_concurrent"),
		runtime.NumCPU(),
	))
}

type TapOnFailure bool

func (Module) TapOnFailure(
	loader configs.Loader,
) TapOnFailure {
	return TapOnFailure(*tapFlag || configs.First[bool](loader, "tap_on_failure"))
}
