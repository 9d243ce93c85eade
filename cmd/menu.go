package cmd

import (
	"fmt"

	"github.com/yuminhwan/calculator/internal/calcerrors"
)

type MenuType int

const (
	MenuCalculate MenuType = iota + 1
	MenuHistory
	MenuExit
)

var menuCommands = map[string]MenuType{
	"1": MenuCalculate,
	"2": MenuHistory,
	"3": MenuExit,
}

// ParseMenu maps a menu command to its MenuType.
func ParseMenu(command string) (MenuType, error) {
	if m, ok := menuCommands[command]; ok {
		return m, nil
	}
	return 0, calcerrors.ErrUnknownMenu
}

// String implements fmt.Stringer.
func (m MenuType) String() string {
	switch m {
	case MenuCalculate:
		return "calculate"
	case MenuHistory:
		return "history"
	case MenuExit:
		return "exit"
	}
	return fmt.Sprintf("MenuType(%d)", int(m))
}

type SessionState int

const (
	StateRunning SessionState = iota
	StateEnded
)

// Next returns the state after m was handled. Only MenuExit ends a session.
func (s SessionState) Next(m MenuType) SessionState {
	if s == StateEnded || m == MenuExit {
		return StateEnded
	}
	return StateRunning
}

var _ fmt.Stringer = MenuType(0)
