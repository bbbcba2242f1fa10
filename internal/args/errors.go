package args

import (
	"errors"
	"fmt"

	"clikit/internal/diag"
	"clikit/internal/messages"
)

// ErrorKind classifies command-line errors.
type ErrorKind uint8

const (
	DuplicatedOptionName ErrorKind = iota + 1
	OptionValueBeforeOptionName
	NoMatchingSubcmdName
)

func (k ErrorKind) String() string {
	switch k {
	case DuplicatedOptionName:
		return "duplicated option name"
	case OptionValueBeforeOptionName:
		return "option value before option name"
	case NoMatchingSubcmdName:
		return "no matching subcommand name"
	}
	return "unknown command error"
}

// Sentinels for errors.Is; every *Error matches the sentinel of its kind.
var (
	ErrDuplicatedOptionName        = errors.New("duplicated option name")
	ErrOptionValueBeforeOptionName = errors.New("option value before option name")
	ErrNoMatchingSubcmdName        = errors.New("no matching subcommand name")
)

// Error is a command-line error. Token is the offending option key, option
// value or subcommand name.
type Error struct {
	Kind  ErrorKind
	Token string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Token)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrDuplicatedOptionName:
		return e.Kind == DuplicatedOptionName
	case ErrOptionValueBeforeOptionName:
		return e.Kind == OptionValueBeforeOptionName
	case ErrNoMatchingSubcmdName:
		return e.Kind == NoMatchingSubcmdName
	}
	return false
}

// Diagnostic maps the error to its log entry.
func (e *Error) Diagnostic() diag.Log {
	var title, label string
	switch e.Kind {
	case DuplicatedOptionName:
		title, label = messages.CmdErrDuplicatedOptionName, messages.CmdOptionName
	case OptionValueBeforeOptionName:
		title, label = messages.CmdErrOptionValueBeforeOptionName, messages.CmdOptionValue
	case NoMatchingSubcmdName:
		title, label = messages.CmdErrNoMatchingSubcmdName, messages.CmdSubcmdName
	default:
		title, label = messages.CmdErrInternalLoadFailure, messages.CmdCause
	}
	return diag.Error(messages.Ref(title)).
		With(messages.Field(label, e.Token)).
		WithOptional(messages.Field(messages.ConsoleErrorID, title))
}
