// Package mipserr defines the single error hierarchy shared by the
// assembler, executor and interpreter front ends.
package mipserr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which of the fatal error categories in spec §7 an
// error belongs to. Front ends switch on Kind to pick an exit code;
// nothing below the front end ever recovers from one.
type Kind int

const (
	// ParseError covers lexing, directive, label and operand-shape
	// failures raised by the assembler.
	ParseError Kind = iota
	// UnknownInstruction covers an undecodable 32-bit word or an
	// opcode/funct the executor has no handler for. An unrecognized
	// mnemonic in assembly source is a ParseError.
	UnknownInstruction
	// MemoryAccessViolation covers an out-of-bounds byte/half/word
	// access.
	MemoryAccessViolation
	// PcOutOfBounds covers a program counter that does not address a
	// valid 4-byte instruction slot.
	PcOutOfBounds
	// StepLimitExceeded covers the runtime loop's watchdog bound.
	StepLimitExceeded
	// UnknownSyscall covers a trap immediate with no defined handler.
	UnknownSyscall
	// IoError covers file/stream and usage failures in a front end, and
	// read/write failures of the print and read syscalls.
	IoError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case UnknownInstruction:
		return "UnknownInstruction"
	case MemoryAccessViolation:
		return "MemoryAccessViolation"
	case PcOutOfBounds:
		return "PcOutOfBounds"
	case StepLimitExceeded:
		return "StepLimitExceeded"
	case UnknownSyscall:
		return "UnknownSyscall"
	case IoError:
		return "IoError"
	default:
		return "UnknownError"
	}
}

// Error is the single concrete error type raised by every package in
// this module. It carries a Kind for exit-code dispatch, an optional
// wrapped cause, and, thanks to github.com/pkg/errors, a stack trace
// captured at the point of construction for use in verbose
// diagnostics.
type Error struct {
	Kind  Kind
	msg   string
	cause error // nil unless built via Wrap
	stack error // pkg/errors value carrying the construction-site stack trace
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Unwrap exposes the wrapped cause (if any) to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// StackTrace satisfies pkg/errors' stackTracer interface. The front
// ends in this module print only Error(), never the trace.
func (e *Error) StackTrace() errors.StackTrace {
	type stackTracer interface{ StackTrace() errors.StackTrace }
	if st, ok := e.stack.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

// New builds a Kind-tagged error with a stack trace rooted here.
func New(kind Kind, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: kind, msg: msg, stack: errors.New(msg)}
}

// Wrap annotates an existing error with a Kind and message while
// preserving (or creating) a stack trace.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: kind, msg: msg, cause: cause, stack: errors.WithStack(cause)}
}

// As reports whether err (or something it wraps) is an *Error of the
// given Kind.
func As(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ExitCode maps a Kind to the process exit code spec.md §6 assigns to
// its owning front end: 1 for usage/parse failures surfaced by the
// assembler, 2 for everything that happens once the core is running.
func ExitCode(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return 2
	}
	if e.Kind == ParseError {
		return 1
	}
	return 2
}
