package timing

import (
	"errors"
	"fmt"
)

// ErrorKind classifies recorder failures so callers can tell a
// retryable storage fault apart from a live-meeting driver bug.
type ErrorKind int

const (
	// KindSequence: the event protocol was violated (segment opened
	// while another is open, stop with nothing open, end with a
	// segment still running). Caller bug; abort the operation.
	KindSequence ErrorKind = iota
	// KindPrecondition: a required input was not initialised, e.g. the
	// clock was read before being set.
	KindPrecondition
	// KindStorage: the persistence boundary failed; may be retried.
	KindStorage
)

func (k ErrorKind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindPrecondition:
		return "precondition"
	case KindStorage:
		return "storage"
	}
	return "unknown"
}

// Error is a classified recorder failure.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("timing: %s: %s: %v", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("timing: %s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.err }

func sequenceError(format string, args ...any) *Error {
	return &Error{Kind: KindSequence, msg: fmt.Sprintf(format, args...)}
}

func preconditionError(msg string, err error) *Error {
	return &Error{Kind: KindPrecondition, msg: msg, err: err}
}

func storageError(msg string, err error) *Error {
	return &Error{Kind: KindStorage, msg: msg, err: err}
}

// IsKind reports whether err is a timing error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == kind
}
