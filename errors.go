package traverse

import (
	"errors"

	"golang.org/x/xerrors"
)

// Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.
//
//	const ErrSomething traverse.Error = "something is an error"
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

// Wrap will bundle together another error value with this Error,
// and return an error value that contains both of them.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return wrapper{Owner: err, Wrapped: oth}
}

// F will format the error value
func (err Error) F(format string, a ...any) error { return err.Wrap(xerrors.Errorf(format, a...)) }

// ErrExhausted is returned by Cursor.Next after the sequence ran out of elements.
// Exhaustion is a normal terminal condition, not a transient fault;
// a well formed caller guards with HasNext instead of retrying.
const ErrExhausted Error = "exhausted cursor"

type wrapper struct {
	Owner   Error
	Wrapped error // must be not nil
}

func (w wrapper) Error() string {
	return "[" + string(w.Owner) + "] " + w.Wrapped.Error()
}

func (w wrapper) As(target any) bool {
	return errors.As(w.Owner, target) || errors.As(w.Wrapped, target)
}

func (w wrapper) Is(target error) bool {
	return errors.Is(w.Owner, target) || errors.Is(w.Wrapped, target)
}
