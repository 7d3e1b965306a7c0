package cursors

import (
	"golang.org/x/xerrors"
)

// Errorf behaves exactly like xerrors.Errorf but returns the error wrapped as a cursor.
func Errorf[T any](format string, a ...any) *ErrorCursor[T] {
	return Error[T](xerrors.Errorf(format, a...))
}
