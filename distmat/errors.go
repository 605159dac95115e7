package distmat

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSquare is returned when the data is not an n×n matrix.
	ErrNotSquare = errors.New("distmat: matrix is not square")

	// ErrAsymmetric is returned when data[i][j] and data[j][i] differ by
	// more than Tolerance.
	ErrAsymmetric = errors.New("distmat: matrix is not symmetric")

	// ErrNonHollow is returned when a diagonal entry is not zero.
	ErrNonHollow = errors.New("distmat: diagonal is not zero")

	// ErrIDCount is returned when the number of ids differs from the
	// matrix dimension.
	ErrIDCount = errors.New("distmat: number of ids does not match matrix dimension")

	// ErrDuplicateID is returned when an id appears more than once.
	ErrDuplicateID = errors.New("distmat: duplicate id")

	// ErrUnknownID is returned by lookups for an id not in the matrix.
	ErrUnknownID = errors.New("distmat: unknown id")

	// ErrFormat is wrapped by every error describing malformed lsmat input.
	ErrFormat = errors.New("distmat: malformed lsmat")
)

// FormatError reports the line at which lsmat parsing failed.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("distmat: lsmat: line %d: %s", e.Line, e.Msg)
}

func (e *FormatError) Unwrap() error { return ErrFormat }
