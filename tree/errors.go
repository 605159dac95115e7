package tree

import (
	"errors"
	"fmt"
)

// ErrNewickFormat is wrapped by every error describing malformed Newick input.
var ErrNewickFormat = errors.New("tree: malformed newick")

// FormatError reports where Newick parsing failed.
type FormatError struct {
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("tree: newick: offset %d: %s", e.Offset, e.Msg)
}

func (e *FormatError) Unwrap() error { return ErrNewickFormat }
