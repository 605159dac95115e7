package betadiv

import "fmt"

// ErrorKind classifies why a computation was rejected.
type ErrorKind int

const (
	// ShapeMismatch: the table disagrees with the sample or OTU ids.
	ShapeMismatch ErrorKind = iota + 1
	// UnknownMetric: the metric name is not registered.
	UnknownMetric
	// MissingPhylogeneticInput: the tree or OTU ids are absent or do not
	// resolve against each other.
	MissingPhylogeneticInput
	// InvalidCounts: an abundance is negative, NaN or infinite.
	InvalidCounts
	// MetricFailure: a custom distance function returned an error.
	MetricFailure
	// DuplicateID: a sample id appears more than once.
	DuplicateID
)

func (k ErrorKind) String() string {
	switch k {
	case ShapeMismatch:
		return "shape mismatch"
	case UnknownMetric:
		return "unknown metric"
	case MissingPhylogeneticInput:
		return "missing phylogenetic input"
	case InvalidCounts:
		return "invalid counts"
	case MetricFailure:
		return "metric failure"
	case DuplicateID:
		return "duplicate sample id"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by Compute. Use errors.Is with one of the Err
// sentinels to test the kind, and errors.Unwrap for the cause.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	s := "betadiv: " + e.Kind.String()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrShapeMismatch            = &Error{Kind: ShapeMismatch}
	ErrUnknownMetric            = &Error{Kind: UnknownMetric}
	ErrMissingPhylogeneticInput = &Error{Kind: MissingPhylogeneticInput}
	ErrInvalidCounts            = &Error{Kind: InvalidCounts}
	ErrMetricFailure            = &Error{Kind: MetricFailure}
	ErrDuplicateID              = &Error{Kind: DuplicateID}
)

func newError(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}
