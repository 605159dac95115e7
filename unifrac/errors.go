package unifrac

import "errors"

var (
	// ErrNilTree is returned when no tree is supplied.
	ErrNilTree = errors.New("unifrac: nil tree")

	// ErrMissingTip is returned when an OTU identifier names no tip.
	ErrMissingTip = errors.New("unifrac: otu id not found among tree tips")

	// ErrDuplicateOTU is returned when an OTU identifier is repeated.
	ErrDuplicateOTU = errors.New("unifrac: duplicate otu id")

	// ErrDuplicateTip is returned when an OTU identifier matches several tips.
	ErrDuplicateTip = errors.New("unifrac: otu id matches more than one tip")

	// ErrCountLength is returned when a count vector does not have one
	// entry per OTU identifier.
	ErrCountLength = errors.New("unifrac: count vector length does not match otu ids")
)
