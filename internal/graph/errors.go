package graph

import "errors"

// Errors
var (
	ErrInvalidIndex     = errors.New("invalid node index")
	ErrInvalidPartition = errors.New("invalid layer partition")
	ErrTypeMismatch     = errors.New("not a dyadcensus graph")
	ErrGraphNotFound    = errors.New("graph not found")
	ErrBadDocument      = errors.New("bad graph document")
)
