package census

import "errors"

// Errors
var (
	ErrPreconditionViolation = errors.New("census precondition violated")
	ErrUnknownClassifier     = errors.New("unknown classifier")
)
