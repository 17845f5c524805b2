package shift

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid shift status")
)
