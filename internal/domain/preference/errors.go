package preference

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid preference status")
)
