package activation

import "errors"

var (
	ErrActivationFailed = errors.New("account activation failed")
)
