package variant

import (
	"errors"
	"fmt"
)

var ErrDecode = errors.New("decode error")

// Errorf builds an ErrDecode wrapping error pointing at the offending path in the value tree
func Errorf(path string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrDecode, path, fmt.Sprintf(format, args...))
}
