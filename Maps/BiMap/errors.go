package BiMap

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched by every error returned from AtLeft and AtRight.
var ErrKeyNotFound = errors.New("bimap: key not found")

// KeyNotFoundError reports the side and key of a failed lookup.
type KeyNotFoundError struct {
	Side string // "left" or "right"
	Key  any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("bimap: %s key %v not found", e.Side, e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}
