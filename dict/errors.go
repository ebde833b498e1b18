package dict

import "github.com/pkg/errors"

var (
	ErrKeyNotFound        = errors.New("key not found")
	ErrTableFull          = errors.New("table full")
	ErrInvariantViolation = errors.New("invariant violation")
)

func keyNotFound[K any](k K) error {
	return errors.WithMessagef(ErrKeyNotFound, "key %v", k)
}
