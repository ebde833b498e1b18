package collections

import "github.com/pkg/errors"

var (
	ErrValueExisted    = errors.New("value existed")
	ErrValueNotExisted = errors.New("value not existed")
)
