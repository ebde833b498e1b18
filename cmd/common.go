package cmd

import (
	"github.com/pkg/errors"

	"github.com/tuannh982/hashdict/dict"
)

const deleteStride = 7

func fill(m dict.Map[int, int], n int) error {
	for i := 0; i < n; i++ {
		if err := m.Set(i, i+10); err != nil {
			return errors.Wrapf(err, "failed to set %d", i)
		}
	}
	return nil
}

// deleteMultiples deletes every key in [0, n) divisible by stride and returns how
// many were deleted.
func deleteMultiples(m dict.Map[int, int], n int, stride int) (int, error) {
	deleted := 0
	for i := 0; i < n; i += stride {
		if err := m.Delete(i); err != nil {
			return deleted, errors.Wrapf(err, "failed to delete %d", i)
		}
		deleted++
	}
	return deleted, nil
}
