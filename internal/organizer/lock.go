package organizer

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/jdoss/filetidy/internal/common"
)

// acquireRunLock takes an exclusive flock inside the organizing root so
// concurrent runs against the same directory serialize instead of racing
// over the same files. Returns the unlock function.
func acquireRunLock(root string) (func(), error) {
	lock := flock.New(filepath.Join(root, common.LockFileName))

	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", root, err)
	}
	if !acquired {
		return nil, common.NewUserError(root, common.ErrRunLocked)
	}

	return func() { _ = lock.Unlock() }, nil
}
