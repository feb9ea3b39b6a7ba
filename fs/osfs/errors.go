package osfs

import (
	"errors"
	"syscall"

	"lesiw.io/pathname/fs"
)

// mapErr translates OS-specific errno values to the sentinels defined
// by lesiw.io/pathname/fs where io/fs has no equivalent of its own.
func mapErr(err error) error {
	if errors.Is(err, syscall.ENOTDIR) {
		return fs.ErrNotDir
	}
	return err
}
