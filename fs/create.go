package fs

import (
	"context"
	"errors"
	"io"

	"lesiw.io/pathname"
)

// A CreateFS is a file system with the Create method.
type CreateFS interface {
	FS

	// Create creates a new file or truncates an existing file for
	// writing. If the file already exists, it is truncated. If the
	// file does not exist, it is created with mode 0644 (or the mode
	// specified via WithFileMode).
	//
	// The returned writer must be closed when done. The writer may
	// also implement io.Seeker, io.WriterAt, or other interfaces
	// depending on the implementation.
	Create(ctx context.Context, name pathname.Path) (io.WriteCloser, error)
}

// Create creates or truncates the named file for writing.
// Analogous to: [os.Create], touch, echo >, 9P Tcreate, S3 PutObject.
//
// If the file already exists, it is truncated. If the file does not
// exist, it is created with mode 0644 (or the mode specified via
// [WithFileMode]).
//
// If the parent directory does not exist and the provider implements
// [MkdirFS], Create automatically creates the parent directories with
// mode 0755 (or the mode specified via [WithDirMode]).
//
// The returned [io.WriteCloser] must be closed when done.
//
// Requires: [CreateFS]
func Create(
	ctx context.Context, fsys FS, name pathname.Path,
) (io.WriteCloser, error) {
	name = name.Clean()

	cfs, ok := fsys.(CreateFS)
	if !ok {
		return nil, &PathError{
			Op:   "create",
			Path: name.String(),
			Err:  ErrUnsupported,
		}
	}

retry:
	f, err := cfs.Create(ctx, name)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, ErrNotExist) {
		dir := name.Dir()
		if dir.IsDot() || dir.Equal(name) {
			return nil, err
		}
		if merr := MkdirAll(ctx, fsys, dir); merr != nil {
			return nil, errors.Join(err, merr)
		}
		goto retry
	}
	return f, err
}
