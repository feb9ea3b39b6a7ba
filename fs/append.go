package fs

import (
	"bytes"
	"context"
	"errors"
	"io"

	"lesiw.io/pathname"
)

// An AppendFS is a file system with the Append method.
type AppendFS interface {
	FS

	// Append opens a file for appending. Writes are added to the end
	// of the file. If the file does not exist, it is created with mode
	// 0644 (or the mode specified via WithFileMode).
	//
	// The returned writer must be closed when done.
	Append(ctx context.Context, name pathname.Path) (io.WriteCloser, error)
}

// Append opens the named file for appending.
// Analogous to: [os.OpenFile] with O_APPEND, echo >>.
//
// Writes are added to the end of the file. If the file does not exist,
// it is created with mode 0644 (or the mode specified via
// [WithFileMode]).
//
// If the parent directory does not exist and the provider implements
// [MkdirFS], Append automatically creates the parent directories with
// mode 0755 (or the mode specified via [WithDirMode]).
//
// If the provider does not implement [AppendFS], Append falls back to
// reading the existing file (if it exists) and creating a new file with
// the combined content on Close.
//
// The returned [io.WriteCloser] must be closed when done.
func Append(
	ctx context.Context, fsys FS, name pathname.Path,
) (io.WriteCloser, error) {
	name = name.Clean()

	afs, ok := fsys.(AppendFS)
	if !ok {
		return appendFallback(ctx, fsys, name)
	}

	f, err := afs.Append(ctx, name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, ErrNotExist) {
		return nil, err
	}
	if _, ok := fsys.(MkdirFS); !ok {
		return nil, err
	}

	dir := name.Dir()
	if dir.IsDot() || dir.Equal(name) {
		return nil, err
	}
	if merr := MkdirAll(ctx, fsys, dir); merr != nil {
		return nil, err
	}
	return afs.Append(ctx, name)
}

// appendFallback buffers writes and rewrites the whole file on Close,
// prefixed with whatever content already exists.
func appendFallback(
	ctx context.Context, fsys FS, name pathname.Path,
) (io.WriteCloser, error) {
	if _, ok := fsys.(CreateFS); !ok {
		return nil, &PathError{
			Op:   "append",
			Path: name.String(),
			Err:  ErrUnsupported,
		}
	}

	existing, err := ReadFile(ctx, fsys, name)
	if err != nil && !errors.Is(err, ErrNotExist) {
		return nil, newPathError("append", name, err)
	}

	w := &appendWriter{ctx: ctx, fsys: fsys, name: name}
	w.buf.Write(existing)
	return w, nil
}

type appendWriter struct {
	ctx  context.Context
	fsys FS
	name pathname.Path
	buf  bytes.Buffer
	done bool
}

func (w *appendWriter) Write(p []byte) (int, error) {
	if w.done {
		return 0, ErrClosed
	}
	return w.buf.Write(p)
}

func (w *appendWriter) Close() error {
	if w.done {
		return ErrClosed
	}
	w.done = true
	return WriteFile(w.ctx, w.fsys, w.name, w.buf.Bytes())
}
