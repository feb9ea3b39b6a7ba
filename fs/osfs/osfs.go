// Package osfs implements lesiw.io/pathname/fs.FS using the os package.
//
// The filesystem is rooted: every operand is interpreted as a path
// inside the root directory given to [New], with leading ".." components
// absorbed at the root so operands cannot escape it. Relative operands
// are resolved against any working directory carried in the context via
// [lesiw.io/pathname/fs.WithWorkDir], then against the root.
//
// The lesiw.io/pathname/fs package uses context.Context throughout its
// API to support cancelation for providers that do I/O over a network.
// Since osfs calls straight into the os package, cancelation does not
// apply and the context is only consulted for request-scoped values
// (working directory and file modes).
package osfs

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var slash = pathname.MustNew(pathname.Root)

// FS implements lesiw.io/pathname/fs.FS using the OS filesystem.
// It supports every optional interface defined in lesiw.io/pathname/fs.
//
// FS also implements io.Closer. If the filesystem was created with an
// empty root (which creates a temporary directory), Close removes the
// temporary directory.
type FS struct {
	root      string
	cleanupFn func() error
}

// New creates a new OS filesystem rooted at the specified directory.
//
// If root is empty (""), a temporary directory is created and the
// filesystem is rooted there; call Close to remove it when done. If
// root is ".", the current working directory is used.
func New(root string) (*FS, error) {
	var cleanupFn func() error

	switch root {
	case "":
		var err error
		root, err = os.MkdirTemp("", "osfs-*")
		if err != nil {
			return nil, fmt.Errorf("creating temp directory: %w", err)
		}
		cleanupFn = func() error {
			return os.RemoveAll(root)
		}
	case ".":
		var err error
		root, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	return &FS{root: root, cleanupFn: cleanupFn}, nil
}

// NewTemp creates a new OS filesystem rooted at a fresh temporary
// directory. It panics if the directory cannot be created; use
// [New]("") to handle the error instead. Close removes the directory.
func NewTemp() *FS {
	fsys, err := New("")
	if err != nil {
		panic(err)
	}
	return fsys
}

// resolve converts an operand to an absolute OS path inside the root.
// Relative operands resolve against any context working directory
// first. Appending to the root absorbs leading "..", so no operand can
// name anything outside it.
func (f *FS) resolve(ctx context.Context, name pathname.Path) string {
	p := name
	if p.IsRel() {
		if wd := fs.WorkDir(ctx); wd.String() != "" {
			p = wd.Append(p)
		}
	}
	p = slash.Append(p)
	if p.IsRoot() {
		return f.root
	}
	return filepath.Join(f.root, strings.TrimPrefix(p.String(), "/"))
}

// insideRoot converts an absolute OS path under the root back to a
// filesystem operand.
func (f *FS) insideRoot(osPath string) pathname.Path {
	rel := strings.TrimPrefix(osPath, f.root)
	if rel == "" {
		return slash
	}
	return pathname.MustNew(rel)
}

// Open implements fs.FS.
func (f *FS) Open(
	ctx context.Context, name pathname.Path,
) (io.ReadCloser, error) {
	return os.Open(f.resolve(ctx, name))
}

// Create implements fs.CreateFS.
func (f *FS) Create(
	ctx context.Context, name pathname.Path,
) (io.WriteCloser, error) {
	perm := fs.FileMode(ctx)
	return os.OpenFile(
		f.resolve(ctx, name),
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		perm,
	)
}

// Append implements fs.AppendFS.
func (f *FS) Append(
	ctx context.Context, name pathname.Path,
) (io.WriteCloser, error) {
	perm := fs.FileMode(ctx)
	return os.OpenFile(
		f.resolve(ctx, name),
		os.O_WRONLY|os.O_CREATE|os.O_APPEND,
		perm,
	)
}

// Stat implements fs.StatFS.
func (f *FS) Stat(
	ctx context.Context, name pathname.Path,
) (fs.FileInfo, error) {
	return os.Stat(f.resolve(ctx, name))
}

// ReadDir implements fs.ReadDirFS. Entries are yielded in lexical
// order, as returned by [os.ReadDir].
func (f *FS) ReadDir(
	ctx context.Context, name pathname.Path,
) iter.Seq2[fs.DirEntry, error] {
	return func(yield func(fs.DirEntry, error) bool) {
		entries, err := os.ReadDir(f.resolve(ctx, name))
		if err != nil {
			yield(nil, mapErr(err))
			return
		}
		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil {
				yield(nil, err)
				return
			}
			wrapped := &dirEntry{
				name:  entry.Name(),
				isDir: entry.IsDir(),
				typ:   fs.Mode(entry.Type()),
				info:  info,
			}
			if !yield(wrapped, nil) {
				return
			}
		}
	}
}

// dirEntry implements fs.DirEntry without path context (for ReadDir).
type dirEntry struct {
	name  string
	isDir bool
	typ   fs.Mode
	info  fs.FileInfo
}

func (de *dirEntry) Name() string               { return de.name }
func (de *dirEntry) IsDir() bool                { return de.isDir }
func (de *dirEntry) Type() fs.Mode              { return de.typ }
func (de *dirEntry) Info() (fs.FileInfo, error) { return de.info, nil }
func (de *dirEntry) Path() pathname.Path        { return pathname.Path{} }

// Remove implements fs.RemoveFS.
func (f *FS) Remove(ctx context.Context, name pathname.Path) error {
	return os.Remove(f.resolve(ctx, name))
}

// Mkdir implements fs.MkdirFS.
func (f *FS) Mkdir(ctx context.Context, name pathname.Path) error {
	return os.Mkdir(f.resolve(ctx, name), fs.DirMode(ctx))
}

// Rename implements fs.RenameFS.
func (f *FS) Rename(
	ctx context.Context, oldname, newname pathname.Path,
) error {
	return os.Rename(f.resolve(ctx, oldname), f.resolve(ctx, newname))
}

// Truncate implements fs.TruncateFS.
func (f *FS) Truncate(
	ctx context.Context, name pathname.Path, size int64,
) error {
	return os.Truncate(f.resolve(ctx, name), size)
}

// Chtimes implements fs.ChtimesFS.
func (f *FS) Chtimes(
	ctx context.Context, name pathname.Path, atime, mtime time.Time,
) error {
	return os.Chtimes(f.resolve(ctx, name), atime, mtime)
}

// Symlink implements fs.SymlinkFS. The target oldname is stored
// verbatim; it is not resolved against the root, so relative targets
// resolve relative to the link's own directory as usual.
func (f *FS) Symlink(
	ctx context.Context, oldname, newname pathname.Path,
) error {
	return os.Symlink(oldname.String(), f.resolve(ctx, newname))
}

// ReadLink implements fs.ReadLinkFS.
func (f *FS) ReadLink(
	ctx context.Context, name pathname.Path,
) (pathname.Path, error) {
	target, err := os.Readlink(f.resolve(ctx, name))
	if err != nil {
		return pathname.Path{}, err
	}
	return pathname.New(target)
}

// Lstat implements fs.ReadLinkFS.
func (f *FS) Lstat(
	ctx context.Context, name pathname.Path,
) (fs.FileInfo, error) {
	return os.Lstat(f.resolve(ctx, name))
}

// TempDir implements fs.TempDirFS. The directory is created inside the
// filesystem root and its rooted path is returned.
func (f *FS) TempDir(
	ctx context.Context, prefix string,
) (pathname.Path, error) {
	if prefix == "" {
		prefix = "tmp"
	}
	dir, err := os.MkdirTemp(f.root, prefix+"-*")
	if err != nil {
		return pathname.Path{}, err
	}
	return f.insideRoot(dir), nil
}

// Close removes the temporary directory if this filesystem was created
// with an empty root. Otherwise Close does nothing and returns nil.
//
// Close implements io.Closer.
func (f *FS) Close() error {
	if f.cleanupFn != nil {
		return f.cleanupFn()
	}
	return nil
}

// Compile-time interface checks.
var (
	_ fs.FS         = (*FS)(nil)
	_ fs.CreateFS   = (*FS)(nil)
	_ fs.AppendFS   = (*FS)(nil)
	_ fs.RemoveFS   = (*FS)(nil)
	_ fs.MkdirFS    = (*FS)(nil)
	_ fs.RenameFS   = (*FS)(nil)
	_ fs.TruncateFS = (*FS)(nil)
	_ fs.ChtimesFS  = (*FS)(nil)
	_ fs.StatFS     = (*FS)(nil)
	_ fs.ReadDirFS  = (*FS)(nil)
	_ fs.SymlinkFS  = (*FS)(nil)
	_ fs.ReadLinkFS = (*FS)(nil)
	_ fs.TempDirFS  = (*FS)(nil)
	_ io.Closer     = (*FS)(nil)
)
