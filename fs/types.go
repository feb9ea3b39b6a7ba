// Package fs delegates filesystem operations on [pathname.Path] values to
// pluggable providers.
//
// The lexical core in [lesiw.io/pathname] never touches the filesystem.
// This package is the boundary where real I/O happens: it defines a minimal
// [FS] interface with a single Open method, a set of optional capability
// interfaces discovered through type assertions, and package-level wrapper
// functions that call whichever capabilities a provider implements.
//
// Every operation accepts a [context.Context] as its first parameter.
// Providers backed by the local filesystem may ignore it; providers doing
// network I/O should honor cancelation. Request-scoped configuration also
// travels in the context: [WithWorkDir] sets the directory relative
// operands resolve against, and [WithFileMode] and [WithDirMode] set the
// modes used when files and directories are created.
//
// # Optional Interfaces
//
// The core [FS] interface is read-only. Everything else is optional:
//
//   - [AppendFS] - append to files
//   - [ChmodFS] - change file permissions
//   - [ChownFS] - change file ownership
//   - [ChtimesFS] - change file timestamps
//   - [CreateFS] - create or truncate files for writing
//   - [MkdirFS] - create directories
//   - [ReadDirFS] - list directory contents
//   - [ReadLinkFS] - read symlink targets and stat without following
//   - [RemoveFS] - delete files and empty directories
//   - [RenameFS] - move or rename files
//   - [StatFS] - query file metadata
//   - [SymlinkFS] - create symbolic links
//   - [TempDirFS] - native temporary directory support
//   - [TruncateFS] - change file size
//
// Wrapper functions check capabilities automatically and return
// [ErrUnsupported] when an operation is unavailable and no fallback
// exists:
//
//	w, err := fs.Create(ctx, fsys, pathname.MustNew("file.txt"))
//	if errors.Is(err, fs.ErrUnsupported) {
//	    // Provider doesn't support writing.
//	}
//
// # Fallback Implementations
//
// Several wrappers work without native support:
//
//   - [Append] reads the existing file and rewrites it with the new
//     content appended when [AppendFS] is not implemented.
//   - [Rename] copies and deletes when [RenameFS] is not implemented.
//   - [Truncate] recreates an empty file when the size is zero and
//     [TruncateFS] is not implemented.
//   - [MkdirAll], [RemoveAll], [Walk], and [Glob] are built entirely from
//     [MkdirFS], [RemoveFS], and [ReadDirFS].
//   - [RealPath] resolves symlinks through [ReadLinkFS], and degrades to
//     a lexical resolution when the provider has no symlink support.
//   - [TempDir] creates a directory with a random name using [MkdirFS]
//     when [TempDirFS] is not implemented.
//
// # Testing
//
// The [lesiw.io/pathname/fs/fstest] package provides a conformance suite
// for providers. The [lesiw.io/pathname/fs/osfs] and
// [lesiw.io/pathname/fs/memfs] subpackages are maintained reference
// providers backed by the os package and an in-memory tree.
package fs

import (
	"errors"
	"io/fs"

	"lesiw.io/pathname"
)

// DirEntry describes a directory entry.
//
// This interface extends the standard io/fs.DirEntry with path
// information. Path returns the full path of the entry when called on
// entries returned by [Walk]. For entries returned by [ReadDir], Path
// returns the zero Path, since ReadDir only provides entries within a
// single directory without path context.
type DirEntry interface {
	// Name returns the name of the file (or subdirectory) described
	// by the entry. This name is only the final element of the path
	// (the base name), not the entire path.
	Name() string

	// IsDir reports whether the entry describes a directory.
	IsDir() bool

	// Type returns the type bits for the entry. The type bits are a
	// subset of the usual FileMode bits, those returned by the
	// FileMode.Type method.
	Type() fs.FileMode

	// Info returns the FileInfo for the file or subdirectory
	// described by the entry. The returned FileInfo may be from the
	// time of the original directory read or from the time of the
	// call to Info. If the file has been removed or renamed since
	// the directory read, Info may return an error satisfying
	// errors.Is(err, ErrNotExist). If the entry denotes a symbolic
	// link, Info reports the information about the link itself, not
	// the link's target.
	Info() (FileInfo, error)

	// Path returns the full path of this entry, the walk root joined
	// with the entry's position below it. For entries returned by
	// ReadDir, this returns the zero Path.
	Path() pathname.Path
}

// A FileInfo describes a file and is returned by [Stat].
type FileInfo = fs.FileInfo

// A Mode represents a file's mode and permission bits.
// The bits have the same definition on all systems, so that
// information about files can be moved from one system
// to another portably. Not all bits apply to all systems.
// The only required bit is [ModeDir] for directories.
type Mode = fs.FileMode

// PathError records an error and the operation and file path that
// caused it.
type PathError = fs.PathError

// newPathError creates a PathError if err is not nil, otherwise returns
// nil. This is useful for wrapping errors while preserving nil returns.
func newPathError(op string, path pathname.Path, err error) error {
	if err == nil {
		return nil
	}
	return &PathError{Op: op, Path: path.String(), Err: err}
}

// Generic file system errors.
var (
	ErrInvalid     = fs.ErrInvalid
	ErrPermission  = fs.ErrPermission
	ErrExist       = fs.ErrExist
	ErrNotExist    = fs.ErrNotExist
	ErrClosed      = fs.ErrClosed
	ErrUnsupported = errors.ErrUnsupported

	// ErrNotDir indicates an operand that names an existing
	// non-directory where a directory was required.
	ErrNotDir = errors.New("not a directory")
)

// Valid values for [Mode].
//
//ignore:linelen
const (
	// The single letters are the abbreviations
	// used by the String method's formatting.
	ModeDir        = fs.ModeDir        // d: is a directory
	ModeAppend     = fs.ModeAppend     // a: append-only
	ModeExclusive  = fs.ModeExclusive  // l: exclusive use
	ModeTemporary  = fs.ModeTemporary  // T: temporary file; Plan 9 only
	ModeSymlink    = fs.ModeSymlink    // L: symbolic link
	ModeDevice     = fs.ModeDevice     // D: device file
	ModeNamedPipe  = fs.ModeNamedPipe  // p: named pipe (FIFO)
	ModeSocket     = fs.ModeSocket     // S: Unix domain socket
	ModeSetuid     = fs.ModeSetuid     // u: setuid
	ModeSetgid     = fs.ModeSetgid     // g: setgid
	ModeCharDevice = fs.ModeCharDevice // c: Unix character device, when ModeDevice is set
	ModeSticky     = fs.ModeSticky     // t: sticky
	ModeIrregular  = fs.ModeIrregular  // ?: non-regular file; nothing else is known about this file

	// Mask for the type bits. For regular files, none will be set.
	ModeType = fs.ModeType

	ModePerm = fs.ModePerm // Unix permission bits
)
