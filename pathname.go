// Package pathname implements a value type for slash-separated filesystem
// paths and a purely lexical algebra over it.
//
// A [Path] wraps a piece of text and never touches the filesystem. All
// operations in this package are lexical: they compute with the text alone
// and do not account for symbolic links, mount points, working directories,
// or whether any file exists. Filesystem access lives in the
// [lesiw.io/pathname/fs] subpackage, which consumes Path values and
// delegates to pluggable providers.
//
// The separator is always a forward slash. Windows drive letters and
// backslash separators are out of scope.
//
// # Construction
//
// Paths are constructed with [New], which validates exactly one property:
// the text may not contain a NUL byte. No normalization happens at
// construction time. A Path converts back to its text with
// [Path.String] at any time, losslessly.
//
//	p, err := pathname.New("/usr//local/../bin")
//	p.String() // "/usr//local/../bin", verbatim
//
// # Components
//
// Splitting on the separator yields the path's components: the ordered
// non-empty segments of the text. Absolute paths carry a leading root
// component "/". Empty segments produced by doubled or trailing slashes
// are not components.
//
//	pathname.MustNew("/a//b/").Components() // ["/", "a", "b"]
//
// # Normalization
//
// [Path.Clean] produces the canonical form of a path: no "." components,
// no redundant separators, and no ".." component that can be eliminated
// against a preceding real component. Cleaning never produces an empty
// path; text that reduces to nothing cleans to ".". Cleaning is
// idempotent.
//
// # Mutation
//
// Path values are immutable by default. Every transforming operation
// returns a new Path and leaves the receiver untouched. The two
// exceptions are explicit: [Path.CleanInPlace] and [Path.AppendInPlace]
// mutate a uniquely owned value through a pointer receiver and return the
// receiver. Callers that share a Path should use the value forms, or copy
// before mutating.
//
// # Ordering
//
// [Path.Compare] orders paths so that a directory sorts immediately
// before its own descendants, ahead of any sibling whose name shares the
// directory's name as a string prefix. [Path.Equal] compares canonical
// forms, so "a//b" equals "a/b" while "a" never equals "/a".
package pathname

import (
	"errors"
	"fmt"
	"strings"
)

// Path component constants.
const (
	Root   = "/"  // the root component of an absolute path
	Dot    = "."  // the current directory
	DotDot = ".." // the parent directory
)

// SymloopMax is the maximum number of symbolic link expansions permitted
// while resolving a single path. Resolution is a filesystem operation and
// lives in [lesiw.io/pathname/fs.RealPath]; the bound is defined here
// beside the other path constants it belongs with.
const SymloopMax = 8

// Errors returned by operations in this package. All are matched with
// [errors.Is]; returned values wrap these sentinels with operand context.
var (
	// ErrInvalidPath indicates text that cannot form a Path. The only
	// invalid texts are those containing a NUL byte.
	ErrInvalidPath = errors.New("invalid path")

	// ErrMixedAbsRel indicates a relative-path computation across one
	// absolute and one relative operand, which share no frame of
	// reference.
	ErrMixedAbsRel = errors.New("mixed absolute and relative paths")

	// ErrDotDotBase indicates a base path that still requires upward
	// traversal after common-prefix stripping, which cannot be resolved
	// lexically.
	ErrDotDotBase = errors.New(`base path may not contain ".."`)
)

// A Path is a slash-separated filesystem path, absolute or relative.
//
// The zero value is the empty path, which is relative and cleans to ".".
// Path values are comparable with ==, which tests for textual identity;
// use [Path.Equal] for equivalence of canonical forms.
type Path struct {
	text string
}

// New returns a Path wrapping text verbatim.
//
// The only rejected input is text containing a NUL byte, reported as
// [ErrInvalidPath]. Everything else is preserved exactly, including
// redundant separators and "." or ".." segments; use [Path.Clean] to
// normalize.
func New(text string) (Path, error) {
	if strings.IndexByte(text, 0) >= 0 {
		return Path{}, fmt.Errorf("%w: %q", ErrInvalidPath, text)
	}
	return Path{text: text}, nil
}

// MustNew is like [New] but panics if text is not a valid path.
// It simplifies the construction of paths from literals.
func MustNew(text string) Path {
	p, err := New(text)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the path's text.
func (p Path) String() string {
	return p.text
}

// IsAbs reports whether the path is absolute, that is, whether its first
// byte is a separator.
func (p Path) IsAbs() bool {
	return len(p.text) > 0 && p.text[0] == '/'
}

// IsRel reports whether the path is relative. Exactly one of IsAbs and
// IsRel holds for every path.
func (p Path) IsRel() bool {
	return !p.IsAbs()
}

// IsRoot reports whether the path consists entirely of one or more
// separators.
func (p Path) IsRoot() bool {
	if p.text == "" {
		return false
	}
	return strings.Count(p.text, "/") == len(p.text)
}

// IsDot reports whether the path's text is exactly ".".
func (p Path) IsDot() bool {
	return p.text == Dot
}

// IsDotDot reports whether the path's text is exactly "..".
func (p Path) IsDotDot() bool {
	return p.text == DotDot
}
