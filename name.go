package pathname

import "path"

// Base returns the last component of the path: "/" for a root path and
// "." for an empty one. Trailing separators are ignored.
//
//	MustNew("/usr/bin/git").Base() // "git"
//	MustNew("a/b/").Base()         // "b"
//	MustNew("/").Base()            // "/"
func (p Path) Base() Path {
	comps := p.Components()
	if len(comps) == 0 {
		return Path{text: Dot}
	}
	return Path{text: comps[len(comps)-1]}
}

// Dir returns the path minus its last component: the root for a
// single-component absolute path and "." for a single-component relative
// one. Unlike [path.Dir] in the standard library, the result is not
// cleaned, so ".." components in the remainder are preserved.
//
//	MustNew("/usr/bin/git").Dir() // "/usr/bin"
//	MustNew("foo").Dir()          // "."
//	MustNew("/foo").Dir()         // "/"
func (p Path) Dir() Path {
	comps := p.Components()
	if len(comps) <= 1 {
		if p.IsAbs() {
			return Path{text: Root}
		}
		return Path{text: Dot}
	}
	return Path{text: joinComponents(comps[:len(comps)-1])}
}

// Split returns [Path.Dir] and [Path.Base] in one call.
func (p Path) Split() (dir, base Path) {
	return p.Dir(), p.Base()
}

// Ext returns the suffix of the path's base beginning at its final dot,
// or "" when the base has no dot. The bases "/", ".", and ".." have no
// extension.
//
//	MustNew("a/b.rb").Ext()  // ".rb"
//	MustNew("a.tar.gz").Ext() // ".gz"
//	MustNew("Makefile").Ext() // ""
func (p Path) Ext() string {
	base := p.Base().text
	if base == Root || base == Dot || base == DotDot {
		return ""
	}
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			return base[i:]
		}
	}
	return ""
}

// Match reports whether the path's text matches the shell pattern. The
// pattern syntax is that of [path.Match] in the standard library.
func (p Path) Match(pattern string) (bool, error) {
	return path.Match(pattern, p.text)
}

// ErrBadPattern indicates a malformed pattern passed to [Path.Match].
// This is an alias to avoid importing both packages.
var ErrBadPattern = path.ErrBadPattern
