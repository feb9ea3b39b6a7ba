package pathname

// sortByte maps a path byte for ordering. Separators map to NUL so that
// they collate before every ordinary path byte; construction guarantees
// NUL cannot occur in path text, so the mapping is unambiguous.
func sortByte(c byte) byte {
	if c == '/' {
		return 0
	}
	return c
}

// Compare orders two paths byte by byte over their raw texts, with every
// separator mapped below all ordinary bytes. The result is -1, 0, or 1.
//
// Under this ordering a directory sorts immediately before its own
// descendants, ahead of any sibling whose name extends the directory's
// name as a plain string:
//
//	"/a" < "/a/b" < "/a-b"
//
// Compare is textual: paths that are equivalent but not identical, such
// as "a//b" and "a/b", do not compare equal. Clean both first for a
// canonical ordering.
func (p Path) Compare(other Path) int {
	a, b := p.text, other.text
	for i := range min(len(a), len(b)) {
		ca, cb := sortByte(a[i]), sortByte(b[i])
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether two paths are equivalent: their canonical forms
// (per [Path.Clean]) are textually identical. Since the root component
// participates in cleaning, an absolute path never equals a relative
// one.
//
//	MustNew("a//b").Equal(MustNew("a/./b")) // true
//	MustNew("/a").Equal(MustNew("a"))       // false
func (p Path) Equal(other Path) bool {
	return p.Clean().text == other.Clean().text
}
