package pathname

import (
	"iter"
	"strings"
)

// Components returns the path's components: the ordered non-empty
// segments obtained by splitting the text on separators. Runs of
// separators and leading or trailing separators produce no components.
// If the path is absolute, the first component is the root component
// [Root].
//
//	MustNew("/a//b/").Components() // ["/", "a", "b"]
//	MustNew("a/./b").Components()  // ["a", ".", "b"]
//	MustNew("//").Components()     // ["/"]
//	MustNew("").Components()       // nil
//
// Components is a pure function of the text. "." and ".." segments are
// preserved; use [Path.Clean] first for canonical components.
func (p Path) Components() []string {
	var comps []string
	if p.IsAbs() {
		comps = append(comps, Root)
	}
	for seg := range strings.SplitSeq(p.text, "/") {
		if seg != "" {
			comps = append(comps, seg)
		}
	}
	return comps
}

// Filenames returns the same sequence as [Path.Components] as a lazy
// iterator. The text is re-split on every range, so the sequence is
// restartable and always reflects the receiver at the time of ranging;
// nothing is cached.
//
//	for name := range p.Filenames() {
//		...
//	}
func (p Path) Filenames() iter.Seq[string] {
	return func(yield func(string) bool) {
		if p.IsAbs() && !yield(Root) {
			return
		}
		rest := p.text
		for rest != "" {
			rest = strings.TrimLeft(rest, "/")
			if rest == "" {
				return
			}
			seg := rest
			if i := strings.IndexByte(rest, '/'); i >= 0 {
				seg, rest = rest[:i], rest[i+1:]
			} else {
				rest = ""
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// joinComponents reassembles a component sequence into path text. An
// empty sequence yields ".", never the empty string. A leading root
// component contributes the leading separator without doubling it.
func joinComponents(comps []string) string {
	if len(comps) == 0 {
		return Dot
	}
	if comps[0] == Root {
		if len(comps) == 1 {
			return Root
		}
		return Root + strings.Join(comps[1:], "/")
	}
	return strings.Join(comps, "/")
}
