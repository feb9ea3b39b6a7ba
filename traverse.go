package pathname

import "iter"

// Ascend iterates over the path and each of its lexical ancestors,
// longest first. Each yielded path is the join of a leading run of the
// receiver's components, so "." and ".." segments are preserved but
// separator runs are not. A root path yields the root once. Ascending
// does not consult the filesystem and does not resolve "..".
//
//	for q := range MustNew("/a/b").Ascend() {
//		// "/a/b", "/a", "/"
//	}
func (p Path) Ascend() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		if p.IsRoot() {
			yield(Path{text: Root})
			return
		}
		comps := p.Components()
		for i := len(comps); i >= 1; i-- {
			if !yield(Path{text: joinComponents(comps[:i])}) {
				return
			}
		}
	}
}

// Descend is the mirror image of [Path.Ascend]: it iterates over the
// path's lexical ancestors and the path itself, shortest first.
//
//	for q := range MustNew("/a/b").Descend() {
//		// "/", "/a", "/a/b"
//	}
func (p Path) Descend() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		if p.IsRoot() {
			yield(Path{text: Root})
			return
		}
		comps := p.Components()
		for i := 1; i <= len(comps); i++ {
			if !yield(Path{text: joinComponents(comps[:i])}) {
				return
			}
		}
	}
}
