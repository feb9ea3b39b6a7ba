package pathname

// Clean returns the canonical form of the path: no "." components, no
// redundant separators, and no ".." component that can cancel against a
// preceding real component. Text that reduces to nothing cleans to ".",
// so a cleaned path is never empty. Cleaning is idempotent.
//
// The component sequence is processed left to right. A "." is dropped.
// A ".." is dropped when the output so far ends at the root, is kept
// when the output is empty or already ends in ".." (an unresolvable
// leading ".."), and otherwise cancels the preceding component.
//
//	MustNew("foo/./bar//baz").Clean() // "foo/bar/baz"
//	MustNew("/a/../..").Clean()       // "/"
//	MustNew("../a/..").Clean()        // ".."
//	MustNew("a/..").Clean()           // "."
//
// The receiver is unmodified; see [Path.CleanInPlace] for the mutating
// form.
func (p Path) Clean() Path {
	var final []string
	for seg := range p.Filenames() {
		if seg == Dot {
			continue
		}
		if seg != DotDot {
			final = append(final, seg)
			continue
		}
		switch {
		case len(final) > 0 && final[len(final)-1] == Root:
			// ".." cannot ascend above the root.
		case len(final) == 0 || final[len(final)-1] == DotDot:
			final = append(final, DotDot)
		default:
			final = final[:len(final)-1]
		}
	}
	return Path{text: joinComponents(final)}
}

// CleanInPlace replaces the receiver's text with its canonical form and
// returns the receiver. It is the mutating form of [Path.Clean].
func (p *Path) CleanInPlace() *Path {
	p.text = p.Clean().text
	return p
}
