package pathname

import "strings"

// Join concatenates the receiver with the given path fragments, inserting
// exactly one separator at each boundary. Empty fragments are skipped.
// If the receiver is empty, the first fragment stands alone.
//
// Unlike [path.Join] in the standard library, the result is not cleaned:
// "." and ".." segments and separator runs inside fragments are
// preserved verbatim. Use [Path.Append] when a normalized result is
// wanted.
//
//	MustNew("/a").Join("b", "c") // "/a/b/c"
//	MustNew("/a").Join("..", "b") // "/a/../b"
//	MustNew("a/").Join("/b")      // "a/b"
func (p Path) Join(parts ...string) Path {
	text := p.text
	for _, part := range parts {
		if part == "" {
			continue
		}
		switch {
		case text == "":
			text = part
		case strings.HasSuffix(text, "/") && strings.HasPrefix(part, "/"):
			text += part[1:]
		case !strings.HasSuffix(text, "/") && !strings.HasPrefix(part, "/"):
			text += "/" + part
		default:
			text += part
		}
	}
	return Path{text: text}
}

// Append joins other onto the receiver and cleans the result, returning
// a new Path and leaving the receiver untouched.
//
//	MustNew("/a").Append(MustNew("../b")) // "/b"
//	MustNew("a").Append(MustNew("b/c"))   // "a/b/c"
func (p Path) Append(other Path) Path {
	return p.Join(other.text).Clean()
}

// AppendInPlace joins other onto the receiver, cleans the result, stores
// it in the receiver, and returns the receiver. It is the mutating form
// of [Path.Append].
func (p *Path) AppendInPlace(other Path) *Path {
	p.text = p.Append(other).text
	return p
}

// Parent returns the path's parent directory, computed lexically as the
// cleaned result of appending "..". The parent of the root is the root;
// the parent of "." is "..".
func (p Path) Parent() Path {
	return p.Append(Path{text: DotDot})
}
