package fs

import (
	"context"
	"strings"

	"lesiw.io/pathname"
)

// Glob returns the paths of all files matching pattern, expanding the
// pattern one component at a time against [ReadDir] listings.
// Analogous to: [io/fs.Glob], glob, find, 9P walk.
//
// The pattern syntax is the same as in [pathname.Path.Match]. The
// pattern may describe hierarchical names such as usr/*/bin/ed.
//
// Glob ignores file system errors such as I/O errors reading
// directories. The only possible returned error is
// [pathname.ErrBadPattern], reporting that the pattern is malformed.
//
// Requires: [StatFS] && [ReadDirFS]
func Glob(
	ctx context.Context, fsys FS, pattern string,
) ([]pathname.Path, error) {
	_, hasStat := fsys.(StatFS)
	_, hasReadDir := fsys.(ReadDirFS)
	if !hasStat || !hasReadDir {
		return nil, &PathError{
			Op:   "glob",
			Path: pattern,
			Err:  ErrUnsupported,
		}
	}
	return globWithLimit(ctx, fsys, pattern, 0)
}

func globWithLimit(
	ctx context.Context, fsys FS, pattern string, depth int,
) ([]pathname.Path, error) {
	// This limit is added to prevent stack exhaustion issues.
	// See CVE-2022-30630.
	const pathSeparatorsLimit = 10000
	if depth > pathSeparatorsLimit {
		return nil, pathname.ErrBadPattern
	}

	p, err := pathname.New(pattern)
	if err != nil {
		return nil, pathname.ErrBadPattern
	}
	// Check pattern is well-formed.
	if _, err := (pathname.Path{}).Match(pattern); err != nil {
		return nil, err
	}
	if !hasMeta(pattern) {
		if _, err := Stat(ctx, fsys, p); err != nil {
			return nil, nil
		}
		return []pathname.Path{p}, nil
	}

	dir, file := p.Split()
	if !hasMeta(dir.String()) {
		return glob(ctx, fsys, dir, file.String(), nil)
	}

	// Prevent infinite recursion. See go.dev/issue/15879.
	if dir.String() == pattern {
		return nil, pathname.ErrBadPattern
	}

	var matches []pathname.Path
	m, err := globWithLimit(ctx, fsys, dir.String(), depth+1)
	if err != nil {
		return nil, err
	}
	for _, d := range m {
		matches, err = glob(ctx, fsys, d, file.String(), matches)
		if err != nil {
			return nil, err
		}
	}
	return matches, nil
}

// glob searches for entries matching pattern in the directory dir and
// appends them to matches, returning the updated slice. If the
// directory cannot be read, glob returns the existing matches. New
// matches are appended in lexical order.
func glob(
	ctx context.Context, fsys FS, dir pathname.Path, pattern string,
	matches []pathname.Path,
) ([]pathname.Path, error) {
	for entry, err := range ReadDir(ctx, fsys, dir) {
		if err != nil {
			return matches, nil // ignore I/O error
		}
		name, nameErr := pathname.New(entry.Name())
		if nameErr != nil {
			continue
		}
		matched, matchErr := name.Match(pattern)
		if matchErr != nil {
			return matches, matchErr
		}
		if matched {
			matches = append(matches, dir.Append(name))
		}
	}
	return matches, nil
}

// hasMeta reports whether the pattern contains any of the magic
// characters recognized by [pathname.Path.Match].
func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[\`)
}
