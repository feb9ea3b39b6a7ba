package fstest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

// testWorkflow drives several capabilities through one realistic
// sequence: build a tree, read it back through Walk, rename, glob, and
// remove. It catches providers whose operations pass in isolation but
// disagree about state.
func testWorkflow(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	base := pth("test_workflow")
	err := fs.MkdirAll(ctx, fsys, base.Join("a", "b", "c"))
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("mkdir not supported")
		}
		t.Fatalf("MkdirAll: %v", err)
	}
	cleanup(ctx, t, fsys, base)
	if mkErr := fs.MkdirAll(ctx, fsys, base.Join("d")); mkErr != nil {
		t.Fatalf("MkdirAll: %v", mkErr)
	}

	files := map[string][]byte{
		"root.txt":       []byte("root level"),
		"a/level1.txt":   []byte("level 1"),
		"a/b/level2.txt": []byte("level 2"),
		"d/other.txt":    []byte("other branch"),
	}
	for name, content := range files {
		file := base.Join(name)
		if werr := fs.WriteFile(ctx, fsys, file, content); werr != nil {
			t.Fatalf("WriteFile(%q): %v", file, werr)
		}
	}

	// Every file written must come back out of Walk with its content.
	var seen int
	for entry, err := range fs.Walk(ctx, fsys, base, 0) {
		if err != nil {
			t.Errorf("Walk: %v", err)
			continue
		}
		if entry.IsDir() {
			continue
		}
		seen++
		rel, err := entry.Path().RelativeTo(base)
		if err != nil {
			t.Errorf("RelativeTo(%q): %v", entry.Path(), err)
			continue
		}
		want, ok := files[rel.String()]
		if !ok {
			t.Errorf("Walk yielded unexpected file %q", entry.Path())
			continue
		}
		got, err := fs.ReadFile(ctx, fsys, entry.Path())
		if err != nil {
			t.Errorf("ReadFile(%q): %v", entry.Path(), err)
			continue
		}
		if !bytes.Equal(got, want) {
			t.Errorf("ReadFile(%q) = %q, want %q",
				entry.Path(), got, want)
		}
	}
	if seen != len(files) {
		t.Errorf("Walk found %d files, want %d", seen, len(files))
	}

	oldname := base.Join("a", "level1.txt")
	newname := base.Join("a", "renamed.txt")
	if renErr := fs.Rename(ctx, fsys, oldname, newname); renErr != nil {
		t.Fatalf("Rename(%q, %q): %v", oldname, newname, renErr)
	}
	if exists, exErr := fs.Exists(ctx, fsys, oldname); exErr != nil {
		t.Fatalf("Exists(%q): %v", oldname, exErr)
	} else if exists {
		t.Errorf("Exists(%q) = true after Rename, want false", oldname)
	}

	matches, err := fs.Glob(ctx, fsys, "test_workflow/*/*.txt")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob(*/*.txt) = %v, want 2 matches", matches)
	}

	remove := base.Join("d", "other.txt")
	if err := fs.Remove(ctx, fsys, remove); err != nil {
		t.Errorf("Remove(%q): %v", remove, err)
	} else if exists, _ := fs.Exists(ctx, fsys, remove); exists {
		t.Errorf("Exists(%q) = true after Remove, want false", remove)
	}
}

// testOpenMany holds several readers open at once, then reads and
// closes them, verifying handles do not interfere with each other.
func testOpenMany(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	const numFiles = 5
	dir := pth("test_openmany")
	if err := fs.Mkdir(ctx, fsys, dir); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("mkdir not supported")
		}
		t.Fatalf("Mkdir(%q): %v", dir, err)
	}
	cleanup(ctx, t, fsys, dir)

	paths := make([]pathname.Path, numFiles)
	contents := make([][]byte, numFiles)
	readers := make([]io.ReadCloser, numFiles)
	for i := range paths {
		paths[i] = dir.Join(fmt.Sprintf("file%d.txt", i))
		contents[i] = []byte(fmt.Sprintf("content %d", i))
		err := fs.WriteFile(ctx, fsys, paths[i], contents[i])
		if err != nil {
			t.Fatalf("WriteFile(%q): %v", paths[i], err)
		}
	}

	for i := range paths {
		r, err := fs.Open(ctx, fsys, paths[i])
		if err != nil {
			t.Fatalf("Open(%q): %v", paths[i], err)
		}
		readers[i] = r
	}

	for i := range readers {
		got, err := io.ReadAll(readers[i])
		if err != nil {
			t.Errorf("ReadAll(%q): %v", paths[i], err)
			continue
		}
		if !bytes.Equal(got, contents[i]) {
			t.Errorf("ReadAll(%q) = %q, want %q",
				paths[i], got, contents[i])
		}
	}

	for i := range readers {
		if err := readers[i].Close(); err != nil {
			t.Errorf("Close(%q): %v", paths[i], err)
		}
	}
}
