package fstest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"lesiw.io/pathname/fs"
)

func testReadDir(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	if _, ok := fsys.(fs.ReadDirFS); !ok {
		t.Skip("readdir not supported")
	}

	dir := pth("test_readdir")
	if err := fs.Mkdir(ctx, fsys, dir); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("mkdir not supported")
		}
		t.Fatalf("Mkdir(%q): %v", dir, err)
	}
	cleanup(ctx, t, fsys, dir)

	for _, name := range []string{"charlie.txt", "alpha.txt", "bravo.txt"} {
		err := fs.WriteFile(ctx, fsys, dir.Join(name), []byte(name))
		if err != nil {
			t.Fatalf("WriteFile(%q): %v", name, err)
		}
	}
	if err := fs.Mkdir(ctx, fsys, dir.Join("sub")); err != nil {
		t.Fatalf("Mkdir(%q): %v", dir.Join("sub"), err)
	}

	var names []string
	var dirs []string
	for entry, err := range fs.ReadDir(ctx, fsys, dir) {
		if err != nil {
			t.Fatalf("ReadDir(%q): %v", dir, err)
		}
		names = append(names, entry.Name())
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}

	wantNames := []string{"alpha.txt", "bravo.txt", "charlie.txt", "sub"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("ReadDir(%q) names mismatch (-want +got):\n%s",
			dir, diff)
	}
	if diff := cmp.Diff([]string{"sub"}, dirs); diff != "" {
		t.Errorf("ReadDir(%q) dirs mismatch (-want +got):\n%s",
			dir, diff)
	}

	t.Run("Nonexistent", func(t *testing.T) {
		for _, err := range fs.ReadDir(ctx, fsys, pth("test_readdir_no")) {
			if err == nil {
				t.Fatal("ReadDir(nonexistent): want error")
			}
			return
		}
		t.Error("ReadDir(nonexistent) yielded nothing, want error")
	})

	t.Run("EarlyBreak", func(t *testing.T) {
		var seen int
		for _, err := range fs.ReadDir(ctx, fsys, dir) {
			if err != nil {
				t.Fatalf("ReadDir(%q): %v", dir, err)
			}
			seen++
			break
		}
		if seen != 1 {
			t.Errorf("early break saw %d entries, want 1", seen)
		}
	})
}
