package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/pathname/fs"
)

func testRemove(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	name := pth("test_remove.txt")
	if err := fs.WriteFile(ctx, fsys, name, []byte("x")); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", name, err)
	}

	if err := fs.Remove(ctx, fsys, name); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("remove not supported")
		}
		t.Fatalf("Remove(%q): %v", name, err)
	}

	if exists, err := fs.Exists(ctx, fsys, name); err != nil {
		t.Fatalf("Exists(%q): %v", name, err)
	} else if exists {
		t.Errorf("Exists(%q) = true after Remove, want false", name)
	}

	if err := fs.Remove(ctx, fsys, name); err == nil {
		t.Errorf("Remove(%q) again = nil, want error", name)
	}

	t.Run("NonEmptyDir", func(t *testing.T) {
		dir := pth("test_remove_dir")
		err := fs.WriteFile(ctx, fsys, dir.Join("f.txt"), []byte("x"))
		if err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		cleanup(ctx, t, fsys, dir)

		if err := fs.Remove(ctx, fsys, dir); err == nil {
			t.Errorf("Remove(%q) = nil on non-empty dir, want error",
				dir)
		}
	})
}

func testRemoveAll(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	root := pth("test_removeall")
	err := fs.MkdirAll(ctx, fsys, root.Join("a/b"))
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("mkdir not supported")
		}
		t.Fatalf("MkdirAll: %v", err)
	}
	for _, name := range []string{"top.txt", "a/mid.txt", "a/b/leaf.txt"} {
		file := root.Join(name)
		if err := fs.WriteFile(ctx, fsys, file, []byte(name)); err != nil {
			t.Fatalf("WriteFile(%q): %v", file, err)
		}
	}

	if err := fs.RemoveAll(ctx, fsys, root); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("removeall not supported")
		}
		t.Fatalf("RemoveAll(%q): %v", root, err)
	}

	if exists, err := fs.Exists(ctx, fsys, root); err != nil {
		t.Fatalf("Exists(%q): %v", root, err)
	} else if exists {
		t.Errorf("Exists(%q) = true after RemoveAll, want false", root)
	}

	// Absent targets are not an error.
	if err := fs.RemoveAll(ctx, fsys, root); err != nil {
		t.Errorf("RemoveAll(%q) again = %v, want nil", root, err)
	}
}
