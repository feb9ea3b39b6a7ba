package fstest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

func testGlob(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	dir := pth("test_glob")
	err := fs.MkdirAll(ctx, fsys, dir.Join("sub"))
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("mkdir not supported")
		}
		t.Fatalf("MkdirAll: %v", err)
	}
	cleanup(ctx, t, fsys, dir)

	files := []string{"one.txt", "two.txt", "data.csv", "sub/three.txt"}
	for _, name := range files {
		file := dir.Join(name)
		if err := fs.WriteFile(ctx, fsys, file, []byte(name)); err != nil {
			t.Fatalf("WriteFile(%q): %v", file, err)
		}
	}

	globStrings := func(t *testing.T, pattern string) []string {
		t.Helper()
		matches, err := fs.Glob(ctx, fsys, pattern)
		if err != nil {
			if errors.Is(err, fs.ErrUnsupported) {
				t.Skip("glob not supported")
			}
			t.Fatalf("Glob(%q): %v", pattern, err)
		}
		var out []string
		for _, m := range matches {
			out = append(out, m.String())
		}
		return out
	}

	t.Run("Flat", func(t *testing.T) {
		got := globStrings(t, "test_glob/*.txt")
		want := []string{"test_glob/one.txt", "test_glob/two.txt"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Glob mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Hierarchical", func(t *testing.T) {
		got := globStrings(t, "test_glob/*/*.txt")
		want := []string{"test_glob/sub/three.txt"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Glob mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Literal", func(t *testing.T) {
		got := globStrings(t, "test_glob/data.csv")
		want := []string{"test_glob/data.csv"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Glob mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		if got := globStrings(t, "test_glob/*.json"); len(got) != 0 {
			t.Errorf("Glob(*.json) = %v, want no matches", got)
		}
	})

	t.Run("BadPattern", func(t *testing.T) {
		_, err := fs.Glob(ctx, fsys, "test_glob/[")
		if !errors.Is(err, pathname.ErrBadPattern) {
			t.Errorf("Glob([) = %v, want ErrBadPattern", err)
		}
	})
}
