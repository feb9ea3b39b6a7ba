package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/pathname/fs"
)

func testStat(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	if _, ok := fsys.(fs.StatFS); !ok {
		t.Skip("stat not supported")
	}

	dir := pth("test_stat")
	file := dir.Join("file.txt")
	testData := []byte("stat me")

	if err := fs.WriteFile(ctx, fsys, file, testData); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", file, err)
	}
	cleanup(ctx, t, fsys, dir)

	t.Run("File", func(t *testing.T) {
		info, err := fs.Stat(ctx, fsys, file)
		if err != nil {
			t.Fatalf("Stat(%q): %v", file, err)
		}
		if info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = true, want false", file)
		}
		if got, want := info.Name(), file.Base().String(); got != want {
			t.Errorf("Stat(%q): Name() = %q, want %q", file, got, want)
		}
		if got, want := info.Size(), int64(len(testData)); got != want {
			t.Errorf("Stat(%q): Size() = %d, want %d", file, got, want)
		}
	})

	t.Run("Directory", func(t *testing.T) {
		info, err := fs.Stat(ctx, fsys, dir)
		if err != nil {
			t.Fatalf("Stat(%q): %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", dir)
		}
	})

	t.Run("Unnormalized", func(t *testing.T) {
		alias := pth("test_stat/./sub/../file.txt")
		info, err := fs.Stat(ctx, fsys, alias)
		if err != nil {
			t.Fatalf("Stat(%q): %v", alias, err)
		}
		if got, want := info.Size(), int64(len(testData)); got != want {
			t.Errorf("Stat(%q): Size() = %d, want %d", alias, got, want)
		}
	})

	t.Run("Nonexistent", func(t *testing.T) {
		_, err := fs.Stat(ctx, fsys, pth("test_stat_nonexistent"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(nonexistent) = %v, want ErrNotExist", err)
		}
	})
}
