package fstest

import (
	"context"
	"testing"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

// testReadOnly validates a read-only provider against its expected
// files: each must exist, be readable, and stat consistently with its
// contents.
func testReadOnly(
	ctx context.Context, t *testing.T, fsys fs.FS,
	files []pathname.Path,
) {
	t.Helper()

	for _, file := range files {
		t.Run(file.String(), func(t *testing.T) {
			data, err := fs.ReadFile(ctx, fsys, file)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", file, err)
			}

			if _, ok := fsys.(fs.StatFS); !ok {
				return
			}
			info, err := fs.Stat(ctx, fsys, file)
			if err != nil {
				t.Fatalf("Stat(%q): %v", file, err)
			}
			if info.IsDir() {
				t.Errorf("Stat(%q): IsDir() = true, want false", file)
			}
			if got, want := info.Size(), int64(len(data)); got != want {
				t.Errorf("Stat(%q): Size() = %d, want %d",
					file, got, want)
			}
		})
	}
}
