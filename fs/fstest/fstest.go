// Package fstest provides a conformance test suite for providers of
// lesiw.io/pathname/fs.FS.
package fstest

import (
	"context"
	"testing"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

// pth converts a path literal. Suite paths are literals and cannot
// contain NUL, so construction cannot fail.
func pth(s string) pathname.Path {
	return pathname.MustNew(s)
}

// cleanup registers removal of a path with t.Cleanup.
func cleanup(
	ctx context.Context, t *testing.T, fsys fs.FS, path pathname.Path,
) {
	t.Helper()
	t.Cleanup(func() {
		if err := fs.RemoveAll(ctx, fsys, path); err != nil {
			t.Errorf("cleanup: RemoveAll(%q): %v", path, err)
		}
	})
}

// TestFSOption configures TestFS behavior via functional options.
type TestFSOption func(*testFSOpts)

// testFSOpts holds configuration for TestFS.
type testFSOpts struct {
	expectedFiles []pathname.Path
}

// WithFiles specifies files that must exist in the filesystem. When
// provided, TestFS runs in read-only mode: it validates that the
// expected files exist and are readable, and skips every test that
// requires write operations.
//
// This enables testing read-only providers whose files are populated
// externally.
func WithFiles(files ...pathname.Path) TestFSOption {
	return func(opts *testFSOpts) {
		opts.expectedFiles = files
	}
}

// TestFS runs a conformance test suite on a provider, driving each of
// its capabilities through the package-level wrappers in
// lesiw.io/pathname/fs.
//
// By default, the provider must be empty and writable. TestFS will
// create, modify, and delete files to test all write operations. Tests
// for capabilities the provider does not implement are skipped.
//
// Use the [WithFiles] option for read-only providers with
// pre-populated files.
func TestFS(
	ctx context.Context, t *testing.T, fsys fs.FS, opts ...TestFSOption,
) {
	t.Helper()

	var o testFSOpts
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.expectedFiles) > 0 {
		testReadOnly(ctx, t, fsys, o.expectedFiles)
		return
	}

	t.Run("File", func(t *testing.T) {
		t.Run("CreateAndRead", func(t *testing.T) {
			testCreateAndRead(ctx, t, fsys)
		})
		t.Run("WriteFile", func(t *testing.T) {
			testWriteFile(ctx, t, fsys)
		})
		t.Run("CreateTruncates", func(t *testing.T) {
			testCreateTruncates(ctx, t, fsys)
		})
		t.Run("Append", func(t *testing.T) {
			testAppend(ctx, t, fsys)
		})
		t.Run("ImplicitMkdir", func(t *testing.T) {
			testImplicitMkdir(ctx, t, fsys)
		})
		t.Run("Truncate", func(t *testing.T) {
			testTruncate(ctx, t, fsys)
		})
	})

	t.Run("Mkdir", func(t *testing.T) {
		t.Run("Basic", func(t *testing.T) {
			testMkdir(ctx, t, fsys)
		})
		t.Run("All", func(t *testing.T) {
			testMkdirAll(ctx, t, fsys)
		})
	})

	t.Run("ReadDir", func(t *testing.T) {
		testReadDir(ctx, t, fsys)
	})

	t.Run("Walk", func(t *testing.T) {
		t.Run("PreOrder", func(t *testing.T) {
			testWalkPreOrder(ctx, t, fsys)
		})
		t.Run("Depth", func(t *testing.T) {
			testWalkDepth(ctx, t, fsys)
		})
		t.Run("Empty", func(t *testing.T) {
			testWalkEmpty(ctx, t, fsys)
		})
	})

	t.Run("Remove", func(t *testing.T) {
		t.Run("Basic", func(t *testing.T) {
			testRemove(ctx, t, fsys)
		})
		t.Run("All", func(t *testing.T) {
			testRemoveAll(ctx, t, fsys)
		})
	})

	t.Run("Rename", func(t *testing.T) {
		testRename(ctx, t, fsys)
	})

	t.Run("Stat", func(t *testing.T) {
		testStat(ctx, t, fsys)
	})

	t.Run("Glob", func(t *testing.T) {
		testGlob(ctx, t, fsys)
	})

	t.Run("Chmod", func(t *testing.T) {
		testChmod(ctx, t, fsys)
	})

	t.Run("Chtimes", func(t *testing.T) {
		testChtimes(ctx, t, fsys)
	})

	t.Run("Symlink", func(t *testing.T) {
		t.Run("Create", func(t *testing.T) {
			testSymlink(ctx, t, fsys)
		})
		t.Run("Read", func(t *testing.T) {
			testReadLink(ctx, t, fsys)
		})
		t.Run("RealPath", func(t *testing.T) {
			testRealPath(ctx, t, fsys)
		})
		t.Run("LinkLoop", func(t *testing.T) {
			testLinkLoop(ctx, t, fsys)
		})
	})

	t.Run("Query", func(t *testing.T) {
		testQueries(ctx, t, fsys)
	})

	t.Run("WorkDir", func(t *testing.T) {
		testWorkDir(ctx, t, fsys)
	})

	t.Run("TempDir", func(t *testing.T) {
		testTempDir(ctx, t, fsys)
	})

	t.Run("Stress", func(t *testing.T) {
		t.Run("Workflow", func(t *testing.T) {
			testWorkflow(ctx, t, fsys)
		})
		t.Run("OpenMany", func(t *testing.T) {
			testOpenMany(ctx, t, fsys)
		})
	})
}
