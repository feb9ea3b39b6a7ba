package memfs

import (
	"testing"

	"lesiw.io/pathname/fs/fstest"
)

func TestFS(t *testing.T) {
	fstest.TestFS(t.Context(), t, New())
}
