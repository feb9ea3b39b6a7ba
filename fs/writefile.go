package fs

import (
	"context"

	"lesiw.io/pathname"
)

// WriteFile writes data to the named file, creating it if necessary and
// truncating it if it already exists. The file is created with mode
// 0644 (or the mode specified via [WithFileMode]).
// Analogous to: [os.WriteFile].
//
// If the parent directory does not exist and the provider implements
// [MkdirFS], WriteFile automatically creates the parent directories with
// mode 0755 (or the mode specified via [WithDirMode]).
//
// Requires: [CreateFS]
func WriteFile(
	ctx context.Context, fsys FS, name pathname.Path, data []byte,
) error {
	f, err := Create(ctx, fsys, name)
	if err != nil {
		return err
	}

	_, writeErr := f.Write(data)
	closeErr := f.Close()

	if writeErr != nil {
		return newPathError("write", name, writeErr)
	}
	if closeErr != nil {
		return newPathError("close", name, closeErr)
	}
	return nil
}
