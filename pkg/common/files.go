package common

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// WriteFile stores the content of r at target. Data goes to a temporary file
// next to target first, so target is either absent or complete.
func WriteFile(target string, r io.Reader) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WithStack(err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return errors.WithStack(err)
	}

	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err = io.Copy(tmp, r); err != nil {
		cleanup()
		return errors.Wrapf(err, "failed to write %s", target)
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.WithStack(err)
	}

	if err = os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return errors.WithStack(err)
	}

	if err = os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return errors.WithStack(err)
	}

	return nil
}
