package envfile

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// fileMode is the permission applied when the destination does not exist.
const fileMode = 0o644

// Save writes the document to the path it was loaded from. When nothing has
// changed and force is false, Save succeeds without touching storage. A
// document with no source path returns ErrNoDestination; use SaveAs.
func (f *File) Save(force bool) error {
	if f.path == "" {
		return ErrNoDestination
	}
	return f.SaveAs(f.path, force)
}

// SaveAs writes the full document content to path as a single write, with
// an exclusive advisory lock held for the duration. The lock guards against
// concurrent writers from other processes; it is no substitute for
// synchronizing goroutines sharing one File. Failures are returned once,
// never retried. A successful write clears the changed flag.
func (f *File) SaveAs(path string, force bool) error {
	if path == "" {
		return ErrNoDestination
	}
	if !f.changed && !force {
		return nil
	}
	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("envfile: lock %s: %w", path, err)
	}
	defer lock.Unlock()
	if err := os.WriteFile(path, []byte(f.Content()), fileMode); err != nil {
		return fmt.Errorf("envfile: write %s: %w", path, err)
	}
	f.changed = false
	return nil
}
