package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps uploaded blobs in a flat directory under generated names.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (d *DiskStore) Save(name string, src io.Reader) (int64, error) {
	dst, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return 0, fmt.Errorf("create blob: %w", err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(dst.Name())
		return 0, fmt.Errorf("write blob: %w", err)
	}
	return n, nil
}

func (d *DiskStore) Open(name string) (*os.File, error) {
	return os.Open(filepath.Join(d.dir, name))
}

func (d *DiskStore) Path(name string) string {
	return filepath.Join(d.dir, name)
}

// Remove deletes a blob. A blob already gone is not an error, so cascade
// deletes stay idempotent.
func (d *DiskStore) Remove(name string) error {
	err := os.Remove(filepath.Join(d.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SafeName rejects anything that could escape the store directory.
func SafeName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, "/\\")
}
