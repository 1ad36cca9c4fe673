package vault

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore keeps vault blobs under one subdirectory per collector.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o700); err != nil {
		return nil, fmt.Errorf("create vault dir: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (d *DiskStore) collectorDir(collectorID int64) string {
	return filepath.Join(d.root, fmt.Sprintf("collector-%d", collectorID))
}

func (d *DiskStore) Save(collectorID int64, name string, src io.Reader) (int64, error) {
	dir := d.collectorDir(collectorID)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return 0, fmt.Errorf("create collector dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
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

func (d *DiskStore) Open(collectorID int64, name string) (*os.File, error) {
	return os.Open(filepath.Join(d.collectorDir(collectorID), name))
}

func (d *DiskStore) Path(collectorID int64, name string) string {
	return filepath.Join(d.collectorDir(collectorID), name)
}

// Remove deletes a blob; a blob already gone is not an error.
func (d *DiskStore) Remove(collectorID int64, name string) error {
	err := os.Remove(filepath.Join(d.collectorDir(collectorID), name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
