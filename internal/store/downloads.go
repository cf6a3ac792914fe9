package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"stegcalc/internal/domain"
)

const (
	dirMode  = 0o700
	fileMode = 0o600
)

// ErrBadName is returned for names that would escape the download directory.
var ErrBadName = errors.New("store: invalid file name")

// Downloads offers files by writing them into Dir.
type Downloads struct {
	Dir string
}

// NewDownloads returns a Downloads rooted at dir.
func NewDownloads(dir string) *Downloads { return &Downloads{Dir: dir} }

var _ domain.Downloader = (*Downloads)(nil)

// Offer writes data as name inside Dir and returns the full path.
func (d *Downloads) Offer(name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if err := os.MkdirAll(d.Dir, dirMode); err != nil {
		return "", fmt.Errorf("store: create %s: %w", d.Dir, err)
	}
	path := filepath.Join(d.Dir, name)
	if err := writeFile(path, data, fileMode); err != nil {
		return "", fmt.Errorf("store: write %s: %w", path, err)
	}
	return path, nil
}
