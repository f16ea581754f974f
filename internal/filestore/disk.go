package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

// DiskStore is the FileStore implementation over a local directory.
type DiskStore struct {
	dir string
	log logging.Logger
}

// NewDiskStore ensures dir exists and returns a store rooted at it.
func NewDiskStore(dir string, log logging.Logger) (*DiskStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", abs, err)
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &DiskStore{dir: abs, log: log}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

// contains reports whether path already lives under the store directory.
func (s *DiskStore) contains(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(s.dir, abs)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (s *DiskStore) CacheImage(ctx context.Context, uri string) string {
	if uri == "" {
		return ""
	}
	if s.contains(uri) {
		return uri
	}

	dst := filepath.Join(s.dir, filepath.Base(uri))
	if err := s.copyFile(uri, dst); err != nil {
		s.log.Warn(ctx, "image copy failed, keeping original uri", "src", uri, "error", err)
		return uri
	}
	return dst
}

// copyFile copies src to dst through a uniquely named temp file in the
// target directory, then renames it into place.
func (s *DiskStore) copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	tmp := dst + "." + uuid.NewString() + ".tmp"
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("copy: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
