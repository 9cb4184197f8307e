package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Store persists uploaded images and hands back a public reference.
type Store interface {
	Save(filename string, size int64, r io.Reader) (string, error)
}

// DiskStore writes uploads under a local directory served at PublicBase.
type DiskStore struct {
	Dir        string
	PublicBase string
	MaxSize    int64
}

func NewDiskStore(dir, publicBase string, maxSize int64) *DiskStore {
	return &DiskStore{Dir: dir, PublicBase: publicBase, MaxSize: maxSize}
}

// Save stores the upload under a caller-generated name and returns its public
// URL path. The extension must be an image type and size must fit the limit.
func (s *DiskStore) Save(filename string, size int64, r io.Reader) (string, error) {
	if size > s.MaxSize {
		return "", fmt.Errorf("file %s exceeds the %d byte limit", filename, s.MaxSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("file type %s is not allowed", ext)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dstPath := filepath.Join(s.Dir, filepath.Base(filename))
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	// Copy at most MaxSize+1 bytes so a lying Content-Length cannot blow the
	// limit.
	written, err := io.Copy(dst, io.LimitReader(r, s.MaxSize+1))
	if err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if written > s.MaxSize {
		os.Remove(dstPath)
		return "", fmt.Errorf("file %s exceeds the %d byte limit", filename, s.MaxSize)
	}

	return path.Join(s.PublicBase, filepath.Base(filename)), nil
}
