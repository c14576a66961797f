package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes blobs under a directory on disk. The directory
// is served statically at /uploads, so the returned URL is the path a
// client can fetch.
type LocalStorage struct {
	BaseDir string
}

var _ BlobStorage = (*LocalStorage)(nil)

func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) Upload(_ context.Context, key string, r io.Reader, _ string) (string, error) {
	path := filepath.Join(s.BaseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return "/uploads/" + key, nil
}

func (s *LocalStorage) Delete(_ context.Context, key string, _ string) error {
	err := os.Remove(filepath.Join(s.BaseDir, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
