package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage implements FileStorage on a local directory.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates the upload directory if needed. baseURL is
// the public prefix the files are served under (e.g. /uploads).
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if basePath == "" {
		basePath = "./uploads"
	}
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// BasePath returns the directory uploads are written to.
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

func (s *LocalStorage) Save(ctx context.Context, originalName string, reader io.Reader) (*StoredFile, error) {
	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	fullPath := filepath.Join(s.basePath, storedName)

	file, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, reader)
	if err != nil {
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &StoredFile{
		URL:  s.baseURL + "/" + storedName,
		Name: originalName,
		Size: size,
	}, nil
}

func (s *LocalStorage) Delete(ctx context.Context, url string) error {
	fullPath := filepath.Join(s.basePath, path.Base(url))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
