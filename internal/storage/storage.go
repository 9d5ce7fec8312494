// Package storage stages uploaded credential files. The backend is a
// pass-through: files are written as received and served statically.
package storage

import (
	"context"
	"io"
)

// StoredFile describes a staged upload.
type StoredFile struct {
	URL  string
	Name string
	Size int64
}

// FileStorage abstracts where uploads land.
type FileStorage interface {
	// Save writes the upload and returns its public reference. The
	// original file name is kept only as metadata; the stored name is
	// generated to avoid collisions.
	Save(ctx context.Context, originalName string, reader io.Reader) (*StoredFile, error)
	Delete(ctx context.Context, url string) error
}
