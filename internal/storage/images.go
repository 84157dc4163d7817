package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrFileTooLarge    = errors.New("image exceeds maximum size")
)

// allowed upload extensions, lowercased
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ImageStore stores uploaded images on the local filesystem
type ImageStore struct {
	dir      string
	maxBytes int64
}

// NewImageStore creates an image store rooted at dir, creating it if needed
func NewImageStore(dir string, maxSizeMB int64) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &ImageStore{
		dir:      dir,
		maxBytes: maxSizeMB << 20,
	}, nil
}

// Save writes an uploaded file to disk under a random name and returns the
// stored filename. The original filename only contributes its extension.
func (s *ImageStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
	if header.Size > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, header.Size)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, s.maxBytes+1)); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return name, nil
}

// Remove deletes a stored image by filename. Removing a file that is already
// gone is not an error.
func (s *ImageStore) Remove(filename string) error {
	// Reject anything that could escape the upload directory
	if filename == "" || filename != filepath.Base(filename) {
		return fmt.Errorf("invalid image filename: %q", filename)
	}

	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir returns the root directory images are stored under
func (s *ImageStore) Dir() string {
	return s.dir
}
