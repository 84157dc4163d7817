package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *ImageStore {
	t.Helper()

	store, err := NewImageStore(t.TempDir(), 1)
	if err != nil {
		t.Fatalf("NewImageStore() error = %v", err)
	}
	return store
}

// uploadRequest builds a multipart file as the HTTP layer would deliver it
func uploadRequest(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/v1/images", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("image")
	if err != nil {
		t.Fatalf("FormFile() error = %v", err)
	}
	t.Cleanup(func() { _ = file.Close() })

	return file, header
}

func TestSaveAndRemove(t *testing.T) {
	store := newTestStore(t)
	file, header := uploadRequest(t, "photo.jpg", []byte("fake jpeg bytes"))

	name, err := store.Save(file, header)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasSuffix(name, ".jpg") {
		t.Errorf("stored name = %q, want .jpg suffix", name)
	}
	if name == "photo.jpg" {
		t.Error("stored name must not reuse the client filename")
	}

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "fake jpeg bytes" {
		t.Errorf("stored content = %q", data)
	}

	if err := store.Remove(name); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), name)); !os.IsNotExist(err) {
		t.Error("file still present after Remove()")
	}
}

func TestSaveRejectsUnsupportedType(t *testing.T) {
	store := newTestStore(t)

	for _, filename := range []string{"script.sh", "page.html", "archive.zip", "noext"} {
		file, header := uploadRequest(t, filename, []byte("data"))
		if _, err := store.Save(file, header); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Save(%q) error = %v, want ErrUnsupportedType", filename, err)
		}
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store := newTestStore(t)
	file, header := uploadRequest(t, "big.png", bytes.Repeat([]byte("x"), 2<<20))

	if _, err := store.Save(file, header); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("Save() error = %v, want ErrFileTooLarge", err)
	}
}

func TestRemoveMissingFileIsNoError(t *testing.T) {
	store := newTestStore(t)

	if err := store.Remove("never-existed.jpg"); err != nil {
		t.Errorf("Remove() of missing file error = %v, want nil", err)
	}
}

func TestRemoveRejectsPathTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"../outside.jpg", "a/b.jpg", ""} {
		if err := store.Remove(name); err == nil {
			t.Errorf("Remove(%q) = nil error, want rejection", name)
		}
	}
}
