package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}

	return req.MultipartForm.File["file"][0]
}

func TestSaveFileUsesUniqueNameAndKeepsExtension(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	header := uploadFileHeader(t, "avatar.png", "image-bytes")

	key, err := storage.SaveFile(header)
	if err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Errorf("expected key to keep the extension, got %q", key)
	}
	if key == "avatar.png" {
		t.Error("expected a generated name, got the original filename")
	}

	content, err := os.ReadFile(storage.GetFullPath(key))
	if err != nil {
		t.Fatalf("failed to read stored file: %v", err)
	}
	if string(content) != "image-bytes" {
		t.Errorf("stored content mismatch: %q", content)
	}
}

func TestDeleteFileIsIdempotent(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	header := uploadFileHeader(t, "avatar.jpg", "data")
	key, err := storage.SaveFile(header)
	if err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	if err := storage.DeleteFile(key); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}
	if _, err := os.Stat(storage.GetFullPath(key)); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}

	// Deleting a missing key is not an error
	if err := storage.DeleteFile(key); err != nil {
		t.Errorf("expected second delete to succeed, got %v", err)
	}
	if err := storage.DeleteFile(""); err != nil {
		t.Errorf("expected empty key delete to succeed, got %v", err)
	}
}

func TestDeleteFileStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	outside := filepath.Join(dir, "outside.txt")
	if err := os.WriteFile(outside, []byte("keep"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	// Only the base name of the key is used, so traversal never
	// escapes the storage directory.
	if err := storage.DeleteFile("../outside.txt"); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}
	if _, err := os.Stat(outside); err != nil {
		t.Errorf("expected outside file to survive, got %v", err)
	}
}
