package filestorage

import "mime/multipart"

// FileStorage defines the interface for profile image storage. The stored
// key is an opaque string; callers only compare it for equality.
type FileStorage interface {
	// SaveFile stores an uploaded file and returns its storage key
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a file by its storage key. Deleting a key that no
	// longer exists is not an error.
	DeleteFile(fileKey string) error

	// GetFullPath returns the full filesystem path for a storage key
	GetFullPath(fileKey string) string
}
