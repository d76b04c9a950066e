package storage

import (
	"context"
	"io"
)

// Storage is the backend for scanned cheque images. Keys are relative
// paths of the form "contracts/<id>/cheques/<position>-<uuid>.<ext>".
type Storage interface {
	// SaveFile persists the image under key, creating parent directories
	// as needed.
	SaveFile(ctx context.Context, key string, reader io.Reader) error

	// ReadFile opens the stored image for streaming to the client.
	ReadFile(ctx context.Context, key string) (io.ReadCloser, error)

	// FileExists checks if an image exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes an image. Deleting a missing key is not an error.
	DeleteFile(ctx context.Context, key string) error

	// URLFor returns the public URL recorded as the cheque's image_url.
	URLFor(key string) string
}
