package storage

import (
	"context"
)

// StorageService defines the interface for media storage operations. Post and
// service images uploaded from the dashboard go through here.
type StorageService interface {
	// UploadImage stores a local file under the given folder and returns its
	// permanent public identifier.
	UploadImage(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteImage removes a previously uploaded file.
	DeleteImage(ctx context.Context, publicID string) error
	// ImageURL resolves a public identifier into a deliverable URL.
	ImageURL(publicID string) (string, error)
}
