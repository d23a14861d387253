package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type Object struct {
	Key  string
	Size int64
}

// BlobStore - хранилище изображений с публичными URL (хайлайты фестиваля).
type BlobStore interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	List(ctx context.Context, prefix string) ([]Object, error)

	GetPublicURL(key string) string
}
