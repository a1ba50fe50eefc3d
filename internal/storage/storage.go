package storage

import (
	"context"
	"errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/storage_mocks.go -package=mocks

// ObjectStorage defines the read access the service needs to object storage.
type ObjectStorage interface {
	// GetObject returns the full content of the object stored under objectKey.
	// A missing key yields ErrObjectNotFound.
	GetObject(ctx context.Context, objectKey string) ([]byte, error)
}

var ErrObjectNotFound = errors.New("object not found in storage")
