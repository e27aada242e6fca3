package storage

import (
	"context"
)

// Storage reads whole objects from a bucket-addressed backend
type Storage interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}
