package drivers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grp1-tf-cp2/todo-lambda/internal/logger"
)

// LocalStorage maps bucket/key to <root>/<bucket>/<key> for running the
// function outside AWS.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	absBasePath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base path: %w", err)
	}

	logger.Infof("[Local Storage] Initializing local storage with base path: %s", absBasePath)
	return &LocalStorage{basePath: absBasePath}, nil
}

func (l *LocalStorage) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	fullPath, err := l.resolve(bucket, key)
	if err != nil {
		return nil, err
	}

	fileInfo, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Errorf("[Local Storage] Object not found: %s", fullPath)
			return nil, fmt.Errorf("object not found: %s/%s: %w", bucket, key, err)
		}
		logger.Errorf("[Local Storage] Failed to access %s: %v", fullPath, err)
		return nil, fmt.Errorf("failed to access object %s/%s: %w", bucket, key, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("object %s/%s is a directory", bucket, key)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		logger.Errorf("[Local Storage] Failed to read %s: %v", fullPath, err)
		return nil, fmt.Errorf("failed to read object %s/%s: %w", bucket, key, err)
	}

	logger.Debugf("[Local Storage] Fetched object: bucket=%s, key=%s, size=%d bytes", bucket, key, len(data))
	return data, nil
}

func (l *LocalStorage) resolve(bucket, key string) (string, error) {
	rel := filepath.Clean(filepath.Join(bucket, key))
	if bucket == "" || filepath.IsAbs(key) || filepath.IsAbs(bucket) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object path: %s/%s", bucket, key)
	}

	fullPath := filepath.Join(l.basePath, rel)
	if !strings.HasPrefix(fullPath, l.basePath+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object path: directory traversal detected")
	}
	return fullPath, nil
}
