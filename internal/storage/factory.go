package storage

import (
	"context"
	"fmt"

	"github.com/grp1-tf-cp2/todo-lambda/internal/config"
	"github.com/grp1-tf-cp2/todo-lambda/internal/logger"
	"github.com/grp1-tf-cp2/todo-lambda/internal/storage/drivers"
)

type Driver string

const (
	DriverS3    Driver = "s3"
	DriverLocal Driver = "local"
)

// New creates the storage backend selected by cfg.StorageDriver
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch Driver(cfg.StorageDriver) {
	case DriverS3, "":
		// Require credentials when using custom base_url (S3-compatible storage)
		if cfg.S3BaseURL != "" && (cfg.S3AccessKey == "" || cfg.S3SecretKey == "") {
			return nil, fmt.Errorf("storage: S3_ACCESS_KEY and S3_SECRET_KEY are required when S3_BASE_URL is set")
		}
		store, err := drivers.NewS3Client(ctx, drivers.S3Options{
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			BaseURL:   cfg.S3BaseURL,
			HTTP: &drivers.S3HTTPConfig{
				ConnectTimeout:        cfg.S3ConnectTimeout,
				ResponseHeaderTimeout: cfg.S3ResponseHeaderLimit,
				IdleConnTimeout:       cfg.S3IdleConnTimeout,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("storage: failed to initialize S3: %w", err)
		}
		logger.Infof("[Storage] Initialized (driver: %s)", DriverS3)
		return store, nil

	case DriverLocal:
		if cfg.StorageRoot == "" {
			return nil, fmt.Errorf("storage: STORAGE_ROOT is required for local driver")
		}
		store, err := drivers.NewLocalStorage(cfg.StorageRoot)
		if err != nil {
			return nil, fmt.Errorf("storage: failed to initialize local storage: %w", err)
		}
		logger.Infof("[Storage] Initialized (driver: %s, root: %s)", DriverLocal, cfg.StorageRoot)
		return store, nil

	default:
		return nil, fmt.Errorf("storage: unknown driver '%s'", cfg.StorageDriver)
	}
}
