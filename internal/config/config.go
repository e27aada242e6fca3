package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	StorageDriver string
	StorageRoot   string

	S3Region              string
	S3BaseURL             string
	S3AccessKey           string
	S3SecretKey           string
	S3ConnectTimeout      time.Duration
	S3ResponseHeaderLimit time.Duration
	S3IdleConnTimeout     time.Duration
}

// Load reads the runtime configuration from the environment.
// The object location is fixed in the handler and is not configurable here.
// LOG_LEVEL is read by logger.InitFromEnv.
func Load() *Config {
	return &Config{
		StorageDriver:         getEnv("STORAGE_DRIVER", "s3"),
		StorageRoot:           getEnv("STORAGE_ROOT", "./data"),
		S3Region:              getEnv("S3_REGION", ""),
		S3BaseURL:             getEnv("S3_BASE_URL", ""),
		S3AccessKey:           getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:           getEnv("S3_SECRET_KEY", ""),
		S3ConnectTimeout:      getEnvDurationSeconds("S3_CONNECT_TIMEOUT_SECONDS", 10),
		S3ResponseHeaderLimit: getEnvDurationSeconds("S3_RESPONSE_HEADER_TIMEOUT_SECONDS", 10),
		S3IdleConnTimeout:     getEnvDurationSeconds("S3_IDLE_CONN_TIMEOUT_SECONDS", 90),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return defaultValue
	}

	return parsed
}

func getEnvDurationSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds)) * time.Second
}
