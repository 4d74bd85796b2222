package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"go-resume-registry/pkg/storage"
)

type Config struct {
	Port string

	// Record store: postgres when DATABASE_URL is set, in-memory otherwise
	DBUrl string

	// Content store: "local" (default) or "s3"
	StorageDriver   string
	UploadDir       string
	MaxUploadSizeMB int

	// S3-compatible storage (used when StorageDriver is "s3")
	S3Provider        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	S3KeyPrefix       string
	WasabiEndpoint    string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),

		StorageDriver:   getEnv("STORAGE_DRIVER", "local"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSizeMB: getEnvInt("MAX_UPLOAD_SIZE_MB", 10),

		S3Provider:        getEnv("S3_PROVIDER", "aws"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", ""),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3KeyPrefix:       getEnv("S3_KEY_PREFIX", "resumes"),
		WasabiEndpoint:    getEnv("WASABI_ENDPOINT", ""),
	}

	if cfg.StorageDriver == "s3" && cfg.S3Bucket == "" {
		log.Println("WARNING: STORAGE_DRIVER is s3 but S3_BUCKET is missing. Uploads will fail.")
	}
	if cfg.DBUrl == "" {
		log.Println("DATABASE_URL not set. Using the in-memory record store; records do not survive restarts.")
	}

	return cfg, nil
}

// MaxUploadBytes returns the resume size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadSizeMB) << 20
}

// S3Config translates the env fields into the storage layer's config.
func (c *Config) S3Config() storage.S3Config {
	return storage.S3Config{
		Provider:        storage.S3Provider(c.S3Provider),
		AccessKeyID:     c.S3AccessKeyID,
		SecretAccessKey: c.S3SecretAccessKey,
		Region:          c.S3Region,
		Bucket:          c.S3Bucket,
		KeyPrefix:       c.S3KeyPrefix,
		WasabiEndpoint:  c.WasabiEndpoint,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
