package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process-wide configuration, loaded once at startup and
// passed by reference to the server. Business logic never reads the
// environment directly.
type Config struct {
	ServerPort int
	JWTSecret  string

	// CORSOrigins is the origin allow-list applied by the HTTP layer.
	CORSOrigins []string

	Database  DatabaseConfig
	Execution ExecutionConfig
	Storage   StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

// ExecutionConfig holds the remote execution provider endpoints and
// credentials. Credentials live server-side only; they are never
// handed to clients.
type ExecutionConfig struct {
	PistonURL  string
	Judge0URL  string
	Judge0Key  string
	Judge0Host string
}

// StorageConfig selects and configures the object storage backend used
// for profile images. Driver is "minio", "gcs", or empty to disable
// uploads.
type StorageConfig struct {
	Driver string
	Minio  MinioConfig
	GCS    GCSConfig
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type GCSConfig struct {
	ProjectID       string
	Bucket          string
	CredentialsFile string
}

var defaultCORSOrigins = []string{
	"http://localhost:5173",
	"https://soide.netlify.app",
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	return Config{
		ServerPort:  getEnvInt("SERVER_PORT", 8080),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: getEnvList("CORS_ORIGINS", defaultCORSOrigins),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "soide"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "soide_db"),
			UseSSL:   getEnvBool("DB_USE_SSL", false),
		},
		Execution: ExecutionConfig{
			PistonURL:  getEnv("PISTON_URL", "https://emkc.org/api/v2/piston/execute"),
			Judge0URL:  getEnv("JUDGE0_URL", "https://judge0-ce.p.rapidapi.com"),
			Judge0Key:  getEnv("JUDGE0_API_KEY", ""),
			Judge0Host: getEnv("JUDGE0_API_HOST", "judge0-ce.p.rapidapi.com"),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", ""),
			Minio: MinioConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", "soide-avatars"),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
			GCS: GCSConfig{
				ProjectID:       getEnv("GCS_PROJECT_ID", ""),
				Bucket:          getEnv("GCS_BUCKET", ""),
				CredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
