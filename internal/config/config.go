package config

import "os"

// Config holds the app-level settings. Database settings are read by the
// infra db package itself (DATABASE_URL or the POSTGRES_* variables).
type Config struct {
	Port      string // server port (8080)
	UploadDir string // base directory for product image uploads
	GoEnv     string // dev/prod
}

func Load() Config {
	return Config{
		Port:      getenv("PORT", "8080"),
		UploadDir: getenv("UPLOAD_DIR", "storage/form-attachments"),
		GoEnv:     getenv("GO_ENV", "dev"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
