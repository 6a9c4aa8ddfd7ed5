package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

const defaultUploadMaxBytes = 5 * 1024 * 1024

type AppConfig struct {
	Name           string
	Env            string
	Port           string
	BaseURL        string
	UploadMaxBytes int64
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":8080"
		}
		appConfig = &AppConfig{
			Name:           os.Getenv("APP_NAME"),
			Env:            env,
			Port:           port,
			BaseURL:        os.Getenv("APP_URL"),
			UploadMaxBytes: envInt64("UPLOAD_MAX_BYTES", defaultUploadMaxBytes),
		}
	})
	return appConfig
}

func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return v
}
