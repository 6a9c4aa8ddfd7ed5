package config

import (
	"os"
	"sync"
)

type AuthConfig struct {
	JWTSecret  string
	CookieName string
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		cookie := os.Getenv("AUTH_COOKIE_NAME")
		if cookie == "" {
			cookie = "token"
		}
		authConfig = &AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			CookieName: cookie,
		}
	})
	return authConfig
}
