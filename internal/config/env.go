package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr    string
	GinMode    string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadEnv() Env {
	return Env{
		AppAddr:    getenv("APP_ADDR", ":5001"),
		GinMode:    strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBHost:     getenv("DB_HOST", "127.0.0.1:3306"),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBName:     getenv("DB_NAME", "railway_system"),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// JWTSecret returns the signing key for issued tokens.
func JWTSecret() []byte {
	return []byte(getenv("JWT_SECRET", "your_secret_key"))
}
