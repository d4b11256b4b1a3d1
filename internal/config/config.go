package config

import (
	"fmt"
	"log"
	"os"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env             string
	HTTPPort        string
	BaseURL         string
	OrgName         string
	DataFile        string
	TemplatePath    string
	PageTemplate    string
	CacheBackend    string
	RedisAddr       string
	RateLimitPerMin int
}

// Load returns application config populated from environment variables with sensible defaults.
func Load() App {
	port := getEnv("PORT", "3000")
	return App{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        port,
		BaseURL:         getEnv("BASE_URL", "http://localhost:"+port),
		OrgName:         getEnv("ORG_NAME", "Miles+Partnership"),
		DataFile:        getEnv("DATA_FILE", "data/participants.json"),
		TemplatePath:    getEnv("TEMPLATE_PATH", "assets/certificate-template.png"),
		PageTemplate:    getEnv("PAGE_TEMPLATE", "views/certificate.html"),
		CacheBackend:    getEnv("CACHE_BACKEND", "memory"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 120),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
