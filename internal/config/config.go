package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	GeocodeBaseURL string
	WeatherBaseURL string
	GenAIBaseURL   string
	GenAIModel     string
	GenAIKey       string
	RateLimitMax   int
	RateLimitWin   time.Duration
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "garden"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "garden"),
		DbName:         getEnv("MYSQL_DATABASE", "garden"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		RedisAddr:      getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		GeocodeBaseURL: getEnv("GEOCODE_BASE_URL", "https://geocoding-api.open-meteo.com/v1/search"),
		WeatherBaseURL: getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com/v1/forecast"),
		GenAIBaseURL:   getEnv("GENAI_BASE_URL", ""),
		GenAIModel:     getEnv("GENAI_MODEL", "gemini-2.0-flash"),
		GenAIKey:       getEnv("GENAI_API_KEY", ""),
		RateLimitMax:   getEnvInt("RATE_LIMIT_MAX", 20),
		RateLimitWin:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
