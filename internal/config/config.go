package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Deploy is non-empty when running behind a trusted reverse proxy
	// (e.g. "heroku"); the caller address then comes from ProxyHeader
	// instead of the external probe.
	Deploy      string
	ProxyHeader string

	GeoIPBaseURL string
	ForecastURL  string
	ProbeURL     string

	UserAgent   string
	CacheTTL    time.Duration
	UpstreamRPS float64
}

func Load() Config {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Port:         getEnv("PORT", "8080"),
		Deploy:       os.Getenv("DEPLOY"),
		ProxyHeader:  getEnv("PROXY_HEADER", "X-Forwarded-For"),
		GeoIPBaseURL: getEnv("GEOIP_BASE_URL", "http://ip-api.com/json"),
		ForecastURL:  getEnv("FORECAST_URL", "https://api.met.no/weatherapi/locationforecast/2.0/compact"),
		ProbeURL:     getEnv("PROBE_URL", "https://ident.me"),
		UserAgent:    getEnv("USER_AGENT", "wqu_weather_app"),
		CacheTTL:     getDuration("CACHE_TTL", 10*time.Minute),
		UpstreamRPS:  getFloat("UPSTREAM_RPS", 4),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
