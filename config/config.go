package config

import (
	"os"

	"github.com/joho/godotenv"

	"agrimate/common/log"
)

// AppConfig holds everything the server and the portal client read from the
// environment. Every field has a documented default so a bare `agrimate
// server` works against a local MongoDB.
type AppConfig struct {
	Host     string
	Port     string
	MongoURL string
	DBName   string

	// Weather provider selection: both must be set for the live provider,
	// otherwise the mock provider is used.
	WeatherAPIURL string
	WeatherAPIKey string

	// Portal client settings.
	PortalAPIURL   string
	PortalCacheDir string
}

func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Logger().Debugf("no .env file loaded: %s", err.Error())
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}

	cacheDir, _ := os.UserCacheDir()
	if cacheDir != "" {
		cacheDir += "/agrimate"
	} else {
		cacheDir = ".agrimate-cache"
	}

	return AppConfig{
		Host:           get("HOST", "0.0.0.0"),
		Port:           get("PORT", "3000"),
		MongoURL:       get("MONGO_URL", "mongodb://localhost:27017/AgriMate"),
		DBName:         get("DB_NAME", "AgriMate"),
		WeatherAPIURL:  get("WEATHER_API_URL", ""),
		WeatherAPIKey:  get("WEATHER_API_KEY", ""),
		PortalAPIURL:   get("PORTAL_API_URL", "http://localhost:3000/api"),
		PortalCacheDir: get("PORTAL_CACHE_DIR", cacheDir),
	}
}
