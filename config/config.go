package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/andriwidianto/securewatch/util"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	AppName         string        `json:"appname"`
	AppEnv          string        `json:"appenv"`
	AppPort         uint16        `json:"appport"`
	GinMode         string        `json:"ginmode"`
	JWTSecret       string        `json:"-"`
	GeoIPPath       string        `json:"geoippath"`
	LoginRateLimit  int           `json:"loginratelimit"`
	LoginRateWindow time.Duration `json:"loginratewindow"`
}

var config *Config
var once sync.Once

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// LoadConfig loads environment variables from a .env file when present and
// returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded, using process environment: %v", err)
		}

		appPort, _ := strconv.ParseUint(getEnv("APPPORT", "5000"), 10, 16)
		rateLimit, _ := strconv.Atoi(getEnv("LOGIN_RATE_LIMIT", "5"))
		rateWindowMin, _ := strconv.Atoi(getEnv("LOGIN_RATE_WINDOW_MINUTES", "15"))

		config = &Config{
			AppName:         getEnv("APPNAME", "securewatch"),
			AppEnv:          getEnv("APPENV", "development"),
			AppPort:         uint16(appPort),
			GinMode:         getEnv("GINMODE", "debug"),
			JWTSecret:       getEnv("JWT_SECRET", util.DevJWTSecret),
			GeoIPPath:       getEnv("GEOIP_DB_PATH", ""),
			LoginRateLimit:  rateLimit,
			LoginRateWindow: time.Duration(rateWindowMin) * time.Minute,
		}

		// The development fallback secret must never reach production. This
		// is a hard operational requirement, so make it impossible to miss.
		if config.JWTSecret == util.DevJWTSecret && config.AppEnv != "development" && config.AppEnv != "test" {
			log.Printf("WARNING: JWT_SECRET is unset, using the development fallback secret in %s environment; set JWT_SECRET before serving real traffic", config.AppEnv)
		}
	})
	return config
}
