package app

import (
	"time"

	"github.com/aartrack/aar-backend/internal/platform/envutil"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
	LogMode     string
	Debug       bool
}

func LoadConfig() Config {
	expireMinutes := envutil.Int("JWT_EXPIRE_MINUTES", 10080)
	return Config{
		Port:        envutil.String("PORT", "8080"),
		DatabaseURL: envutil.String("DATABASE_URL", "sqlite://aar.db"),
		JWTSecret:   envutil.String("JWT_SECRET", "defaultsecret"),
		TokenTTL:    time.Duration(expireMinutes) * time.Minute,
		CORSOrigins: envutil.List("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		LogMode:     envutil.String("LOG_MODE", "development"),
		Debug:       envutil.Bool("DEBUG", false),
	}
}
