package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	Database    Database

	Auth Auth `envPrefix:"AUTH_"`
}

type Database struct {
	Path string `env:"DATABASE_PATH" envDefault:"data/connectvault.db"`
}

type Auth struct {
	// JWTSecret signs access and reset tokens; must be set outside dev.
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-insecure-secret"`
	// TokenTTL matches the original 30-day session length.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	// ResetTTL bounds how long a password reset token stays usable.
	ResetTTL time.Duration `env:"RESET_TTL" envDefault:"30m"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
