package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	ErrMissingJwtSecret = errors.New("jwt access and refresh secrets must be set")
	ErrSharedJwtSecret  = errors.New("jwt access and refresh secrets must differ")
	ErrInvalidDBTimeout = errors.New("database query timeout must be positive")
)

// Load reads the first environment file found among envFilePath (searching
// parent directories) and then processes the environment into an App.
// A missing file is not an error; invalid configuration is.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Info("No valid environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"db", maskValue(cfg.DB.Url),
		"db_query_timeout", cfg.DB.QueryTimeout,
		"auth_access_expiry", cfg.Auth.Jwt.AccessExpiry,
		"auth_refresh_expiry", cfg.Auth.Jwt.RefreshExpiry,
		"auth_access_secret", maskValue(cfg.Auth.Jwt.AccessSecret),
		"redis", maskValue(cfg.Redis.URL),
		"upload_dir", cfg.Upload.Dir,
	)
	return &cfg, nil
}

// Validate checks the cross-field rules envconfig tags cannot express.
func (a *App) Validate() error {
	if a.Auth == nil || a.Auth.Jwt == nil ||
		a.Auth.Jwt.AccessSecret == "" || a.Auth.Jwt.RefreshSecret == "" {
		return ErrMissingJwtSecret
	}
	if a.Auth.Jwt.AccessSecret == a.Auth.Jwt.RefreshSecret {
		return ErrSharedJwtSecret
	}
	if a.Auth.Jwt.AccessExpiry <= 0 || a.Auth.Jwt.RefreshExpiry <= 0 {
		return fmt.Errorf("jwt expiries must be positive: access=%s refresh=%s",
			a.Auth.Jwt.AccessExpiry, a.Auth.Jwt.RefreshExpiry)
	}
	if a.DB != nil && a.DB.QueryTimeout <= 0 {
		return ErrInvalidDBTimeout
	}
	return nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
