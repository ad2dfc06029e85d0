package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is built once at process start and handed to the components that
// need it; nothing reads configuration globally.
type Config struct {
	Env       string
	Port      int
	APIPrefix string

	AppName               string
	MaxCreditsPerSemester int
	DataDir               string
	BackupDir             string

	CORS CORSConfig
	Log  LogConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.AppName = v.GetString("APP_NAME")
	cfg.MaxCreditsPerSemester = v.GetInt("MAX_CREDITS_PER_SEMESTER")
	if cfg.MaxCreditsPerSemester <= 0 {
		cfg.MaxCreditsPerSemester = 20
	}
	cfg.DataDir = v.GetString("DATA_DIR")
	cfg.BackupDir = v.GetString("BACKUP_DIR")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("APP_NAME", "Campus Course & Records Manager")
	v.SetDefault("MAX_CREDITS_PER_SEMESTER", 20)
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("BACKUP_DIR", "./backups")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
