// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedconfig "studyhall/internal/shared/config"
)

// Config is the root application configuration.
type Config struct {
	Server       sharedconfig.ServerConfig       `mapstructure:"server"`
	Database     sharedconfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedconfig.LoggerConfig       `mapstructure:"logger"`
	Redis        sharedconfig.RedisConfig        `mapstructure:"redis"`
	Auth         sharedconfig.AuthConfig         `mapstructure:"auth"`
	Email        sharedconfig.EmailConfig        `mapstructure:"email"`
	LLM          sharedconfig.LLMConfig          `mapstructure:"llm"`
	Storage      sharedconfig.StorageConfig      `mapstructure:"storage"`
	Extraction   sharedconfig.ExtractionConfig   `mapstructure:"extraction"`
	Payment      sharedconfig.PaymentConfig      `mapstructure:"payment"`
	Verification sharedconfig.VerificationConfig `mapstructure:"verification"`
}

// Load reads configuration from the given file (optional) plus STUDYHALL_*
// environment variables, with env taking precedence.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("STUDYHALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine when everything comes from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "studyhall")
	v.SetDefault("database.database", "studyhall")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 3600)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt.access_exp_minutes", 1440)
	v.SetDefault("auth.password.bcrypt_cost", 12)

	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.from_name", "StudyHall")

	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.timeout_seconds", 120)

	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.use_path_style", false)

	v.SetDefault("extraction.timeout_seconds", 180)

	v.SetDefault("verification.code_ttl_minutes", 10)
	v.SetDefault("verification.issue_window_minutes", 5)
	v.SetDefault("verification.issue_max_per_window", 3)
}

func validate(cfg *Config) error {
	if cfg.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret is required")
	}
	if cfg.Database.Password == "" {
		return fmt.Errorf("database.password is required")
	}
	return nil
}
