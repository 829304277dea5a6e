package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Authentication Configuration
	JWT JWTConfig

	// Object Storage Configuration
	MinIO MinIOConfig

	// Monitoring & Notification Configuration
	Discord      DiscordConfig
	Alert        AlertConfig
	Simulation   SimulationConfig
	Notification NotificationConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// JWTConfig is the configuration for JWT token signing.
type JWTConfig struct {
	SecretKey string
}

// MinIOConfig is the configuration for MinIO object storage.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
	UseSSL    bool
	Enabled   bool
}

// DiscordConfig is the configuration for Discord webhook notifications.
type DiscordConfig struct {
	ReportWebhookURL string
	PushWebhookURL   string
}

// AlertConfig is the configuration for venue alert housekeeping.
type AlertConfig struct {
	SweepInterval time.Duration
}

// SimulationConfig is the configuration for the demo event generator.
type SimulationConfig struct {
	Enabled  bool
	Interval time.Duration
}

// NotificationConfig is the configuration for the notification feed.
// PreferencePath is where notification preferences are persisted between
// restarts; leave empty to keep them in memory only.
type NotificationConfig struct {
	PreferencePath string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("ciblsport-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/ciblsport/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional, env vars can carry everything
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// Server
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.Mode = viper.GetString("server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// JWT
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Enabled = viper.GetBool("minio.enabled")

	// Discord
	cfg.Discord.ReportWebhookURL = viper.GetString("discord.report_webhook_url")
	cfg.Discord.PushWebhookURL = viper.GetString("discord.push_webhook_url")

	// Alert housekeeping
	cfg.Alert.SweepInterval = viper.GetDuration("alert.sweep_interval")

	// Simulation
	cfg.Simulation.Enabled = viper.GetBool("simulation.enabled")
	cfg.Simulation.Interval = viper.GetDuration("simulation.interval")

	// Notification
	cfg.Notification.PreferencePath = viper.GetString("notification.preference_path")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "")
	viper.SetDefault("minio.secret_key", "")
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "ciblsport-venue-maps")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.enabled", false)

	// Alert housekeeping
	viper.SetDefault("alert.sweep_interval", 60*time.Second)

	// Simulation
	viper.SetDefault("simulation.enabled", false)
	viper.SetDefault("simulation.interval", 15*time.Second)
}

func validate(cfg *Config) error {
	// Validate JWT
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}

	// Validate server
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port number")
	}

	// Validate MinIO when enabled
	if cfg.MinIO.Enabled {
		if cfg.MinIO.Endpoint == "" {
			return fmt.Errorf("minio.endpoint is required when minio is enabled")
		}
		if cfg.MinIO.AccessKey == "" || cfg.MinIO.SecretKey == "" {
			return fmt.Errorf("minio.access_key and minio.secret_key are required when minio is enabled")
		}
	}

	// Validate housekeeping intervals
	if cfg.Alert.SweepInterval <= 0 {
		return fmt.Errorf("alert.sweep_interval must be positive")
	}
	if cfg.Simulation.Enabled && cfg.Simulation.Interval <= 0 {
		return fmt.Errorf("simulation.interval must be positive when simulation is enabled")
	}

	return nil
}
