package config

import (
	"postbox/internal/logger"

	"github.com/spf13/viper"
)

type Config struct {
	GeneralVersion       string `mapstructure:"GENERAL_VERSION"`
	Environment          string `mapstructure:"ENVIRONMENT"`
	ServerPort           int    `mapstructure:"SERVER_PORT"`
	DatabaseHost         string `mapstructure:"DB_HOST"`
	DatabasePort         int    `mapstructure:"DB_PORT"`
	DatabaseName         string `mapstructure:"DB_NAME"`
	DatabaseUser         string `mapstructure:"DB_USER"`
	DatabasePassword     string `mapstructure:"DB_PASSWORD"`
	DatabaseCacheAddress string `mapstructure:"DB_CACHE_ADDRESS"`
	DatabaseCachePort    int    `mapstructure:"DB_CACHE_PORT"`
	CorsAllowOrigins     string `mapstructure:"CORS_ALLOW_ORIGINS"`
	StorageDir           string `mapstructure:"STORAGE_DIR"`
	StoragePublicBase    string `mapstructure:"STORAGE_PUBLIC_BASE"`
	OverdueThresholdDays int    `mapstructure:"OVERDUE_THRESHOLD_DAYS"`
	ListPageSize         int    `mapstructure:"LIST_PAGE_SIZE"`
	SchedulerEnabled     bool   `mapstructure:"SCHEDULER_ENABLED"`
}

const (
	DefaultOverdueThresholdDays = 90
	DefaultListPageSize         = 10
	DefaultStorageDir           = "uploads"
	DefaultStoragePublicBase    = "/uploads"
)

var ConfigInstance Config

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")
	log.Info("Initializing config")

	// Enable automatic environment variable reading first
	viper.AutomaticEnv()

	// Bind environment variables to config keys
	envVars := []string{
		"GENERAL_VERSION", "ENVIRONMENT", "SERVER_PORT",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"DB_CACHE_ADDRESS", "DB_CACHE_PORT",
		"CORS_ALLOW_ORIGINS",
		"STORAGE_DIR", "STORAGE_PUBLIC_BASE",
		"OVERDUE_THRESHOLD_DAYS", "LIST_PAGE_SIZE", "SCHEDULER_ENABLED",
	}

	for _, env := range envVars {
		if err := viper.BindEnv(env); err != nil {
			log.Warn("Failed to bind environment variable", "env", env, "error", err)
		}
	}

	viper.SetDefault("OVERDUE_THRESHOLD_DAYS", DefaultOverdueThresholdDays)
	viper.SetDefault("LIST_PAGE_SIZE", DefaultListPageSize)
	viper.SetDefault("STORAGE_DIR", DefaultStorageDir)
	viper.SetDefault("STORAGE_PUBLIC_BASE", DefaultStoragePublicBase)

	// Check if key environment variables are already set
	envVarsSet := viper.IsSet("SERVER_PORT") && viper.IsSet("DB_HOST")

	if envVarsSet {
		log.Info("Environment variables detected, skipping file loading")
	} else {
		log.Info("Environment variables not found, attempting to load from files")

		// Load base .env file
		viper.SetConfigFile(".env")
		viper.SetConfigType("env")

		if err := viper.ReadInConfig(); err != nil {
			log.Warn("Could not find .env file", "error", err)
		} else {
			log.Info("Loaded .env file")
		}

		// Load .env.local overrides if it exists
		viper.SetConfigFile(".env.local")
		if err := viper.MergeInConfig(); err != nil {
			log.Debug("No .env.local file found", "error", err)
		} else {
			log.Info("Loaded .env.local overrides")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, log.Err("Fatal error: could not unmarshal config", err)
	}

	if err := validateConfig(config, log); err != nil {
		return Config{}, err
	}

	return ConfigInstance, nil
}

func GetConfig() Config {
	return ConfigInstance
}

func validateConfig(config Config, log logger.Logger) error {
	if config.ServerPort <= 0 {
		return log.Error(
			"Fatal error: invalid server port",
			"port", config.ServerPort,
		)
	}

	if config.OverdueThresholdDays <= 0 {
		return log.Error(
			"Fatal error: invalid overdue threshold",
			"days", config.OverdueThresholdDays,
		)
	}

	if config.ListPageSize <= 0 {
		return log.Error(
			"Fatal error: invalid list page size",
			"pageSize", config.ListPageSize,
		)
	}

	ConfigInstance = config
	return nil
}
