package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Environment variables override config file values
	v.SetEnvPrefix("PX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// Validate checks the settings the application cannot run without
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwtSecret is required; set PX_AUTH_JWTSECRET")
	}
	if c.Database.Host == "" || c.Database.Database == "" {
		return fmt.Errorf("database host and name are required")
	}
	return nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.tokenTTL", 24) // hours
	v.SetDefault("auth.issuer", "projxchange")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.rateLimit", 60)
	v.SetDefault("redis.rateBurst", 10)

	v.SetDefault("kafka.topic", "marketplace.events")

	v.SetDefault("email.port", 587)

	v.SetDefault("marketplace.commissionRate", "0.10")
}

// getEnvironment determines the environment based on PX_ENV
func getEnvironment() string {
	env := os.Getenv("PX_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures sensitive environment variables override config
// file values
func processEnvOverrides(v *viper.Viper) {
	if dbHost := os.Getenv("PX_DB_HOST"); dbHost != "" {
		v.Set("database.host", dbHost)
	}
	if dbPort := os.Getenv("PX_DB_PORT"); dbPort != "" {
		v.Set("database.port", dbPort)
	}
	if dbUser := os.Getenv("PX_DB_USERNAME"); dbUser != "" {
		v.Set("database.username", dbUser)
	}
	if dbPass := os.Getenv("PX_DB_PASSWORD"); dbPass != "" {
		v.Set("database.password", dbPass)
	}
	if dbName := os.Getenv("PX_DB_NAME"); dbName != "" {
		v.Set("database.database", dbName)
	}
	if sslMode := os.Getenv("PX_DB_SSL_MODE"); sslMode != "" {
		v.Set("database.sslMode", sslMode)
	}

	if serverHost := os.Getenv("PX_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := os.Getenv("PX_SERVER_PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}

	if logLevel := os.Getenv("PX_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}

	if jwtSecret := os.Getenv("PX_JWT_SECRET"); jwtSecret != "" {
		v.Set("auth.jwtSecret", jwtSecret)
	}
	if adminEmail := os.Getenv("PX_ADMIN_EMAIL"); adminEmail != "" {
		v.Set("auth.adminEmail", adminEmail)
	}
	if adminSecret := os.Getenv("PX_ADMIN_SECRET"); adminSecret != "" {
		v.Set("auth.adminSecret", adminSecret)
	}

	if redisAddr := os.Getenv("PX_REDIS_ADDR"); redisAddr != "" {
		v.Set("redis.addr", redisAddr)
	}
	if redisPass := os.Getenv("PX_REDIS_PASSWORD"); redisPass != "" {
		v.Set("redis.password", redisPass)
	}

	if brokers := os.Getenv("PX_KAFKA_BROKERS"); brokers != "" {
		v.Set("kafka.brokers", strings.Split(brokers, ","))
	}

	if smtpHost := os.Getenv("PX_SMTP_HOST"); smtpHost != "" {
		v.Set("email.host", smtpHost)
	}
	if smtpUser := os.Getenv("PX_SMTP_USERNAME"); smtpUser != "" {
		v.Set("email.username", smtpUser)
	}
	if smtpPass := os.Getenv("PX_SMTP_PASSWORD"); smtpPass != "" {
		v.Set("email.password", smtpPass)
	}
}

// processDurations converts duration fields from their raw config values
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Hour
}
