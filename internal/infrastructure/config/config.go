package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Kafka       KafkaConfig       `mapstructure:"kafka"`
	Email       EmailConfig       `mapstructure:"email"`
	Marketplace MarketplaceConfig `mapstructure:"marketplace"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains token signing and password hashing settings
type AuthConfig struct {
	JWTSecret   string        `mapstructure:"jwtSecret"`
	TokenTTL    time.Duration `mapstructure:"tokenTTL"` // hours
	Issuer      string        `mapstructure:"issuer"`
	AdminEmail  string        `mapstructure:"adminEmail"`
	AdminSecret string        `mapstructure:"adminSecret"`
}

// RedisConfig contains the rate limiter store settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// RateLimit is the sustained request budget per key per minute
	RateLimit int `mapstructure:"rateLimit"`
	// RateBurst is the instantaneous bucket capacity
	RateBurst int `mapstructure:"rateBurst"`
}

// KafkaConfig contains the analytics event sink settings. An empty broker
// list disables analytics.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// EmailConfig contains SMTP settings for notification mail. An empty host
// disables sending.
type EmailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// MarketplaceConfig contains the business parameters of the platform
type MarketplaceConfig struct {
	// CommissionRate is the platform's cut of each sale, e.g. "0.10"
	CommissionRate string `mapstructure:"commissionRate"`
}
