package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by the services
const EnvPrefix = "FF_CRM"

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
	ReadTimeout  int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int      `mapstructure:"idle_timeout"`  // in seconds
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// JWTPublicKey is the PEM encoded RSA key used to verify bearer tokens
	JWTPublicKey string `mapstructure:"jwt_public_key"`
	Issuer       string `mapstructure:"issuer"`
}

// StorageConfig holds S3 compatible object storage configuration
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// RedisConfig holds configuration of the view cache
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	MaxAge         time.Duration `mapstructure:"max_age"`
}

// RateLimitConfig holds the per-actor write rate limit.
// The distributed limiter shares the Redis instance of the view cache.
type RateLimitConfig struct {
	Enabled                 bool          `mapstructure:"enabled"`
	RequestsPerMinute       int           `mapstructure:"requests_per_minute"`
	Burst                   int           `mapstructure:"burst"`
	KeyPrefix               string        `mapstructure:"key_prefix"`
	EnableLocalFallback     bool          `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64       `mapstructure:"local_fallback_multiplier"` // fraction of the rate allowed per instance while Redis is down
	HealthCheckInterval     time.Duration `mapstructure:"health_check_interval"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Auth       AuthConfig      `mapstructure:"auth"`
	Storage    StorageConfig   `mapstructure:"storage"`
	Redis      RedisConfig     `mapstructure:"redis"`
	NATS       NATSConfig      `mapstructure:"nats"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
}

// OrphanSweeperConfig holds configuration for the orphaned object sweeper
type OrphanSweeperConfig struct {
	Interval    time.Duration `mapstructure:"interval"`
	BatchSize   int           `mapstructure:"batch_size"`
	MaxAttempts int           `mapstructure:"max_attempts"`
	Worker      WorkerConfig  `mapstructure:"worker"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig    `mapstructure:",squash"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Storage       StorageConfig       `mapstructure:"storage"`
	OrphanSweeper OrphanSweeperConfig `mapstructure:"orphan_sweeper"`
	MetricsAddr   string              `mapstructure:"metrics_addr"` // Empty disables the metrics listener
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.allow_origins", []string{"*"})
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "crm-documents")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.ttl", "5m")
	v.SetDefault("nats.stream_name", "CRM_VIEWS")
	v.SetDefault("nats.subject_prefix", "crm.views")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "ff-crm-api")
	v.SetDefault("nats.max_age", "1h")
	v.SetDefault("rate_limit.requests_per_minute", 120)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.key_prefix", "crm:limiter:")
	v.SetDefault("rate_limit.enable_local_fallback", true)
	v.SetDefault("rate_limit.local_fallback_multiplier", 0.5)
	v.SetDefault("rate_limit.health_check_interval", "10s")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "crm-documents")
	v.SetDefault("orphan_sweeper.interval", "5m")
	v.SetDefault("orphan_sweeper.batch_size", 100)
	v.SetDefault("orphan_sweeper.max_attempts", 10)
	v.SetDefault("orphan_sweeper.worker.pool_size", 10)
	v.SetDefault("orphan_sweeper.worker.queue_size", 100)
	v.SetDefault("metrics_addr", ":9091")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}
	if cfg.Storage.Endpoint == "" {
		return nil, errors.New("storage.endpoint is required")
	}

	return &cfg, nil
}

// readConfig reads the config file, falling back to environment variables when it is missing
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allow_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.issuer",
		// Storage
		"storage.endpoint",
		"storage.access_key",
		"storage.secret_key",
		"storage.bucket",
		"storage.region",
		"storage.use_ssl",
		// Redis
		"redis.enabled",
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.ttl",
		// NATS
		"nats.enabled",
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.max_age",
		// Rate limit
		"rate_limit.enabled",
		"rate_limit.requests_per_minute",
		"rate_limit.burst",
		"rate_limit.key_prefix",
		"rate_limit.enable_local_fallback",
		"rate_limit.local_fallback_multiplier",
		"rate_limit.health_check_interval",
		// Orphan sweeper
		"orphan_sweeper.interval",
		"orphan_sweeper.batch_size",
		"orphan_sweeper.max_attempts",
		"orphan_sweeper.worker.pool_size",
		"orphan_sweeper.worker.queue_size",
		"metrics_addr",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
