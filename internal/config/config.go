package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// RedisConfig holds the ledger store configuration
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	Namespace string `mapstructure:"namespace"` // Prefix of every key written by the ledger
}

// StellarConfig holds Stellar network configuration
type StellarConfig struct {
	HorizonURL        string        `mapstructure:"horizon_url"`
	HorizonTimeout    time.Duration `mapstructure:"horizon_timeout"`
	NetworkPassphrase string        `mapstructure:"network_passphrase"`
	AssetCode         string        `mapstructure:"asset_code"`
	AssetIssuer       string        `mapstructure:"asset_issuer"`
	AppAddress        string        `mapstructure:"app_address"` // Operating account added as recovery signer
	BaseFee           int64         `mapstructure:"base_fee"`    // Fee per operation in stroops
}

// PayoutConfig holds the custodial payout service configuration
type PayoutConfig struct {
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// TippingConfig holds tipping configuration
type TippingConfig struct {
	Rate         string        `mapstructure:"rate"`
	LockDuration time.Duration `mapstructure:"lock_duration"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RateLimitConfig holds the per-client request rate limit
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerSecond int  `mapstructure:"requests_per_second"`
	Burst             int  `mapstructure:"burst"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// BalanceMergeConfig holds configuration for the balance merge sweeper
type BalanceMergeConfig struct {
	Interval        time.Duration `mapstructure:"interval"`
	BatchSize       int64         `mapstructure:"batch_size"`
	RetryInterval   time.Duration `mapstructure:"retry_interval"`
	MaxRetryElapsed time.Duration `mapstructure:"max_retry_elapsed"`
	Worker          WorkerConfig  `mapstructure:"worker"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Auth       AuthConfig      `mapstructure:"auth"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
	Redis      RedisConfig     `mapstructure:"redis"`
	Stellar    StellarConfig   `mapstructure:"stellar"`
	Payout     PayoutConfig    `mapstructure:"payout"`
	Tipping    TippingConfig   `mapstructure:"tipping"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Stellar      StellarConfig      `mapstructure:"stellar"`
	Payout       PayoutConfig       `mapstructure:"payout"`
	Tipping      TippingConfig      `mapstructure:"tipping"`
	BalanceMerge BalanceMergeConfig `mapstructure:"balance_merge"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	setLedgerDefaults(v)
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 20)
	v.SetDefault("rate_limit.burst", 40)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateLedger(cfg.Redis, cfg.Stellar, cfg.Payout, cfg.Tipping); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	setLedgerDefaults(v)
	v.SetDefault("balance_merge.interval", "5m")
	v.SetDefault("balance_merge.batch_size", 100)
	v.SetDefault("balance_merge.retry_interval", "1s")
	v.SetDefault("balance_merge.max_retry_elapsed", "30s")
	v.SetDefault("balance_merge.worker.pool_size", 4)
	v.SetDefault("balance_merge.worker.queue_size", 100)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateLedger(cfg.Redis, cfg.Stellar, cfg.Payout, cfg.Tipping); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setLedgerDefaults sets the defaults shared by every binary touching the ledger
func setLedgerDefaults(v *viper.Viper) {
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.namespace", domain.DEFAULT_REDIS_NAMESPACE)
	v.SetDefault("stellar.horizon_url", "https://horizon-testnet.stellar.org")
	v.SetDefault("stellar.horizon_timeout", "10s")
	v.SetDefault("stellar.network_passphrase", "Test SDF Network ; September 2015")
	v.SetDefault("stellar.asset_code", "MOBI")
	v.SetDefault("stellar.base_fee", domain.STELLAR_MIN_BASE_FEE)
	v.SetDefault("payout.timeout", "30s")
	v.SetDefault("tipping.rate", domain.DEFAULT_TIP_RATE)
	v.SetDefault("tipping.lock_duration", domain.DEFAULT_LOCK_DURATION.String())
}

// readConfig reads the config file, falling back to environment variables when there is none
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// validateLedger validates the sections every ledger binary needs
func validateLedger(r RedisConfig, s StellarConfig, p PayoutConfig, t TippingConfig) error {
	if r.Addr == "" {
		return errors.New("redis.addr is required")
	}
	if s.AssetIssuer == "" {
		return errors.New("stellar.asset_issuer is required")
	}
	if err := domain.ValidateAddress(s.AssetIssuer); err != nil {
		return fmt.Errorf("stellar.asset_issuer: %w", err)
	}
	if s.AppAddress == "" {
		return errors.New("stellar.app_address is required")
	}
	if err := domain.ValidateAddress(s.AppAddress); err != nil {
		return fmt.Errorf("stellar.app_address: %w", err)
	}
	if s.BaseFee < domain.STELLAR_MIN_BASE_FEE {
		return fmt.Errorf("stellar.base_fee must be at least %d", domain.STELLAR_MIN_BASE_FEE)
	}
	if p.URL == "" {
		return errors.New("payout.url is required")
	}
	rate, err := decimal.NewFromString(t.Rate)
	if err != nil || !rate.IsPositive() {
		return fmt.Errorf("tipping.rate must be a positive decimal: %q", t.Rate)
	}
	return nil
}

// Asset returns the tipping asset
func (c StellarConfig) Asset() domain.Asset {
	return domain.Asset{Code: c.AssetCode, Issuer: c.AssetIssuer}
}

// TipRate returns the value of a single tip
func (c TippingConfig) TipRate() decimal.Decimal {
	return decimal.RequireFromString(c.Rate)
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
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("TIPBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.namespace",
		// Stellar
		"stellar.horizon_url",
		"stellar.horizon_timeout",
		"stellar.network_passphrase",
		"stellar.asset_code",
		"stellar.asset_issuer",
		"stellar.app_address",
		"stellar.base_fee",
		// Payout
		"payout.url",
		"payout.api_key",
		"payout.timeout",
		// Tipping
		"tipping.rate",
		"tipping.lock_duration",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Rate limit
		"rate_limit.enabled",
		"rate_limit.requests_per_second",
		"rate_limit.burst",
		// Balance merge sweeper
		"balance_merge.interval",
		"balance_merge.batch_size",
		"balance_merge.retry_interval",
		"balance_merge.max_retry_elapsed",
		"balance_merge.worker.pool_size",
		"balance_merge.worker.queue_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // Overload lets later files override earlier ones
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
