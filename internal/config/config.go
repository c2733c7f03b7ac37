package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	RedisAddress        string
	TrimbleAPIURL       string
	TrimbleUsername     string
	TrimblePassword     string
	VendorDataPath      string
	CustomerDataPath    string
	RoadCallLinkBase    string
	AuthSecret          string
	CacheTTL            time.Duration
	CacheStaleThreshold time.Duration
	WarmInterval        time.Duration
	RequestTimeout      time.Duration
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress       = ":8080"
	defaultRedisAddress     = "localhost:6379"
	defaultVendorDataPath   = "data/vendors.json"
	defaultCustomerDataPath = "data/customers.json"
	defaultRoadCallLinkBase = "https://ttx.tmwcloud.com/AMSApp/ng-ams/ams-home.aspx#"
	defaultAuthSecret       = "change-me-in-production"
	defaultCacheTTL         = time.Hour
	defaultStaleThreshold   = time.Minute
	defaultWarmInterval     = 15 * time.Minute
	defaultRequestTimeout   = 30 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		RedisAddress:        getString(lookup, "REDIS_ADDRESS", defaultRedisAddress),
		TrimbleAPIURL:       getString(lookup, "TRIMBLE_API_URL", ""),
		TrimbleUsername:     getString(lookup, "TRIMBLE_USERNAME", ""),
		TrimblePassword:     getString(lookup, "TRIMBLE_PASSWORD", ""),
		VendorDataPath:      getString(lookup, "VENDOR_DATA_PATH", defaultVendorDataPath),
		CustomerDataPath:    getString(lookup, "CUSTOMER_DATA_PATH", defaultCustomerDataPath),
		RoadCallLinkBase:    getString(lookup, "ROADCALL_LINK_BASE", defaultRoadCallLinkBase),
		AuthSecret:          getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		CacheTTL:            getDuration(lookup, "ORDER_CACHE_TTL", defaultCacheTTL),
		CacheStaleThreshold: getDuration(lookup, "ORDER_CACHE_STALE_THRESHOLD", defaultStaleThreshold),
		WarmInterval:        getDuration(lookup, "CACHE_WARM_INTERVAL", defaultWarmInterval),
		RequestTimeout:      getDuration(lookup, "TRIMBLE_REQUEST_TIMEOUT", defaultRequestTimeout),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("fleetport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cacheTTLStr        = cfg.CacheTTL.String()
		staleThresholdStr  = cfg.CacheStaleThreshold.String()
		warmIntervalStr    = cfg.WarmInterval.String()
		requestTimeoutStr  = cfg.RequestTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for the order cache")
	fs.StringVar(&cfg.TrimbleAPIURL, "trimble-url", cfg.TrimbleAPIURL, "Trimble AMS SOAP endpoint")
	fs.StringVar(&cfg.VendorDataPath, "vendor-data", cfg.VendorDataPath, "Path to vendor reference JSON")
	fs.StringVar(&cfg.CustomerDataPath, "customer-data", cfg.CustomerDataPath, "Path to customer reference JSON")
	fs.StringVar(&cfg.RoadCallLinkBase, "roadcall-link-base", cfg.RoadCallLinkBase, "Base URL for road-call deep links")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.StringVar(&cacheTTLStr, "cache-ttl", cacheTTLStr, "Order cache entry lifetime")
	fs.StringVar(&staleThresholdStr, "cache-stale-threshold", staleThresholdStr, "Remaining TTL below which a background refresh runs")
	fs.StringVar(&warmIntervalStr, "warm-interval", warmIntervalStr, "Interval between cache warmer runs")
	fs.StringVar(&requestTimeoutStr, "trimble-timeout", requestTimeoutStr, "Timeout for Trimble SOAP calls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CacheTTL, err = time.ParseDuration(cacheTTLStr); err != nil {
		return nil, fmt.Errorf("invalid cache ttl: %w", err)
	}
	if cfg.CacheStaleThreshold, err = time.ParseDuration(staleThresholdStr); err != nil {
		return nil, fmt.Errorf("invalid stale threshold: %w", err)
	}
	if cfg.WarmInterval, err = time.ParseDuration(warmIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid warm interval: %w", err)
	}
	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid trimble timeout: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.CacheStaleThreshold <= 0 {
		cfg.CacheStaleThreshold = defaultStaleThreshold
	}
	if cfg.CacheStaleThreshold >= cfg.CacheTTL {
		return nil, fmt.Errorf("stale threshold must be below cache ttl")
	}
	if cfg.WarmInterval <= 0 {
		cfg.WarmInterval = defaultWarmInterval
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}
	if cfg.TrimbleAPIURL == "" {
		return nil, fmt.Errorf("trimble API URL must be provided")
	}
	if cfg.TrimbleUsername == "" || cfg.TrimblePassword == "" {
		return nil, fmt.Errorf("trimble credentials must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
