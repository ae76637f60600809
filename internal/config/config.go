package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// Config is built once at start-up and shared read-only by every component.
type Config struct {
	// Supabase
	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string
	OrdersTable            string

	// Database (optional, enables the direct Postgres order store and migrations)
	DatabaseURL string

	// Yoco
	YocoSecretKey  string
	YocoAPIBaseURL string

	// Pricing, cents per page
	PriceBWCents    int64
	PriceColorCents int64
	MaxCopies       int

	// Uploads
	MaxUploadBytes       int64
	SignedURLTTLSeconds  int
	CreateOrderRateLimit int

	// RabbitMQ (optional)
	RabbitMQURL      string
	RabbitMQExchange string

	// Server
	Port        string
	Environment string
	BaseURL     string
	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For is
	// honoured. Empty means the socket peer is the client.
	TrustedProxies []string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		SupabaseURL:            v.GetString("SUPABASE_URL"),
		SupabaseServiceRoleKey: v.GetString("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseJWTSecret:      v.GetString("SUPABASE_JWT_SECRET"),
		SupabaseStorageBucket:  v.GetString("SUPABASE_STORAGE_BUCKET"),
		OrdersTable:            v.GetString("ORDERS_TABLE"),

		DatabaseURL: v.GetString("DATABASE_URL"),

		YocoSecretKey:  v.GetString("YOCO_SECRET_KEY"),
		YocoAPIBaseURL: v.GetString("YOCO_API_BASE_URL"),

		PriceBWCents:    v.GetInt64("PRICE_BW_CENTS"),
		PriceColorCents: v.GetInt64("PRICE_COLOR_CENTS"),
		MaxCopies:       v.GetInt("MAX_COPIES"),

		MaxUploadBytes:       v.GetInt64("MAX_UPLOAD_BYTES"),
		SignedURLTTLSeconds:  v.GetInt("SIGNED_URL_TTL_SECONDS"),
		CreateOrderRateLimit: v.GetInt("CREATE_ORDER_RATE_LIMIT"),

		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),

		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENVIRONMENT"),
		BaseURL:     strings.TrimSuffix(v.GetString("BASE_URL"), "/"),

		TrustedProxies: splitList(v.GetString("TRUSTED_PROXIES")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SUPABASE_STORAGE_BUCKET", "print-files")
	v.SetDefault("ORDERS_TABLE", "print_orders")
	v.SetDefault("YOCO_API_BASE_URL", "https://payments.yoco.com/api")
	v.SetDefault("PRICE_BW_CENTS", 200)
	v.SetDefault("PRICE_COLOR_CENTS", 800)
	v.SetDefault("MAX_COPIES", 1000)
	v.SetDefault("MAX_UPLOAD_BYTES", 20<<20)
	v.SetDefault("SIGNED_URL_TTL_SECONDS", 900)
	v.SetDefault("CREATE_ORDER_RATE_LIMIT", 10)
	v.SetDefault("RABBITMQ_EXCHANGE", "print.orders")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceRoleKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required")
	}
	if c.YocoSecretKey == "" {
		return fmt.Errorf("YOCO_SECRET_KEY is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if c.PriceBWCents <= 0 || c.PriceColorCents <= 0 {
		return fmt.Errorf("PRICE_BW_CENTS and PRICE_COLOR_CENTS must be positive")
	}
	if c.MaxCopies <= 0 || c.MaxCopies > math.MaxInt32 {
		return fmt.Errorf("MAX_COPIES must be between 1 and %d", math.MaxInt32)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// splitList reads a comma-separated env value.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// IsProduction reports whether the service runs with production logging and gin release mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// StaffAuthEnabled reports whether staff routes can verify Supabase JWTs.
func (c *Config) StaffAuthEnabled() bool {
	return c.SupabaseJWTSecret != ""
}
