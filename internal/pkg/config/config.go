package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Site      SiteConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
	Cookie    CookieConfig
	Admin     AdminConfig
	Unlock    UnlockConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Europe/Berlin"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// The unlock endpoint is called straight from the browser, so every origin is allowed.
type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Content-Type,Authorization,X-Client-Info,Apikey"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Berlin"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type SiteConfig struct {
	BaseURL      string `envconfig:"SITE_BASE_URL" required:"true"`
	Name         string `envconfig:"SITE_NAME" default:"Consulting"`
	ContactEmail string `envconfig:"SITE_CONTACT_EMAIL" required:"true"`
}

type MailConfig struct {
	Driver       string        `envconfig:"MAIL_DRIVER" default:"resend"` // resend | smtp
	From         string        `envconfig:"MAIL_FROM" required:"true"`
	FromName     string        `envconfig:"MAIL_FROM_NAME" default:""`
	Timeout      time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
	ResendAPIKey string        `envconfig:"RESEND_API_KEY"`
	ResendAPIURL string        `envconfig:"RESEND_API_URL" default:"https://api.resend.com"`
	SMTPHost     string        `envconfig:"SMTP_HOST"`
	SMTPPort     int           `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string        `envconfig:"SMTP_USERNAME"`
	SMTPPassword string        `envconfig:"SMTP_PASSWORD"`
	SMTPTLS      bool          `envconfig:"SMTP_TLS" default:"true"`
}

type RateLimitConfig struct {
	Driver        string        `envconfig:"RATE_LIMIT_DRIVER" default:"memory"` // memory | redis
	Window        time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"10m"`
	Max           int           `envconfig:"RATE_LIMIT_MAX" default:"5"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
}

type CookieConfig struct {
	UnlockCookieName string        `envconfig:"UNLOCK_COOKIE_NAME" default:"unlocked_case_studies"`
	HashKey          string        `envconfig:"UNLOCK_COOKIE_HASH_KEY"`  // hex, 32 or 64 bytes
	BlockKey         string        `envconfig:"UNLOCK_COOKIE_BLOCK_KEY"` // hex, 16/24/32 bytes, optional
	MaxAge           time.Duration `envconfig:"UNLOCK_COOKIE_MAX_AGE" default:"8760h"`
	Domain           string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure           bool          `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite         string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type AdminConfig struct {
	JWTSecret string `envconfig:"ADMIN_JWT_SECRET" required:"true"`
}

type UnlockConfig struct {
	// MarkRedeemed stamps unlocked_at the first time a token is redeemed.
	MarkRedeemed bool `envconfig:"UNLOCK_MARK_REDEEMED" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Berlin",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type", "Authorization", "X-Client-Info", "Apikey"},
			MaxAge:       12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Berlin",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Site: SiteConfig{
			BaseURL:      "https://example.com",
			Name:         "Example Consulting",
			ContactEmail: "hello@example.com",
		},
		Mail: MailConfig{
			Driver:       "resend",
			From:         "noreply@example.com",
			FromName:     "Example Consulting",
			Timeout:      5 * time.Second,
			ResendAPIKey: "re_test_key",
			ResendAPIURL: "http://localhost:0",
		},
		RateLimit: RateLimitConfig{
			Driver: "memory",
			Window: time.Minute,
			Max:    100,
		},
		Cookie: CookieConfig{
			UnlockCookieName: "unlocked_case_studies",
			HashKey:          "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			MaxAge:           365 * 24 * time.Hour,
			SameSite:         "Lax",
		},
		Admin: AdminConfig{
			JWTSecret: "test-admin-secret",
		},
		Unlock: UnlockConfig{
			MarkRedeemed: true,
		},
	}
}
