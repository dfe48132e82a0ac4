package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultOrigins are the front-end deployments allowed to call the API with credentials.
var DefaultOrigins = []string{
	"https://daily-pulse-newspaper.web.app",
	"https://daily-pulse-newspaper.firebaseapp.com",
}

// Config holds application configuration
type Config struct {
	Port     string
	LogLevel string

	DBUser string
	DBPass string
	DBHost string
	DBURI  string
	DBName string

	AccessTokenSecret string
	TokenTTL          time.Duration
	CookieName        string
	AllowedOrigins    []string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	HealthCheckSchedule string
	SiteURL             string
	SiteTitle           string
}

// NewConfig loads configuration from environment variables and an optional .env file.
// Process environment takes precedence over the file.
func NewConfig() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("PORT", "5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "cluster0.ibuouo3.mongodb.net")
	v.SetDefault("DB_NAME", "newspaperDB")
	v.SetDefault("TOKEN_TTL", "1h")
	v.SetDefault("COOKIE_NAME", "token")
	v.SetDefault("CORS_ORIGINS", strings.Join(DefaultOrigins, ","))
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("HEALTHCHECK_SCHEDULE", "@every 5m")
	v.SetDefault("SITE_URL", "https://daily-pulse-newspaper.web.app")
	v.SetDefault("SITE_TITLE", "Daily Pulse")
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		}
	}

	ttl, err := time.ParseDuration(v.GetString("TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		Port:                v.GetString("PORT"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		DBUser:              v.GetString("DB_USER"),
		DBPass:              v.GetString("DB_PASS"),
		DBHost:              v.GetString("DB_HOST"),
		DBURI:               v.GetString("DB_URI"),
		DBName:              v.GetString("DB_NAME"),
		AccessTokenSecret:   v.GetString("ACCESS_TOKEN_SECRET"),
		TokenTTL:            ttl,
		CookieName:          v.GetString("COOKIE_NAME"),
		AllowedOrigins:      splitList(v.GetString("CORS_ORIGINS")),
		SMTPHost:            v.GetString("SMTP_HOST"),
		SMTPPort:            v.GetString("SMTP_PORT"),
		SMTPUsername:        v.GetString("SMTP_USERNAME"),
		SMTPPassword:        v.GetString("SMTP_PASSWORD"),
		SenderEmail:         v.GetString("SENDER_EMAIL"),
		HealthCheckSchedule: v.GetString("HEALTHCHECK_SCHEDULE"),
		SiteURL:             v.GetString("SITE_URL"),
		SiteTitle:           v.GetString("SITE_TITLE"),
	}

	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.DBURI == "" && (cfg.DBUser == "" || cfg.DBPass == "") {
		return nil, fmt.Errorf("DB_USER and DB_PASS are required when DB_URI is not set")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}

	return cfg, nil
}

// MongoURI returns DB_URI when set, otherwise an Atlas SRV connection string
// built from DB_USER, DB_PASS and DB_HOST.
func (c *Config) MongoURI() string {
	if c.DBURI != "" {
		return c.DBURI
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// NotificationsEnabled reports whether SMTP settings are complete enough to send mail.
func (c *Config) NotificationsEnabled() bool {
	return c.SMTPHost != "" && c.SenderEmail != ""
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, DB: %s/%s, Origins: %v, Secret: ***}", c.Port, c.DBHost, c.DBName, c.AllowedOrigins)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
