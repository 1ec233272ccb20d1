// Package config reads server settings from the environment (and .env via godotenv).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port    string
	GinMode string

	PreferenceDB string

	ContactEmail string
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	SubmitDelay  time.Duration
	ResetDelay   time.Duration

	GitHubUser   string
	GitHubToken  string
	LeetCodeUser string
	LeetCodeAPI  string
	LiveMetrics  bool

	CurrentMonth      string
	AnimationDuration time.Duration
	AnimationSteps    int

	SessionTTL time.Duration
}

// Load reads every setting, falling back to development defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getenv("PORT", "8080"),
		GinMode:      os.Getenv("GIN_MODE"),
		PreferenceDB: getenv("PREFERENCE_DB", "portfolio.db"),
		ContactEmail: getenv("CONTACT_EMAIL", "techieaakash@example.com"),
		SMTPHost:     getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getenv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASS"),
		GitHubUser:   getenv("GITHUB_USER", "TechieAakash"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		LeetCodeUser: os.Getenv("LEETCODE_USER"),
		LeetCodeAPI:  os.Getenv("LEETCODE_API"),
		CurrentMonth: getenv("ACTIVITY_CURRENT_MONTH", "Jan"),
	}

	var err error
	if cfg.SubmitDelay, err = durationEnv("SUBMIT_DELAY", time.Second); err != nil {
		return nil, err
	}
	if cfg.ResetDelay, err = durationEnv("RESET_DELAY", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.AnimationDuration, err = durationEnv("ANIMATION_DURATION", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 2*time.Hour); err != nil {
		return nil, err
	}
	if cfg.AnimationSteps, err = intEnv("ANIMATION_STEPS", 60); err != nil {
		return nil, err
	}
	if cfg.LiveMetrics, err = boolEnv("LIVE_METRICS", false); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AnimationSteps <= 0 {
		return fmt.Errorf("config error: ANIMATION_STEPS must be positive")
	}
	if c.AnimationDuration <= 0 {
		return fmt.Errorf("config error: ANIMATION_DURATION must be positive")
	}
	if c.SubmitDelay < 0 || c.ResetDelay < 0 {
		return fmt.Errorf("config error: contact delays must be non-negative")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("config error: PORT must be numeric, got %q", c.Port)
	}
	return nil
}

// SMTPEnabled reports whether server-side mail delivery is configured.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config error: %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config error: %s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config error: %s: %w", key, err)
	}
	return b, nil
}
