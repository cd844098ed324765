package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds application configuration from environment.
type Config struct {
	HTTPPort string
	DBPath   string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// Sweep schedules. Priority recomputation runs daily, reminder
	// dispatch every minute.
	PriorityInterval time.Duration
	ReminderInterval time.Duration
	SweepWorkers     int

	// Outbound call transport (Twilio-style voice API).
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioAPIBase    string
	CallFromNumber   string
	CallScriptURL    string

	// TTL for the user-lookup cache used by the reminder sweep.
	UserCacheTTL time.Duration
}

var (
	cfg     *Config
	cfgOnce sync.Once
)

// Get returns the application config (loads once from env).
func Get() *Config {
	cfgOnce.Do(func() {
		cfg = &Config{
			HTTPPort:         getEnv("HTTP_PORT", "8008"),
			DBPath:           getEnv("DB_PATH", "task-reminder.db"),
			JWTSecret:        getEnv("JWT_SECRET", "development-insecure-secret-change-me"),
			JWTIssuer:        getEnv("JWT_ISSUER", "task-reminder-api"),
			JWTAudience:      getEnv("JWT_AUDIENCE", "task-reminder-clients"),
			PriorityInterval: getDurationEnv("PRIORITY_SWEEP_INTERVAL", 24*time.Hour),
			ReminderInterval: getDurationEnv("REMINDER_SWEEP_INTERVAL", time.Minute),
			SweepWorkers:     getIntEnv("SWEEP_WORKERS", 8),
			TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			TwilioAPIBase:    getEnv("TWILIO_API_BASE", "https://api.twilio.com"),
			CallFromNumber:   getEnv("CALL_FROM_NUMBER", "+918958279395"),
			CallScriptURL:    getEnv("CALL_SCRIPT_URL", "https://demo.twilio.com/welcome/voice/"),
			UserCacheTTL:     getDurationEnv("USER_CACHE_TTL", 5*time.Minute),
		}
	})
	return cfg
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return defaultVal
}
