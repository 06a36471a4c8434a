package models

import "time"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig
	Report   ReportConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// ReportConfig holds report and receipt settings
type ReportConfig struct {
	ProfileFile string
}

// Profile carries the presentation details stamped on receipts, exports
// and printed reports. Loaded from an optional YAML file.
type Profile struct {
	Organisation string `yaml:"organisation"`
	Currency     string `yaml:"currency"`
}
