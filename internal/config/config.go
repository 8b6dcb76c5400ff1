package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Review  ReviewConfig  `mapstructure:"review" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig contains the snapshot persistence settings.
type StorageConfig struct {
	// Path is the bbolt database file holding the state snapshot.
	Path string `mapstructure:"path" validate:"required"`
}

// ReviewConfig contains the scheduling and accounting settings.
type ReviewConfig struct {
	// DailyGoal seeds the review target for a fresh state.
	DailyGoal int `mapstructure:"daily_goal" validate:"required,gt=0"`

	// Timezone names the location used for calendar-day boundaries
	// (streak and daily counters), e.g. "Local", "UTC",
	// "Europe/Dublin".
	Timezone string `mapstructure:"timezone" validate:"required"`
}
