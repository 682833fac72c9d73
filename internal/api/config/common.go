package config

// Config is the top-level configuration body.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Feed     FeedConfig     `mapstructure:"feed"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// FeedConfig tunes the ranking core. Zero values fall back to the
// package defaults in internal/feed.
type FeedConfig struct {
	MaxDropsPerHour int `mapstructure:"max_drops_per_hour"`
	MaxDropsPerDay  int `mapstructure:"max_drops_per_day"`
	CacheMinutes    int `mapstructure:"cache_minutes"`

	// Candidate window for feed assembly: how far back and how many
	// drops to consider per request.
	CandidateWindowHours int `mapstructure:"candidate_window_hours"`
	CandidateLimit       int `mapstructure:"candidate_limit"`

	// Extra tag→topic dictionary entries merged on startup.
	Topics map[string]string `mapstructure:"topics"`
}
