package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"local"`
	PostgresDSN string `env:"POSTGRES_DSN,required"`

	// Post source
	SocialAPIBaseURL  string        `env:"SOCIAL_API_BASE_URL,required"`
	SocialAPIToken    string        `env:"SOCIAL_API_TOKEN,required"`
	SocialAPIRPS      float64       `env:"SOCIAL_API_RPS" envDefault:"1"`
	SocialAPITimeout  time.Duration `env:"SOCIAL_API_TIMEOUT" envDefault:"30s"`
	SocialFetchWindow time.Duration `env:"SOCIAL_FETCH_WINDOW" envDefault:"2h"`
	SocialFetchLimit  int           `env:"SOCIAL_FETCH_LIMIT" envDefault:"100"`

	// RSS headline source (optional secondary source)
	RSSFeedURLs     []string      `env:"RSS_FEED_URLS" envSeparator:","`
	RSSFetchTimeout time.Duration `env:"RSS_FETCH_TIMEOUT" envDefault:"30s"`
	RSSMaxItems     int           `env:"RSS_MAX_ITEMS" envDefault:"20"`

	// LLM / insight service
	LLMAPIKey       string        `env:"LLM_API_KEY,required"`
	LLMModel        string        `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMRateLimitRPS int           `env:"LLM_RATE_LIMIT_RPS" envDefault:"1"`
	InsightTimeout  time.Duration `env:"INSIGHT_TIMEOUT" envDefault:"60s"`

	// Dedup window and history retention
	DedupWindowHours int `env:"DEDUP_WINDOW_HOURS" envDefault:"6"`
	HistoryRetention int `env:"HISTORY_RETENTION" envDefault:"100"`

	// Scheduling
	RunInterval time.Duration `env:"RUN_INTERVAL" envDefault:"1h"`

	// Publishing
	BotToken       string `env:"BOT_TOKEN,required"`
	TargetChatID   int64  `env:"TARGET_CHAT_ID,required"`
	ShortTextLimit int    `env:"SHORT_TEXT_LIMIT" envDefault:"280"`

	HealthPort int `env:"HEALTH_PORT" envDefault:"8080"`

	// Database pool
	DBMaxConnections    int32         `env:"DB_MAX_CONNECTIONS" envDefault:"4"`
	DBMinConnections    int32         `env:"DB_MIN_CONNECTIONS" envDefault:"1"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
