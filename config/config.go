package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger         `mapstructure:"logger"`
	DB        Database       `mapstructure:"database"`
	API       API            `mapstructure:"api"`
	Cache     Cache          `mapstructure:"cache"`
	Telegram  TelegramConfig `mapstructure:"telegram"`
	KeepAlive KeepAlive      `mapstructure:"keepalive"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port int `mapstructure:"port"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
	SessionExpiration time.Duration `mapstructure:"session_expiration"`
}

type TelegramConfig struct {
	BotToken                  string        `mapstructure:"bot_token" validate:"required"`
	AdminChatID               int64         `mapstructure:"admin_chat_id" validate:"required"`
	PollTimeout               time.Duration `mapstructure:"poll_timeout"`
	MaxGlobalRequestPerSecond int           `mapstructure:"max_global_request_per_second"`
	MaxUserRequestPerSecond   int           `mapstructure:"max_user_request_per_second"`
	RatelimitExpireDuration   time.Duration `mapstructure:"ratelimit_expire_duration"`
	RateLimitCleanupDuration  time.Duration `mapstructure:"rate_limit_cleanup_duration"`
	Links                     MenuLinks     `mapstructure:"links"`
}

// MenuLinks are the external URL buttons rendered on the main menu.
type MenuLinks struct {
	ChannelURL    string `mapstructure:"channel_url"`
	YoutubeURL    string `mapstructure:"youtube_url"`
	InstagramURL  string `mapstructure:"instagram_url"`
	WebsiteURL    string `mapstructure:"website_url"`
	SupportHandle string `mapstructure:"support_handle"`
}

type KeepAlive struct {
	URL      string        `mapstructure:"url"`
	Interval time.Duration `mapstructure:"interval"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func Load() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("cache.default_expiration", "30m")
	viper.SetDefault("cache.cleanup_interval", "10m")
	viper.SetDefault("cache.session_expiration", "30m")
	viper.SetDefault("telegram.poll_timeout", "10s")
	viper.SetDefault("telegram.max_global_request_per_second", 30)
	viper.SetDefault("telegram.max_user_request_per_second", 1)
	viper.SetDefault("telegram.ratelimit_expire_duration", "10m")
	viper.SetDefault("telegram.rate_limit_cleanup_duration", "5m")
	viper.SetDefault("keepalive.interval", "5m")
	viper.SetDefault("keepalive.timeout", "30s")
}
