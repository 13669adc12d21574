package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/DanRulev/conceptbot/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig     `mapstructure:"app" validate:"required"`
	BotToken string        `mapstructure:"bot_token" validate:"required"`
	AdminIDs []int64       `mapstructure:"admin_ids"`
	DB       DBConfig      `mapstructure:"db" validate:"required"`
	HTTP     HTTPConfig    `mapstructure:"http"`
	Session  SessionConfig `mapstructure:"session"`
	Env      string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout          time.Duration `mapstructure:"timeout" validate:"min=1"`
	QuestionsPerQuiz int           `mapstructure:"questions_per_quiz" validate:"min=1,max=20"`
	SeedOnStart      bool          `mapstructure:"seed_on_start"`
}

type HTTPConfig struct {
	Port string `mapstructure:"port" validate:"required"`
}

type SessionConfig struct {
	Backend      string        `mapstructure:"backend" validate:"oneof=memory redis"`
	IdleTTL      time.Duration `mapstructure:"idle_ttl" validate:"min=0"`
	ReapInterval time.Duration `mapstructure:"reap_interval" validate:"min=0"`
	Redis        RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0,max=15"`
	Prefix   string `mapstructure:"prefix"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	Path   string `mapstructure:"path"`
	Conn   DBConn `mapstructure:"conn"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

// IsAdmin reports whether userID may use the catalog editing commands.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

var envBindings = map[string]string{
	"bot_token":              "BOT_TOKEN",
	"admin_ids":              "ADMIN_IDS",
	"env":                    "APP_ENV",
	"http.port":              "PORT",
	"db.driver":              "DB_DRIVER",
	"db.path":                "DB_PATH",
	"db.conn.host":           "DB_HOST",
	"db.conn.port":           "DB_PORT",
	"db.conn.user":           "DB_USER",
	"db.conn.password":       "DB_PASSWORD",
	"db.conn.name":           "DB_NAME",
	"db.conn.ssl":            "DB_SSL",
	"session.backend":        "SESSION_BACKEND",
	"session.redis.addr":     "REDIS_ADDR",
	"session.redis.password": "REDIS_PASSWORD",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("app.questions_per_quiz", 5)
	v.SetDefault("app.seed_on_start", true)
	v.SetDefault("http.port", "5000")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "concepts.db")
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)
	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.idle_ttl", 30*time.Minute)
	v.SetDefault("session.reap_interval", time.Minute)
	v.SetDefault("session.redis.prefix", "conceptbot:quiz:")
}

func Init() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	v.AutomaticEnv()
	setDefaults(v)

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if cfg.DB.Driver == "postgres" && (cfg.DB.Conn.Host == "" || cfg.DB.Conn.Name == "") {
		return nil, errors.New("validation failed: db.conn.host and db.conn.name are required for postgres")
	}
	if cfg.Session.Backend == "redis" && cfg.Session.Redis.Addr == "" {
		return nil, errors.New("validation failed: session.redis.addr is required for redis sessions")
	}

	return &cfg, nil
}
