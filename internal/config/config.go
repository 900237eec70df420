package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/MikeMC777/vidros-portal/internal/pedido"
)

type Config struct {
	Addr           string
	BackendBaseURL string
	BackendTimeout time.Duration
	JWTSecret      string
	SessionTTL     time.Duration
	RedisAddr      string
	StatsCacheTTL  time.Duration
	KafkaBrokers   []string
	TopicActivity  string
	CORSOrigins    []string
	LogLevel       string
	LogFormat      string
	GinMode        string
	ServiceName    string
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORTAL_ADDR", ":8080")
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:3001")
	v.SetDefault("BACKEND_TIMEOUT", "10s")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("STATS_CACHE_TTL", "30s")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC_ACTIVITY", pedido.TopicActivity)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SERVICE_NAME", "vidros-portal")
}

// Load reads .env when present, then the environment.
func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	cfg := Config{
		Addr:           v.GetString("PORTAL_ADDR"),
		BackendBaseURL: strings.TrimRight(v.GetString("BACKEND_BASE_URL"), "/"),
		BackendTimeout: v.GetDuration("BACKEND_TIMEOUT"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		SessionTTL:     v.GetDuration("SESSION_TTL"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		StatsCacheTTL:  v.GetDuration("STATS_CACHE_TTL"),
		KafkaBrokers:   splitCSV(v.GetString("KAFKA_BROKERS")),
		TopicActivity:  v.GetString("KAFKA_TOPIC_ACTIVITY"),
		CORSOrigins:    splitCSV(v.GetString("CORS_ORIGINS")),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:      strings.ToLower(v.GetString("LOG_FORMAT")),
		GinMode:        v.GetString("GIN_MODE"),
		ServiceName:    v.GetString("SERVICE_NAME"),
	}
	slog.Info("config loaded",
		"addr", cfg.Addr,
		"backend", cfg.BackendBaseURL,
		"redis", cfg.RedisAddr,
		"kafka", strings.Join(cfg.KafkaBrokers, ","),
	)
	if cfg.JWTSecret == "change-me" {
		slog.Warn("JWT_SECRET is the default value")
	}
	return cfg
}

// Level maps LOG_LEVEL onto slog.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
