package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries everything the runtime needs to wire the service. Database,
// cache, Kafka, and the remote inference backend are all optional: the
// service scores listings with the local heuristic engine when they are
// absent.
type Config struct {
	ServiceID string

	HTTPPort int
	GRPCPort int

	DatabaseURL        string
	RedisURL           string
	KafkaBrokers       []string
	KafkaTopicAnalyzed string
	InferenceURL       string

	MaxDBConns      int32
	InferTimeout    time.Duration
	VerdictCacheTTL time.Duration
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
		GRPCPort int    `yaml:"grpc_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL        string   `yaml:"postgres_url"`
		RedisURL           string   `yaml:"redis_url"`
		KafkaBrokers       []string `yaml:"kafka_brokers"`
		KafkaTopicAnalyzed string   `yaml:"kafka_topic_analyzed"`
		InferenceURL       string   `yaml:"inference_url"`
	} `yaml:"dependencies"`
	Scoring struct {
		InferTimeoutSeconds    int `yaml:"infer_timeout_seconds"`
		VerdictCacheTTLSeconds int `yaml:"verdict_cache_ttl_seconds"`
	} `yaml:"scoring"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:          "M12-Fraud-Detection-Engine",
		HTTPPort:           8080,
		GRPCPort:           9090,
		MaxDBConns:         20,
		KafkaTopicAnalyzed: "listing.analyzed",
		InferTimeout:       5 * time.Second,
		VerdictCacheTTL:    5 * time.Minute,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = trimNonEmpty(f.Dependencies.KafkaBrokers)
		}
		if f.Dependencies.KafkaTopicAnalyzed != "" {
			cfg.KafkaTopicAnalyzed = f.Dependencies.KafkaTopicAnalyzed
		}
		if f.Dependencies.InferenceURL != "" {
			cfg.InferenceURL = f.Dependencies.InferenceURL
		}
		if f.Scoring.InferTimeoutSeconds > 0 {
			cfg.InferTimeout = time.Duration(f.Scoring.InferTimeoutSeconds) * time.Second
		}
		if f.Scoring.VerdictCacheTTLSeconds > 0 {
			cfg.VerdictCacheTTL = time.Duration(f.Scoring.VerdictCacheTTLSeconds) * time.Second
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.KafkaBrokers = envCSV("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.KafkaTopicAnalyzed = envOrDefault("KAFKA_TOPIC_ANALYZED", cfg.KafkaTopicAnalyzed)
	cfg.InferenceURL = envOrDefault("MODEL_BACKEND_URL", cfg.InferenceURL)
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = envInt("GRPC_PORT", cfg.GRPCPort)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))
	cfg.InferTimeout = time.Duration(envInt("INFER_TIMEOUT_SECONDS", int(cfg.InferTimeout.Seconds()))) * time.Second
	cfg.VerdictCacheTTL = time.Duration(envInt("VERDICT_CACHE_SECONDS", int(cfg.VerdictCacheTTL.Seconds()))) * time.Second

	return cfg, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envCSV(name string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	return trimNonEmpty(strings.Split(raw, ","))
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
