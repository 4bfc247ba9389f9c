package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Smart City Complaints specifics
	Ollama     OllamaConfig
	Reply      ReplyConfig
	Whisper    WhisperConfig
	Vision     VisionConfig
	Classifier ClassifierConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN composes the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type OllamaConfig struct {
	Endpoint          string
	Model             string
	RequestsPerMinute int
	TimeoutSeconds    int
}

type ReplyConfig struct {
	// Mode is "model" (generative) or "template" (deterministic).
	Mode string
}

type WhisperConfig struct {
	// ModelPath points to the GGML model file. Empty disables voice
	// submissions.
	ModelPath string
	Language  string
	Workers   int
}

type VisionConfig struct {
	// Endpoint of the image inference server. Empty means images are
	// acknowledged with the generic label only.
	Endpoint string
}

type ClassifierConfig struct {
	CacheSize int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = expandEnvVar(viper.GetString("postgres.password"))
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Ollama
	cfg.Ollama.Endpoint = viper.GetString("ollama.endpoint")
	cfg.Ollama.Model = viper.GetString("ollama.model")
	cfg.Ollama.RequestsPerMinute = viper.GetInt("ollama.requests_per_minute")
	cfg.Ollama.TimeoutSeconds = viper.GetInt("ollama.timeout_seconds")
	if endpoint := viper.GetString("ollama_endpoint"); endpoint != "" {
		cfg.Ollama.Endpoint = endpoint
	}

	// Reply
	cfg.Reply.Mode = viper.GetString("reply.mode")

	// Whisper
	cfg.Whisper.ModelPath = viper.GetString("whisper.model_path")
	cfg.Whisper.Language = viper.GetString("whisper.language")
	cfg.Whisper.Workers = viper.GetInt("whisper.workers")
	if modelPath := viper.GetString("whisper_model_path"); modelPath != "" {
		cfg.Whisper.ModelPath = modelPath
	}

	// Vision
	cfg.Vision.Endpoint = viper.GetString("vision.endpoint")

	// Classifier
	cfg.Classifier.CacheSize = viper.GetInt("classifier.cache_size")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "complaints")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("ollama.endpoint", "http://localhost:11434")
	viper.SetDefault("ollama.model", "llama3.2")
	viper.SetDefault("ollama.requests_per_minute", 60)
	viper.SetDefault("ollama.timeout_seconds", 120)

	viper.SetDefault("reply.mode", "model")

	viper.SetDefault("whisper.language", "auto")

	viper.SetDefault("classifier.cache_size", 256)
}

// expandEnvVar expands values in the format ${VAR_NAME}.
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return os.Getenv(value[2 : len(value)-1])
	}
	return value
}
