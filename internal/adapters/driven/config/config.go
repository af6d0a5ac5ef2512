// Package config loads assistant configuration from a TOML file with
// environment overrides. A missing config file is not an error: every
// setting has a default, and secrets normally arrive via the environment
// (optionally seeded from a .env file).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultHost          = "0.0.0.0"
	DefaultPort          = 8000
	DefaultProfilePath   = "portfolio_data.json"
	DefaultResumePath    = "resume.pdf"
	DefaultTopK          = 3
	DefaultMinSimilarity = 0.0
)

// Config is the full assistant configuration.
type Config struct {
	// Gemini holds the remote AI provider settings.
	Gemini GeminiConfig `toml:"gemini"`

	// Server holds the HTTP API settings.
	Server ServerConfig `toml:"server"`

	// Corpus holds the source document locations.
	Corpus CorpusConfig `toml:"corpus"`

	// Retrieval holds the retrieval tuning knobs.
	Retrieval RetrievalConfig `toml:"retrieval"`

	// SMTP holds contact notification settings. Delivery is disabled
	// when Host is empty.
	SMTP SMTPConfig `toml:"smtp"`

	// DataDir is where the history database lives. Empty uses the
	// store's default under the home directory.
	DataDir string `toml:"data_dir"`
}

// GeminiConfig configures the Gemini API adapters.
type GeminiConfig struct {
	APIKey         string `toml:"api_key"`
	ChatModel      string `toml:"chat_model"`
	EmbeddingModel string `toml:"embedding_model"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// CorpusConfig locates the source documents.
type CorpusConfig struct {
	ProfilePath string `toml:"profile_path"`
	ResumePath  string `toml:"resume_path"`
}

// RetrievalConfig tunes retrieval.
type RetrievalConfig struct {
	TopK int `toml:"top_k"`

	// MinSimilarity drops hits below the cosine cutoff. 0 disables the
	// cutoff and always keeps the top-K closest chunks.
	MinSimilarity float64 `toml:"min_similarity"`
}

// SMTPConfig configures contact email delivery.
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	Owner    string `toml:"owner"`
}

// Load reads configuration in precedence order: defaults, then the TOML
// file at path (skipped when absent), then environment variables. A .env
// file in the working directory seeds the environment first.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := defaults()

	if path == "" {
		path = defaultPath()
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	applyEnv(cfg)
	normalise(cfg)
	return cfg, nil
}

// defaults returns the built-in configuration.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Corpus: CorpusConfig{
			ProfilePath: DefaultProfilePath,
			ResumePath:  DefaultResumePath,
		},
		Retrieval: RetrievalConfig{
			TopK:          DefaultTopK,
			MinSimilarity: DefaultMinSimilarity,
		},
	}
}

// defaultPath is ~/.portfolio-assistant/config.toml.
func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".portfolio-assistant", "config.toml")
}

// applyEnv overlays environment variables onto the config.
func applyEnv(cfg *Config) {
	setString(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	setString(&cfg.Gemini.ChatModel, "GEMINI_CHAT_MODEL")
	setString(&cfg.Gemini.EmbeddingModel, "GEMINI_EMBEDDING_MODEL")

	setString(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "SERVER_PORT")

	setString(&cfg.Corpus.ProfilePath, "PROFILE_PATH")
	setString(&cfg.Corpus.ResumePath, "RESUME_PATH")

	setInt(&cfg.Retrieval.TopK, "RETRIEVAL_TOP_K")
	setFloat(&cfg.Retrieval.MinSimilarity, "RETRIEVAL_MIN_SIMILARITY")

	setString(&cfg.SMTP.Host, "SMTP_HOST")
	setInt(&cfg.SMTP.Port, "SMTP_PORT")
	setString(&cfg.SMTP.Username, "SMTP_USERNAME")
	setString(&cfg.SMTP.Password, "SMTP_PASSWORD")
	setString(&cfg.SMTP.From, "SMTP_FROM")
	setString(&cfg.SMTP.Owner, "SMTP_OWNER")

	setString(&cfg.DataDir, "DATA_DIR")
}

// normalise clamps invalid values back to their defaults.
func normalise(cfg *Config) {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Retrieval.TopK <= 0 {
		cfg.Retrieval.TopK = DefaultTopK
	}
	if cfg.Retrieval.MinSimilarity < 0 || cfg.Retrieval.MinSimilarity > 1 {
		cfg.Retrieval.MinSimilarity = DefaultMinSimilarity
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
