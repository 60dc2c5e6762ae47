package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is constructed once at
// process start and passed explicitly to every component that needs it;
// nothing reads the environment ad hoc after Load returns.
type Config struct {
	LLM     LLMConfig     `mapstructure:"llm"`
	Agent   AgentConfig   `mapstructure:"agent"`
	Session SessionConfig `mapstructure:"session"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type LLMConfig struct {
	Provider string       `mapstructure:"provider"` // google, openai, ollama, stub
	Gemini   GeminiConfig `mapstructure:"gemini"`
	OpenAI   OpenAIConfig `mapstructure:"openai"`
	Ollama   OllamaConfig `mapstructure:"ollama"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type OllamaConfig struct {
	Host  string `mapstructure:"host"`
	Model string `mapstructure:"model"`
}

// AgentConfig carries the assistant persona and the turn-loop policy.
type AgentConfig struct {
	Name          string `mapstructure:"name"`
	Role          string `mapstructure:"role"`
	Company       string `mapstructure:"company"`
	MaxToolRounds int    `mapstructure:"max_tool_rounds"`
	DefaultUserID string `mapstructure:"default_user_id"`
}

type SessionConfig struct {
	DBPath string `mapstructure:"db_path"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type CatalogConfig struct {
	// Path optionally points at a YAML listing file. Empty means the
	// built-in sample catalog.
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Verbose bool   `mapstructure:"verbose"`
	Format  string `mapstructure:"format"` // console or json
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: defaults plus env vars.
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the selected provider has what it needs.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "google":
		if c.LLM.Gemini.APIKey == "" {
			return errors.New("GOOGLE_API_KEY is not set")
		}
	case "openai":
		if c.LLM.OpenAI.APIKey == "" {
			return errors.New("OPENAI_API_KEY is not set")
		}
	case "ollama", "stub":
	default:
		return fmt.Errorf("unsupported llm provider: %s", c.LLM.Provider)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", "google")
	v.SetDefault("llm.gemini.model", "gemini-2.0-flash")
	v.SetDefault("llm.openai.model", "gpt-4-turbo")
	v.SetDefault("llm.ollama.host", "http://localhost:11434")
	v.SetDefault("llm.ollama.model", "llama3.2")

	v.SetDefault("agent.name", "Sarah")
	v.SetDefault("agent.role", "Senior Real Estate Agent")
	v.SetDefault("agent.company", "Premier Realty Group")
	v.SetDefault("agent.max_tool_rounds", 8)
	v.SetDefault("agent.default_user_id", "1")

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	v.SetDefault("session.db_path", filepath.Join(home, ".myhome", "sessions.db"))

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "real_estate")

	v.SetDefault("logging.verbose", false)
	v.SetDefault("logging.format", "console")
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("llm.provider", "LLM_PROVIDER")
	v.BindEnv("llm.gemini.api_key", "GOOGLE_API_KEY")
	v.BindEnv("llm.gemini.model", "GEMINI_MODEL")
	v.BindEnv("llm.openai.api_key", "OPENAI_API_KEY")
	v.BindEnv("llm.openai.model", "OPENAI_MODEL")
	v.BindEnv("llm.ollama.host", "OLLAMA_HOST")

	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("mongo.database", "MONGO_DATABASE")

	v.BindEnv("session.db_path", "SESSION_DB_PATH")
	v.BindEnv("catalog.path", "CATALOG_PATH")
}
