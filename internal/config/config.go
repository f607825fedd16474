package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

// Config holds all configuration from environment variables.
type Config struct {
	Token   string `envconfig:"TELEGRAM_API_TOKEN" required:"true"`
	APIKey  string `envconfig:"OPENAI_API_KEY"`
	BaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`

	MaxTokens         int           `envconfig:"MAX_TOKENS" default:"512"`
	Temperature       float64       `envconfig:"TEMPERATURE" default:"0.7"`
	CompletionTimeout time.Duration `envconfig:"COMPLETION_TIMEOUT" default:"30s"`

	// Telegram rejects messages longer than 4096 characters.
	MaxReplyLength int `envconfig:"MAX_REPLY_LENGTH" default:"4096"`

	// Keywords that route a message to the Hausa fallback reply.
	Keywords []string `envconfig:"HAUSA_KEYWORDS" default:"ina,yaya,lafiya,na gode,sannu,assalamu,salam,kwanaki,me"`

	// Path to config.toml file
	ConfigFile string `envconfig:"CONFIG_FILE" default:"config.toml"`

	// Prompts loaded from config.toml
	Prompts Prompts
}

// Prompts holds the system prompt and fallback reply templates loaded from
// config.toml. The fallback templates are fmt format strings: the Hausa one
// takes the sender's first name and the original text, the English one only
// the original text.
type Prompts struct {
	System       string `toml:"system"`
	HausaReply   string `toml:"hausa_reply"`
	EnglishReply string `toml:"english_reply"`
}

// FileConfig represents the structure of config.toml.
type FileConfig struct {
	Prompts Prompts `toml:"prompts"`
}

// DefaultPrompts provides fallback prompts if config.toml is not found.
var DefaultPrompts = Prompts{
	System: "You are a helpful assistant. Prefer replying in Hausa if the user's message appears to be in Hausa; " +
		"otherwise reply in the user's language. Keep replies concise and friendly.",
	HausaReply:   "Na ji sakonka, %s. 🌸\nKa/ki rubuta: \"%s\". Zan iya taimaka maka/ki — menene kake/kike so na yi?",
	EnglishReply: "I heard you: \"%s\".\nYou can ask me questions or say hi (e.g., 'Assalamu').",
}

// LoadEnv loads the configuration from environment variables.
func (c Config) LoadEnv() (Config, error) {
	cfg := c

	if err := envconfig.Process("", &cfg); err != nil {
		return c, err
	}

	return cfg, nil
}

// LoadFile loads prompts from config.toml file.
func (c *Config) LoadFile() error {
	// Try to find config file
	configPath := c.ConfigFile
	if !filepath.IsAbs(configPath) {
		// Try current directory first
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			// Try executable directory
			execPath, err := os.Executable()
			if err == nil {
				execDir := filepath.Dir(execPath)
				configPath = filepath.Join(execDir, c.ConfigFile)
			}
		}
	}

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Use defaults if no config file
		c.Prompts = DefaultPrompts
		return nil
	}

	// Load TOML file
	var fileConfig FileConfig
	if _, err := toml.DecodeFile(configPath, &fileConfig); err != nil {
		return err
	}

	c.Prompts = fileConfig.Prompts

	// Use defaults for empty prompts
	if c.Prompts.System == "" {
		c.Prompts.System = DefaultPrompts.System
	}
	if c.Prompts.HausaReply == "" {
		c.Prompts.HausaReply = DefaultPrompts.HausaReply
	}
	if c.Prompts.EnglishReply == "" {
		c.Prompts.EnglishReply = DefaultPrompts.EnglishReply
	}

	return nil
}

func NewConfig() (*Config, error) {
	var cfg Config
	loadedCfg, err := cfg.LoadEnv()
	if err != nil {
		return nil, err
	}

	// Load prompts from config.toml
	if err := loadedCfg.LoadFile(); err != nil {
		return nil, err
	}

	return &loadedCfg, nil
}

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(
			NewConfig,
		),
	)
}
