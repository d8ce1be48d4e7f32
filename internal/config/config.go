package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Quiz        QuizConfig        `mapstructure:"quiz"`
	LLM         LLMConfig         `mapstructure:"llm"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Admin       AdminConfig       `mapstructure:"admin"`
	Telegram    TelegramConfig    `mapstructure:"telegram"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	Mode           string        `mapstructure:"mode"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	SubmitLimit    int           `mapstructure:"submit_limit"`
	SubmitWindow   time.Duration `mapstructure:"submit_window"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Directory  string `mapstructure:"directory"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type QuizConfig struct {
	CatalogPath string `mapstructure:"catalog_path"`
}

// LLMConfig points at an OpenAI-compatible chat completions API.
type LLMConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	APIURL      string        `mapstructure:"api_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type PersistenceConfig struct {
	Driver     string        `mapstructure:"driver"`
	WebhookURL string        `mapstructure:"webhook_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	DSN        string        `mapstructure:"dsn"`
}

type AdminConfig struct {
	Token     string        `mapstructure:"token"`
	TokenHash string        `mapstructure:"token_hash"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.submit_limit", 10)
	v.SetDefault("server.submit_window", time.Minute)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.directory", "")
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 7)
	v.SetDefault("logging.compress", true)

	v.SetDefault("quiz.catalog_path", "")

	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.api_url", "https://api.deepseek.com/v1")
	v.SetDefault("llm.model", "deepseek-chat")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.max_tokens", 200)
	v.SetDefault("llm.timeout", 60*time.Second)

	v.SetDefault("persistence.driver", "sheets")
	v.SetDefault("persistence.webhook_url", "")
	v.SetDefault("persistence.timeout", 30*time.Second)
	v.SetDefault("persistence.dsn", "")

	v.SetDefault("admin.token", "")
	v.SetDefault("admin.token_hash", "")
	v.SetDefault("admin.jwt_secret", "")
	v.SetDefault("admin.token_ttl", 12*time.Hour)

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", 0)
}

// legacyEnv maps config keys to the environment variable names used by
// earlier deployments. QUIZ_* names take precedence.
var legacyEnv = map[string]string{
	"server.port":             "SERVER_PORT",
	"llm.api_key":             "DEEPSEEK_TOKEN",
	"persistence.webhook_url": "GOOGLE_SHEETS_WEBHOOK_URL",
	"admin.token":             "ADMIN_TOKEN",
}

// Load builds the configuration from defaults, an optional config file,
// a .env file and the environment, in increasing order of precedence.
func Load(paths ...string) (*Config, error) {
	// Missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("QUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		envName := "QUIZ_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envName, legacy); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return &cfg, nil
}
