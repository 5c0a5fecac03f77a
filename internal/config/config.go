// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SourceConfig is one job board: its bridge server and where a crawl starts.
type SourceConfig struct {
	ServerURL string `yaml:"server_url"`
	StartURL  string `yaml:"start_url"`
}

type Config struct {
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Browser
	Headless bool `yaml:"headless"`
	//Paths
	CookiesPath string `yaml:"cookies_path"`
	SessionPath string `yaml:"session_path"`
	//Timing (milliseconds)
	SettleDelayMs  int `yaml:"settle_delay_ms"`
	PaceMinMs      int `yaml:"pace_min_ms"`
	PaceMaxMs      int `yaml:"pace_max_ms"`
	ServerTimeoutS int `yaml:"server_timeout_s"`

	Sources map[string]SourceConfig `yaml:"sources"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.CookiesPath == "" {
		cfg.CookiesPath = ".cookies"
	}
	if cfg.SessionPath == "" {
		cfg.SessionPath = ".session"
	}
	if cfg.SettleDelayMs == 0 {
		cfg.SettleDelayMs = 3000
	}
	if cfg.PaceMinMs == 0 {
		cfg.PaceMinMs = 4000
	}
	if cfg.PaceMaxMs == 0 {
		cfg.PaceMaxMs = 8000
	}
	if cfg.ServerTimeoutS == 0 {
		cfg.ServerTimeoutS = 10
	}
	if cfg.Sources == nil {
		cfg.Sources = map[string]SourceConfig{}
	}

	//One bridge server per board; ports match the server side
	applySourceDefaults(cfg.Sources, "boss", SourceConfig{
		ServerURL: "http://127.0.0.1:5000",
		StartURL:  "https://www.zhipin.com/web/geek/jobs",
	})
	applySourceDefaults(cfg.Sources, "zhaopin", SourceConfig{
		ServerURL: "http://127.0.0.1:5001",
		StartURL:  "https://sou.zhaopin.com/",
	})
	applySourceDefaults(cfg.Sources, "wellfound", SourceConfig{
		ServerURL: "http://127.0.0.1:5002",
		StartURL:  "https://wellfound.com/role/r/software-engineer",
	})

	return cfg
}

func applySourceDefaults(sources map[string]SourceConfig, name string, def SourceConfig) {
	sc := sources[name]
	if sc.ServerURL == "" {
		sc.ServerURL = def.ServerURL
	}
	if sc.StartURL == "" {
		sc.StartURL = def.StartURL
	}
	sources[name] = sc
}

func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}

func (c *Config) PaceMin() time.Duration {
	return time.Duration(c.PaceMinMs) * time.Millisecond
}

func (c *Config) PaceMax() time.Duration {
	return time.Duration(c.PaceMaxMs) * time.Millisecond
}

func (c *Config) ServerTimeout() time.Duration {
	return time.Duration(c.ServerTimeoutS) * time.Second
}
