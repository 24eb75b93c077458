package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort              = 16181
	DefaultShutdownTimeoutMS = 10000
	DefaultAnswerCacheSize   = 1024
)

// DefaultPaths are tried in order when no explicit path is given
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads, overrides from the environment and validates the
// application configuration. The first readable path wins.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg := preset()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	return finish(cfg)
}

// LoadDefaults sets Config from defaults and the environment only
func LoadDefaults() error {
	return finish(preset())
}

// preset holds defaults where zero is a meaningful setting
func preset() AppConfig {
	return AppConfig{Server: ServerConfig{AnswerCacheSize: DefaultAnswerCacheSize}}
}

func finish(cfg AppConfig) error {
	applyEnv(&cfg)
	applyDefaults(&cfg)
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.ShutdownTimeoutMS == 0 {
		cfg.Server.ShutdownTimeoutMS = DefaultShutdownTimeoutMS
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
}

// applyEnv loads .env (missing file is fine) and applies CATALOGUE_* overrides
func applyEnv(cfg *AppConfig) {
	_ = godotenv.Load()

	if v := os.Getenv("CATALOGUE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("CATALOGUE_ANSWER_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.AnswerCacheSize = n
		}
	}
	if v := os.Getenv("CATALOGUE_INPUT"); v != "" {
		cfg.Catalogue.Input = v
	}
	if v := os.Getenv("CATALOGUE_INPUT_FORMAT"); v != "" {
		cfg.Catalogue.Format = v
	}
	if v := os.Getenv("CATALOGUE_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
}
