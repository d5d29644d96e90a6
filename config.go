package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LLMProvider     string  `yaml:"llm_provider"`
	ProductionModel string  `yaml:"production_model"`
	ShadowModel     string  `yaml:"shadow_model"`
	JudgeModel      string  `yaml:"judge_model"`
	Temperature     float64 `yaml:"temperature"`
	ShadowEnabled   bool    `yaml:"shadow_enabled"`
	AnthropicAPIKey string  `yaml:"anthropic_api_key"`
	OpenAIAPIKey    string  `yaml:"openai_api_key"`

	DBPath string `yaml:"db_path"`

	CommunicationLead string `yaml:"communication_lead"`

	SlackBotToken    string `yaml:"slack_bot_token"`
	PublishChannelID string `yaml:"publish_channel_id"`
}

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.LLMProvider, "LLM_PROVIDER")
	envOverride(&cfg.ProductionModel, "PRODUCTION_MODEL")
	envOverride(&cfg.ShadowModel, "SHADOW_MODEL")
	envOverride(&cfg.JudgeModel, "JUDGE_MODEL")
	envOverrideFloat(&cfg.Temperature, "TEMPERATURE")
	envOverrideBool(&cfg.ShadowEnabled, "SHADOW_ENABLED")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.OpenAIAPIKey, "OPENAI_API_KEY")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.CommunicationLead, "COMMUNICATION_LEAD")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.PublishChannelID, "PUBLISH_CHANNEL_ID")

	// Defaults
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "anthropic"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.2
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./incidentcomms.db"
	}
	if cfg.CommunicationLead == "" {
		cfg.CommunicationLead = "On-call SRE"
	}

	// Validate required fields. A missing provider credential is fatal
	// before any cycle can run.
	switch cfg.LLMProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Fatalf("anthropic_api_key is required when llm_provider=anthropic")
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Fatalf("openai_api_key is required when llm_provider=openai")
		}
	default:
		log.Fatalf("llm_provider must be 'anthropic' or 'openai', got '%s'", cfg.LLMProvider)
	}

	if cfg.Temperature < 0 || cfg.Temperature > 1 {
		log.Fatalf("invalid temperature '%f': must be between 0 and 1", cfg.Temperature)
	}
	if (cfg.SlackBotToken == "") != (cfg.PublishChannelID == "") {
		log.Fatalf("slack_bot_token and publish_channel_id must be set together")
	}

	return cfg
}

// resolvedProductionModel and friends fall back to per-provider defaults so
// the config file only needs to name models when overriding them.
func (c Config) resolvedProductionModel() string {
	if c.ProductionModel != "" {
		return c.ProductionModel
	}
	if c.LLMProvider == "openai" {
		return defaultOpenAIModel
	}
	return defaultAnthropicModel
}

func (c Config) resolvedShadowModel() string {
	if c.ShadowModel != "" {
		return c.ShadowModel
	}
	if c.LLMProvider == "openai" {
		return defaultOpenAIShadowModel
	}
	return defaultAnthropicShadowModel
}

func (c Config) resolvedJudgeModel() string {
	if c.JudgeModel != "" {
		return c.JudgeModel
	}
	// The judge runs on the cheap model by default.
	return c.resolvedShadowModel()
}

func (c Config) publishConfigured() bool {
	return c.SlackBotToken != "" && c.PublishChannelID != ""
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideFloat(field *float64, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}

func envOverrideBool(field *bool, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
