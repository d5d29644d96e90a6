package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg := LoadConfig()

	if cfg.LLMProvider != "anthropic" {
		t.Fatalf("expected default provider anthropic, got %s", cfg.LLMProvider)
	}
	if cfg.Temperature != 0.2 {
		t.Fatalf("expected default temperature 0.2, got %f", cfg.Temperature)
	}
	if cfg.DBPath != "./incidentcomms.db" {
		t.Fatalf("expected default db path, got %s", cfg.DBPath)
	}
	if cfg.CommunicationLead != "On-call SRE" {
		t.Fatalf("expected default communication lead, got %s", cfg.CommunicationLead)
	}
	if cfg.ShadowEnabled {
		t.Fatal("expected shadow mode off by default")
	}
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	clearConfigEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
llm_provider: anthropic
anthropic_api_key: yaml-key
production_model: yaml-model
shadow_enabled: true
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Setenv("CONFIG_PATH", configPath)
	t.Setenv("PRODUCTION_MODEL", "env-model")
	t.Setenv("TEMPERATURE", "0.5")

	cfg := LoadConfig()

	if cfg.AnthropicAPIKey != "yaml-key" {
		t.Fatalf("expected yaml api key, got %s", cfg.AnthropicAPIKey)
	}
	if cfg.ProductionModel != "env-model" {
		t.Fatalf("expected env var to override yaml model, got %s", cfg.ProductionModel)
	}
	if cfg.Temperature != 0.5 {
		t.Fatalf("expected env temperature 0.5, got %f", cfg.Temperature)
	}
	if !cfg.ShadowEnabled {
		t.Fatal("expected shadow mode enabled from yaml")
	}
}

func TestResolvedModels(t *testing.T) {
	anthropic := Config{LLMProvider: "anthropic"}
	if anthropic.resolvedProductionModel() != defaultAnthropicModel {
		t.Fatalf("unexpected production default %s", anthropic.resolvedProductionModel())
	}
	if anthropic.resolvedShadowModel() != defaultAnthropicShadowModel {
		t.Fatalf("unexpected shadow default %s", anthropic.resolvedShadowModel())
	}
	if anthropic.resolvedJudgeModel() != defaultAnthropicShadowModel {
		t.Fatalf("expected judge to default to the shadow model, got %s", anthropic.resolvedJudgeModel())
	}

	openai := Config{LLMProvider: "openai"}
	if openai.resolvedProductionModel() != defaultOpenAIModel {
		t.Fatalf("unexpected openai production default %s", openai.resolvedProductionModel())
	}
	if openai.resolvedShadowModel() != defaultOpenAIShadowModel {
		t.Fatalf("unexpected openai shadow default %s", openai.resolvedShadowModel())
	}

	custom := Config{LLMProvider: "anthropic", JudgeModel: "judge-x"}
	if custom.resolvedJudgeModel() != "judge-x" {
		t.Fatalf("expected explicit judge model honored, got %s", custom.resolvedJudgeModel())
	}
}

func TestPublishConfigured(t *testing.T) {
	if (Config{}).publishConfigured() {
		t.Fatal("expected publish not configured without token and channel")
	}
	cfg := Config{SlackBotToken: "xoxb-test", PublishChannelID: "C123"}
	if !cfg.publishConfigured() {
		t.Fatal("expected publish configured with token and channel")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_PATH", "LLM_PROVIDER", "PRODUCTION_MODEL", "SHADOW_MODEL", "JUDGE_MODEL",
		"TEMPERATURE", "SHADOW_ENABLED", "ANTHROPIC_API_KEY", "OPENAI_API_KEY",
		"DB_PATH", "COMMUNICATION_LEAD", "SLACK_BOT_TOKEN", "PUBLISH_CHANNEL_ID",
	} {
		t.Setenv(key, "")
	}
}
