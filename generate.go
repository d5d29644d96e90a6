package main

import (
	"fmt"
	"log"
	"sync"
	"time"
)

const incidentPromptTemplate = `You are the incident-comms assistant.
Generate INTERNAL SUMMARY as two sub-lists:
- **What Happened** (3-4 bullets)
- **Next Steps** (2-3 bullets)

Then generate CUSTOMER UPDATE as two paragraphs.

Incident Severity: %s
Impacted Components: %s
ETA for Resolution: %s

Include a placeholder "[Name/Role]" for Communication Lead.
Tone: professional, concise, reassuring.`

func BuildIncidentPrompt(req IncidentRequest) string {
	return fmt.Sprintf(incidentPromptTemplate, req.Severity, req.Components, req.ETA)
}

type GenerationResult struct {
	Prompt string
	Prod   RawCompletion
	Shadow *RawCompletion // nil unless shadow mode is enabled
	Usage  LLMUsage
}

// GenerateDrafts calls the production model and, in shadow mode, the shadow
// model concurrently. Both legs complete before it returns, each with its
// own wall-clock latency. A provider error on either leg fails the whole
// generation; the error is propagated uninterpreted.
func GenerateDrafts(cfg Config, complete completionFunc, req IncidentRequest) (GenerationResult, error) {
	prompt := BuildIncidentPrompt(req)

	models := []string{cfg.resolvedProductionModel()}
	if cfg.ShadowEnabled {
		models = append(models, cfg.resolvedShadowModel())
	}

	type legResult struct {
		completion RawCompletion
		usage      LLMUsage
		err        error
	}
	results := make([]legResult, len(models))

	var wg sync.WaitGroup
	for i, model := range models {
		wg.Add(1)
		go func(idx int, model string) {
			defer wg.Done()
			start := time.Now()
			text, usage, err := complete(model, prompt, cfg.Temperature)
			results[idx] = legResult{
				completion: RawCompletion{Text: text, Latency: time.Since(start), Model: model},
				usage:      usage,
				err:        err,
			}
		}(i, model)
	}
	wg.Wait()

	out := GenerationResult{Prompt: prompt}
	for _, r := range results {
		out.Usage.Add(r.usage)
		if r.err != nil {
			return GenerationResult{}, r.err
		}
	}
	out.Prod = results[0].completion
	log.Printf("llm draft model=%s latency=%s", out.Prod.Model, out.Prod.Latency.Round(time.Millisecond))
	if len(results) > 1 {
		shadow := results[1].completion
		out.Shadow = &shadow
		log.Printf("llm shadow draft model=%s latency=%s", shadow.Model, shadow.Latency.Round(time.Millisecond))
	}
	return out, nil
}
