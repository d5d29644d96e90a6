package main

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
)

var judgeAxes = []string{"accuracy", "tone"}

const judgeRubricTemplate = `You review incident communications. Rate the CUSTOMER UPDATE below on each axis, 0-100:
- accuracy: factual consistency with an incident notice (no invented details, no contradictions)
- tone: how well it matches the brand tone (professional, concise, reassuring)

Respond with JSON only (no markdown):
{"accuracy": 85, "tone": 90}

CUSTOMER UPDATE:
%s`

// JudgeDraft asks the judge model to score the customer text. Malformed
// judge output never fails the cycle; it degrades to zero scores (see
// parseScores). Only the provider call itself can return an error.
func JudgeDraft(cfg Config, complete completionFunc, customer string) (Evaluation, LLMUsage, error) {
	prompt := fmt.Sprintf(judgeRubricTemplate, customer)
	responseText, usage, err := complete(cfg.resolvedJudgeModel(), prompt, 0)
	if err != nil {
		return Evaluation{}, usage, err
	}

	scores, ok := parseScores(responseText, judgeAxes)
	ev := Evaluation{
		Accuracy: scores["accuracy"],
		Tone:     scores["tone"],
		Degraded: !ok,
	}
	return ev, usage, nil
}

// parseScores extracts named 0-100 axes from a judge response. It tries a
// JSON object first (markdown fences tolerated). For single-axis rubrics it
// falls back to the first integer-looking token. Axes that cannot be parsed
// come back as 0 with ok=false; callers can tell a degraded zero from a real
// one.
func parseScores(responseText string, axes []string) (map[string]int, bool) {
	scores := make(map[string]int, len(axes))
	for _, axis := range axes {
		scores[axis] = 0
	}

	cleaned := strings.TrimSpace(responseText)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil {
		ok := true
		for _, axis := range axes {
			num, found := obj[axis].(float64)
			if !found {
				log.Printf("judge parse degraded axis=%s reason=missing-field", axis)
				ok = false
				continue
			}
			scores[axis] = clampScore(int(num))
		}
		return scores, ok
	}

	if len(axes) == 1 {
		if m := firstIntRe.FindString(responseText); m != "" {
			n, err := strconv.Atoi(m)
			if err == nil {
				log.Printf("judge parse degraded axis=%s reason=integer-fallback score=%d", axes[0], n)
				scores[axes[0]] = clampScore(n)
				return scores, true
			}
		}
	}

	preview := responseText
	if len(preview) > 120 {
		preview = preview[:120] + "..."
	}
	log.Printf("judge parse degraded reason=unparseable response=%q", preview)
	return scores, false
}

var firstIntRe = regexp.MustCompile(`\d+`)

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
