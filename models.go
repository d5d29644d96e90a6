package main

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrValidation marks user-correctable input errors. Cycles halt at the
// validation point and nothing is persisted.
var ErrValidation = errors.New("invalid input")

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

var severityLevels = []string{"P0", "P1", "P2", "P3"}

type IncidentRequest struct {
	Severity   string // "P0".."P3"
	Components string
	ETA        string
}

func (r IncidentRequest) Validate() error {
	if strings.TrimSpace(r.Severity) == "" {
		return validationErrorf("incident severity is required")
	}
	if strings.TrimSpace(r.Components) == "" {
		return validationErrorf("impacted components are required")
	}
	if strings.TrimSpace(r.ETA) == "" {
		return validationErrorf("ETA for resolution is required")
	}
	known := false
	for _, s := range severityLevels {
		if strings.EqualFold(strings.TrimSpace(r.Severity), s) {
			known = true
			break
		}
	}
	if !known {
		return validationErrorf("unknown severity '%s' (expected one of %s)", r.Severity, strings.Join(severityLevels, ", "))
	}
	return nil
}

type Role string

const (
	RoleCommander Role = "commander"
	RoleSupport   Role = "support"
	RoleLegal     Role = "legal"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCommander:
		return RoleCommander, nil
	case RoleSupport:
		return RoleSupport, nil
	case RoleLegal:
		return RoleLegal, nil
	}
	return "", validationErrorf("unknown role '%s' (expected commander, support or legal)", s)
}

// RawCompletion is one model response with its wall-clock call latency.
type RawCompletion struct {
	Text    string
	Latency time.Duration
	Model   string
}

type ParsedDraft struct {
	Internal string
	Customer string
	ParseOK  bool
}

// Evaluation holds judge scores. Degraded is set when the judge output could
// not be parsed for at least one axis and the score fell back to zero.
type Evaluation struct {
	Accuracy int // 0-100
	Tone     int // 0-100
	Degraded bool
}

type DraftMetrics struct {
	Evaluation
	Latency time.Duration
}

type ComparisonVerdict struct {
	Prod        DraftMetrics
	Shadow      DraftMetrics
	ShadowWins  bool
	AccuracyGap int           // shadow minus prod
	LatencyGap  time.Duration // prod minus shadow; positive means shadow was faster
}

type FeedbackEntry struct {
	Rating        int // 1-5
	Comment       string
	Dissimilarity float64 // 0-1, against the draft the comment refers to
}

// SessionState is the per-session mutable history. It is created at session
// start, passed explicitly through the pipeline, and never shared across
// concurrent sessions.
type SessionState struct {
	ToneScores []int
	Feedback   []FeedbackEntry
	Usage      LLMUsage
}

// AuditRecord is the write-once row persisted per completed generation
// cycle. Pointer fields are NULL in storage when the cycle had no shadow
// leg or no submitted feedback.
type AuditRecord struct {
	ID             string
	CreatedAt      time.Time // UTC
	Prompt         string
	CustomerText   string
	Accuracy       int
	Tone           int
	ProdLatency    time.Duration
	ShadowAccuracy *int
	ShadowLatency  *time.Duration
	Dissimilarity  *float64
	Rating         *int
	Comment        string
}
