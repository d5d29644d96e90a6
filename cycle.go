package main

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CycleResult carries everything one generation cycle produced. Feedback is
// attached before finalization or not at all; the audit record is written
// exactly once, at the end.
type CycleResult struct {
	Prompt      string
	Draft       ParsedDraft // production draft, lead-substituted and scrubbed
	Prod        DraftMetrics
	WordCount   int
	ShadowDraft *ParsedDraft
	Shadow      *DraftMetrics
	Verdict     *ComparisonVerdict
	Usage       LLMUsage
	Feedback    *FeedbackEntry
}

// RunCycle executes one generation cycle: validate, generate (production and
// optionally shadow in parallel), parse, scrub, judge, compare. Provider
// errors abort the cycle with nothing persisted; parse problems degrade to
// sentinel or zero values and the cycle continues.
func RunCycle(cfg Config, complete completionFunc, session *SessionState, req IncidentRequest) (*CycleResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	gen, err := GenerateDrafts(cfg, complete, req)
	if err != nil {
		return nil, err
	}

	draft := ScrubDraft(ParseDraft(gen.Prod.Text).WithLead(cfg.CommunicationLead))
	if !draft.ParseOK {
		log.Printf("draft parse degraded model=%s raw_size=%d", gen.Prod.Model, len(gen.Prod.Text))
	}

	eval, judgeUsage, err := JudgeDraft(cfg, complete, draft.Customer)
	if err != nil {
		return nil, err
	}

	result := &CycleResult{
		Prompt:    gen.Prompt,
		Draft:     draft,
		Prod:      DraftMetrics{Evaluation: eval, Latency: gen.Prod.Latency},
		WordCount: len(strings.Fields(draft.Customer)),
		Usage:     gen.Usage,
	}
	result.Usage.Add(judgeUsage)

	if gen.Shadow != nil {
		shadowDraft := ScrubDraft(ParseDraft(gen.Shadow.Text).WithLead(cfg.CommunicationLead))
		if !shadowDraft.ParseOK {
			log.Printf("shadow draft parse degraded model=%s raw_size=%d", gen.Shadow.Model, len(gen.Shadow.Text))
		}
		shadowEval, shadowJudgeUsage, err := JudgeDraft(cfg, complete, shadowDraft.Customer)
		if err != nil {
			return nil, err
		}
		result.Usage.Add(shadowJudgeUsage)

		shadow := DraftMetrics{Evaluation: shadowEval, Latency: gen.Shadow.Latency}
		verdict := CompareDrafts(result.Prod, shadow)
		result.ShadowDraft = &shadowDraft
		result.Shadow = &shadow
		result.Verdict = &verdict
		log.Printf("compare shadow_wins=%t accuracy_gap=%d latency_gap=%s",
			verdict.ShadowWins, verdict.AccuracyGap, verdict.LatencyGap.Round(time.Millisecond))
	}

	session.ToneScores = append(session.ToneScores, eval.Tone)
	session.Usage.Add(result.Usage)
	return result, nil
}

// AttachFeedback validates and records the reviewer's feedback against the
// production customer draft, so the cycle's audit record can carry it.
func (r *CycleResult) AttachFeedback(session *SessionState, rating int, comment string) error {
	entry, err := session.RecordFeedback(rating, comment, r.Draft.Customer)
	if err != nil {
		return err
	}
	r.Feedback = &entry
	return nil
}

// FinalizeCycle builds the write-once audit record and appends it. Feedback
// fields stay NULL unless feedback was attached during this cycle; earlier
// records are never revisited.
func FinalizeCycle(cfg Config, r *CycleResult) (AuditRecord, error) {
	rec := AuditRecord{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Prompt:       r.Prompt,
		CustomerText: r.Draft.Customer,
		Accuracy:     r.Prod.Accuracy,
		Tone:         r.Prod.Tone,
		ProdLatency:  r.Prod.Latency,
	}
	if r.Shadow != nil {
		accuracy := r.Shadow.Accuracy
		latency := r.Shadow.Latency
		rec.ShadowAccuracy = &accuracy
		rec.ShadowLatency = &latency
	}
	if r.Feedback != nil {
		dissimilarity := r.Feedback.Dissimilarity
		rating := r.Feedback.Rating
		rec.Dissimilarity = &dissimilarity
		rec.Rating = &rating
		rec.Comment = r.Feedback.Comment
	}
	if err := AppendAuditRecord(cfg.DBPath, rec); err != nil {
		return AuditRecord{}, err
	}
	log.Printf("audit appended id=%s accuracy=%d tone=%d feedback=%t", rec.ID, rec.Accuracy, rec.Tone, r.Feedback != nil)
	return rec, nil
}
