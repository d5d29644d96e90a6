package main

import (
	"math"
	"testing"
)

func TestDissimilarityIdenticalIsZero(t *testing.T) {
	for _, text := range []string{"x", "We are investigating.", "多字节文本も"} {
		if d := Dissimilarity(text, text); d != 0 {
			t.Fatalf("expected dissimilarity(x, x)=0 for %q, got %f", text, d)
		}
	}
}

func TestDissimilarityDisjointApproachesOne(t *testing.T) {
	if d := Dissimilarity("aaaa", "bbbb"); d != 1 {
		t.Fatalf("expected dissimilarity 1 for disjoint alphabets, got %f", d)
	}
	if d := Dissimilarity("abcdefgh", "zyxwvuts"); d != 1 {
		t.Fatalf("expected dissimilarity 1 for fully disjoint strings, got %f", d)
	}
}

func TestDissimilarityPartialOverlap(t *testing.T) {
	d := Dissimilarity("abcd", "abxd")
	// matching blocks "ab" and "d": ratio = 2*3/8 = 0.75
	if math.Abs(d-0.25) > 1e-9 {
		t.Fatalf("expected dissimilarity 0.25, got %f", d)
	}
}

func TestSimilarityRatioBothEmpty(t *testing.T) {
	if r := similarityRatio("", ""); r != 1 {
		t.Fatalf("expected ratio 1 for two empty strings, got %f", r)
	}
}

func TestRecordFeedbackRejectsWhitespaceComment(t *testing.T) {
	session := &SessionState{}
	for _, comment := range []string{"", "   ", "\n\t "} {
		if _, err := session.RecordFeedback(4, comment, "reference"); err == nil {
			t.Fatalf("expected validation error for comment %q", comment)
		}
	}
	if len(session.Feedback) != 0 {
		t.Fatalf("expected rejected feedback not to be appended, log has %d entries", len(session.Feedback))
	}
}

func TestRecordFeedbackRejectsRatingOutOfRange(t *testing.T) {
	session := &SessionState{}
	for _, rating := range []int{0, -1, 6} {
		if _, err := session.RecordFeedback(rating, "solid draft", "reference"); err == nil {
			t.Fatalf("expected validation error for rating %d", rating)
		}
	}
	if len(session.Feedback) != 0 {
		t.Fatal("expected rejected feedback not to be appended")
	}
}

func TestRecordFeedbackAppendsExactlyOne(t *testing.T) {
	session := &SessionState{}
	entry, err := session.RecordFeedback(5, "reads well, maybe too long", "The draft text itself")
	if err != nil {
		t.Fatalf("RecordFeedback failed: %v", err)
	}
	if len(session.Feedback) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(session.Feedback))
	}
	if entry.Rating != 5 || entry.Comment != "reads well, maybe too long" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if entry.Dissimilarity < 0 || entry.Dissimilarity > 1 {
		t.Fatalf("dissimilarity out of range: %f", entry.Dissimilarity)
	}
}

func TestFeedbackAverages(t *testing.T) {
	session := &SessionState{
		Feedback: []FeedbackEntry{
			{Rating: 5, Dissimilarity: 0.1},
			{Rating: 3, Dissimilarity: 0.5},
		},
	}
	avgRating, avgDissim, count := session.FeedbackAverages()
	if count != 2 {
		t.Fatalf("expected count=2, got %d", count)
	}
	if math.Abs(avgRating-4.0) > 1e-9 {
		t.Fatalf("expected average rating 4.0, got %f", avgRating)
	}
	if math.Abs(avgDissim-0.3) > 1e-9 {
		t.Fatalf("expected average dissimilarity 0.3, got %f", avgDissim)
	}
}

func TestFeedbackAveragesEmptyLog(t *testing.T) {
	session := &SessionState{}
	avgRating, avgDissim, count := session.FeedbackAverages()
	if count != 0 || avgRating != 0 || avgDissim != 0 {
		t.Fatalf("expected zeros for empty log, got %f %f %d", avgRating, avgDissim, count)
	}
}
