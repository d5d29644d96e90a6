package main

import "strings"

// RecordFeedback validates one (rating, comment) pair against the draft it
// refers to and appends it to the session log. Whitespace-only comments and
// out-of-range ratings are rejected without touching the log.
func (s *SessionState) RecordFeedback(rating int, comment, referenceText string) (FeedbackEntry, error) {
	if strings.TrimSpace(comment) == "" {
		return FeedbackEntry{}, validationErrorf("feedback comment must not be empty")
	}
	if rating < 1 || rating > 5 {
		return FeedbackEntry{}, validationErrorf("rating %d out of range 1-5", rating)
	}
	entry := FeedbackEntry{
		Rating:        rating,
		Comment:       comment,
		Dissimilarity: Dissimilarity(referenceText, comment),
	}
	s.Feedback = append(s.Feedback, entry)
	return entry, nil
}

// FeedbackAverages recomputes the running averages over the full log on
// every call; nothing is cached.
func (s *SessionState) FeedbackAverages() (avgRating, avgDissimilarity float64, count int) {
	if len(s.Feedback) == 0 {
		return 0, 0, 0
	}
	var ratingSum, dissimSum float64
	for _, f := range s.Feedback {
		ratingSum += float64(f.Rating)
		dissimSum += f.Dissimilarity
	}
	n := float64(len(s.Feedback))
	return ratingSum / n, dissimSum / n, len(s.Feedback)
}

// Dissimilarity is 1 minus the matching-blocks similarity ratio between the
// reference text and the comment. Identical strings score 0; fully disjoint
// strings approach 1.
func Dissimilarity(referenceText, comment string) float64 {
	return 1 - similarityRatio(referenceText, comment)
}

// similarityRatio is the Ratcliff/Obershelp ratio: twice the total size of
// the longest matching blocks over the combined length, in [0,1].
func similarityRatio(x, y string) float64 {
	a, b := []rune(x), []rune(y)
	if len(a)+len(b) == 0 {
		return 1
	}
	return 2 * float64(matchedRunes(a, b)) / float64(len(a)+len(b))
}

// matchedRunes totals the matching blocks: find the longest common run, then
// recurse (iteratively) into the pieces left and right of it.
func matchedRunes(a, b []rune) int {
	type span struct{ alo, ahi, blo, bhi int }
	stack := []span{{0, len(a), 0, len(b)}}
	matched := 0
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, j, size := longestCommonRun(a, b, s.alo, s.ahi, s.blo, s.bhi)
		if size == 0 {
			continue
		}
		matched += size
		stack = append(stack,
			span{s.alo, i, s.blo, j},
			span{i + size, s.ahi, j + size, s.bhi},
		)
	}
	return matched
}

func longestCommonRun(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	runLen := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := map[int]int{}
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := runLen[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		runLen = next
	}
	return besti, bestj, bestsize
}
