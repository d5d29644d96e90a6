package main

// CompareDrafts reconciles the production and shadow legs into a verdict.
// Pure function, no model calls: the shadow wins only when it is at least as
// accurate and strictly faster.
func CompareDrafts(prod, shadow DraftMetrics) ComparisonVerdict {
	return ComparisonVerdict{
		Prod:        prod,
		Shadow:      shadow,
		ShadowWins:  shadow.Accuracy >= prod.Accuracy && shadow.Latency < prod.Latency,
		AccuracyGap: shadow.Accuracy - prod.Accuracy,
		LatencyGap:  prod.Latency - shadow.Latency,
	}
}
