package extract

import "webfetch-api/core/domain"

// Score estimates extraction quality in [0, 1]. It is an additive heuristic,
// monotonic in each signal and capped at 1.
func Score(c domain.ExtractedContent) float64 {
	score := 0.0

	if len(c.StructuredData) > 0 {
		score += 0.3
	}
	if c.Meta.Title != "" {
		score += 0.2
	}
	if c.Meta.Description != "" {
		score += 0.1
	}

	switch length := c.MainContentLength(); {
	case length > 500:
		score += 0.3
	case length > 200:
		score += 0.2
	case length > 50:
		score += 0.1
	}

	if c.Profile != nil && c.Profile.Username != "" {
		score += 0.1
	}

	if score > 1 {
		return 1
	}
	return score
}
