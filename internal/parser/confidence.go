package parser

// baseConfidence is the starting score for every heuristically parsed record.
const baseConfidence = 50

// confidence accumulates fixed per-rule deltas and clamps once at the end,
// so each contributing rule stays testable in isolation.
type confidence struct {
	score int
}

func newConfidence() *confidence {
	return &confidence{score: baseConfidence}
}

func (c *confidence) add(delta int) {
	c.score += delta
}

// value clamps the accumulated score to [0, 100].
func (c *confidence) value() int {
	return clampConfidence(c.score)
}

func clampConfidence(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
