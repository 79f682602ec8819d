package models

// ChartFullMark is the nominal outer ring of the radar projection.
// Scores are plotted over the domain [-ChartFullMark, ChartFullMark].
const ChartFullMark = 10

// ScoreVector holds the accumulated score of every axis
type ScoreVector map[Axis]float64

// NewScoreVector returns a vector with every axis initialised to 0
func NewScoreVector() ScoreVector {
	v := make(ScoreVector, axisCount)
	for _, axis := range AllAxes() {
		v[axis] = 0
	}
	return v
}

// ChartPoint is one spoke of the chart-ready projection of a ScoreVector
type ChartPoint struct {
	Axis     Axis    // Axis plotted on this spoke
	Subject  string  // Axis label with underscores replaced by spaces
	Score    float64 // Accumulated score
	FullMark float64 // Outer ring value
}

// Result is the outcome of scoring one complete answer set.
// It is derived and ephemeral; nothing here is persisted.
type Result struct {
	Scores     ScoreVector  // Accumulated score per axis
	Tiers      TierMap      // Tier per axis
	Chart      []ChartPoint // Scores in canonical axis order
	Archetype  *Archetype   // First matching archetype, nil when none matched
	Candidates []string     // Names of every satisfied archetype, in table order
}

// Matched returns the matched archetype and true, or the zero value and
// false when no archetype matched.
func (r *Result) Matched() (Archetype, bool) {
	if r == nil || r.Archetype == nil {
		return Archetype{}, false
	}
	return *r.Archetype, true
}
