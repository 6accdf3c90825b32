// Package scoring reproduces the scalar "difficulty score" and its
// bucket classification, a thin weighted-sum wrapper over the core's
// metrics. It is explicitly non-core per spec — kept only so reports
// and tests can reproduce the reference formula.
package scoring

import "go-wolfrun/internal/metrics"

// Level is the named difficulty bucket a score falls into.
type Level int

const (
	VeryEasy Level = iota
	Easy
	Medium
	Hard
	VeryHard
)

func (l Level) String() string {
	switch l {
	case VeryEasy:
		return "VERY_EASY"
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	default:
		return "VERY_HARD"
	}
}

// Score computes the weighted difficulty score over m's metric set.
// optimalMoves of -1 (no BFS solution found) contributes its literal
// value, matching the reference formula's direct use of the field.
func Score(m metrics.Metrics) float64 {
	score := 2*float64(m.OptimalMoves) +
		0.5*float64(m.BranchingFactor) +
		100*m.WolfDensity +
		1.5*(10-float64(m.DogDistanceToEdge)) +
		0.01*float64(m.DeadEndStates) +
		0.02*float64(m.SolutionWidth) +
		0.5*m.PathComplexity

	return score / (m.AverageMoveOptions + 1)
}

// Classify buckets a difficulty score into its named level, per the
// reference analyzer's 10/25/45/70 thresholds.
func Classify(score float64) Level {
	switch {
	case score < 10:
		return VeryEasy
	case score < 25:
		return Easy
	case score < 45:
		return Medium
	case score < 70:
		return Hard
	default:
		return VeryHard
	}
}
