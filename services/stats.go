package services

import "strconv"

// XPPerLevel is the fixed band size: every 500 XP is one level.
const XPPerLevel = 500

// SecretAreaMinLevel gates the privileged dashboard area.
const SecretAreaMinLevel = 5

// Completion award weights: base + priority and effort multipliers.
const (
	CompletionBaseXP     = 30
	CompletionPriorityXP = 20
	CompletionEffortXP   = 10
)

// LevelFor maps raw XP to a level. Level 1 starts at 0 XP.
func LevelFor(xp int64) int {
	if xp < 0 {
		xp = 0
	}
	return int(xp/XPPerLevel) + 1
}

// ProgressPercent returns progress within the current level band as 0..100.
func ProgressPercent(xp int64) float64 {
	if xp < 0 {
		xp = 0
	}
	return float64(xp%XPPerLevel) / XPPerLevel * 100
}

// XPToNext returns the XP still missing for the next level.
func XPToNext(xp int64) int64 {
	if xp < 0 {
		xp = 0
	}
	return XPPerLevel - xp%XPPerLevel
}

// SecretAreaVisible reports whether the privileged area link is shown.
func SecretAreaVisible(xp int64) bool {
	return LevelFor(xp) >= SecretAreaMinLevel
}

// CompletionAward computes the XP granted for completing a task.
func CompletionAward(priority, effort int) int64 {
	return CompletionBaseXP + int64(priority)*CompletionPriorityXP + int64(effort)*CompletionEffortXP
}

// ClassAverage is the arithmetic mean of recorded grade values.
// ok is false when there are no entries and no average is defined.
func ClassAverage(values []float64) (avg float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// WeightedPair is a transient calculator row. Values arrive as raw strings
// from form inputs and are never persisted.
type WeightedPair struct {
	Value  string `json:"value"`
	Weight string `json:"weight"`
}

// WeightedAverage computes sum(value * weight/100) over the pairs where both
// fields parse as numbers. Pairs that do not parse are excluded from the
// numerator and from the weight total. weightWarning is true when the summed
// weight of the counted pairs is positive but not 100 — the result is still
// returned, the caller just surfaces a notice.
func WeightedAverage(pairs []WeightedPair) (result float64, weightWarning bool) {
	var totalWeight float64
	for _, p := range pairs {
		v, errV := strconv.ParseFloat(p.Value, 64)
		w, errW := strconv.ParseFloat(p.Weight, 64)
		if errV != nil || errW != nil {
			continue
		}
		result += v * (w / 100)
		totalWeight += w
	}
	weightWarning = totalWeight > 0 && totalWeight != 100
	return result, weightWarning
}
