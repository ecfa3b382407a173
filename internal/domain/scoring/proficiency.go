package scoring

import "strings"

const (
	// Fallback multipliers for unknown or missing proficiency labels. The
	// fallback is part of the contract: free-text labels that do not resolve
	// against the table still score, they are never an error.
	DefaultHardProficiency = 0.5
	DefaultSoftProficiency = 0.7
)

var proficiencyWeights = map[string]float64{
	"beginner":     0.4,
	"intermediate": 0.7,
	"advanced":     0.9,
	"expert":       1.0,
}

// ProficiencyWeight resolves a proficiency label to its multiplier. Lookup is
// case-insensitive; unresolved labels return fallback.
func ProficiencyWeight(level string, fallback float64) float64 {
	w, ok := proficiencyWeights[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return fallback
	}
	return w
}
