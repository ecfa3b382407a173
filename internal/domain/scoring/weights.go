package scoring

// Weights configures the aggregation of component scores. Passed into the
// engine rather than read from package globals so tests can inject alternate
// tables.
type Weights struct {
	HardSkills    float64
	SoftSkills    float64
	Experience    float64
	Communication float64
	RoleAlignment float64
}

// DefaultWeights returns the production weight table. The weights sum to 1.0.
func DefaultWeights() Weights {
	return Weights{
		HardSkills:    0.40,
		SoftSkills:    0.20,
		Experience:    0.20,
		Communication: 0.15,
		RoleAlignment: 0.05,
	}
}

func (w Weights) isZero() bool {
	return w.HardSkills == 0 && w.SoftSkills == 0 && w.Experience == 0 &&
		w.Communication == 0 && w.RoleAlignment == 0
}
