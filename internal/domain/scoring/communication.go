package scoring

// scoreCommunication is a pure weighted average over the externally produced
// evaluation scores. No clamping: inputs are assumed in [0,100] and
// out-of-range values propagate into the aggregate, where the final clamp
// catches them.
func scoreCommunication(c Candidate) float64 {
	return c.CommunicationScore*0.4 + c.BehavioralScore*0.3 + c.KnowledgeScore*0.3
}
