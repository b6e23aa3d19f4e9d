package nlu

const (
	// DefaultConfidenceThreshold is the minimum confidence for direct call synthesis.
	DefaultConfidenceThreshold = 0.3

	matchWeight  = 0.3
	maxSpanBoost = 0.4
	filterBoost  = 0.1
)
