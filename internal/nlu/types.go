package nlu

import (
	"fmt"

	"todo-assistant/internal/model"
)

// IntentKind is the classified purpose of an utterance.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentView
	IntentCreate
	IntentDelete
	IntentComplete
	IntentIncomplete
	IntentUpdate
	IntentSearch
	IntentStats
	IntentClearCompleted
)

var intentNames = map[IntentKind]string{
	IntentNone:           "none",
	IntentView:           "view",
	IntentCreate:         "create",
	IntentDelete:         "delete",
	IntentComplete:       "complete",
	IntentIncomplete:     "incomplete",
	IntentUpdate:         "update",
	IntentSearch:         "search",
	IntentStats:          "stats",
	IntentClearCompleted: "clear_completed",
}

func (k IntentKind) String() string {
	if s, ok := intentNames[k]; ok {
		return s
	}
	return fmt.Sprintf("intent(%d)", int(k))
}

// MarshalText lets IntentKind render by name in JSON.
func (k IntentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseIntentKind maps a rule-table name to its IntentKind.
func ParseIntentKind(s string) (IntentKind, error) {
	for k, name := range intentNames {
		if k != IntentNone && name == s {
			return k, nil
		}
	}
	return IntentNone, fmt.Errorf("%w: %q", ErrUnknownIntent, s)
}

// Entities are the structured values extracted from an utterance.
// Empty strings mean "absent"; Priority is always set.
type Entities struct {
	Numbers    []int64        `json:"numbers,omitempty"`
	Priority   model.Priority `json:"priority"`
	Category   string         `json:"category,omitempty"`
	FreeText   string         `json:"free_text,omitempty"`
	SearchTerm string         `json:"search_term,omitempty"`
}

// Analysis is the result of classifying one utterance.
type Analysis struct {
	SourceText     string     `json:"source_text"`
	NormalizedText string     `json:"normalized_text"`
	Intent         IntentKind `json:"intent"`
	Confidence     float64    `json:"confidence"`
	Entities       Entities   `json:"entities"`
}

// Config configures the Engine.
type Config struct {
	// ConfidenceThreshold gates direct call synthesis. Zero means DefaultConfidenceThreshold.
	ConfidenceThreshold float64
}
