package orchestrator

import (
	"context"
	"sync"
	"time"

	"todo-assistant/internal/agent/dispatcher"
	"todo-assistant/internal/nlu"
	"todo-assistant/pkg/llmprovider"
)

// Classifier turns an utterance into an analysis and, when confident, a call.
type Classifier interface {
	Analyze(ctx context.Context, text string) nlu.Analysis
	Synthesize(a nlu.Analysis) (string, bool)
}

// Generator is the external conversational model.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes the orchestrator. Zero values take the package defaults.
type Config struct {
	ModelTimeout    time.Duration
	SessionTTL      time.Duration
	SessionCapacity int
	MaxHistory      int

	// Sampling settings passed to the model. Zero leaves the provider default.
	Temperature float64
	MaxTokens   int
}

// Source tells which stage produced the calls of a reply.
type Source string

const (
	SourceRules     Source = "rules"
	SourceNotation  Source = "notation"
	SourceHeuristic Source = "heuristic"
	SourceModel     Source = "model"
	SourceHelp      Source = "help"
	SourceNone      Source = "none"
)

// Reply is the outcome of one utterance.
type Reply struct {
	Text     string                  `json:"text"`
	Source   Source                  `json:"source"`
	Analysis nlu.Analysis            `json:"analysis"`
	Calls    []string                `json:"calls,omitempty"`
	Results  []dispatcher.CallResult `json:"results,omitempty"`
	Degraded bool                    `json:"degraded,omitempty"`
}

// SessionMemory holds the recent conversation history for a session.
// mu serializes utterances of the same session.
type SessionMemory struct {
	mu          sync.Mutex
	SessionID   string
	Messages    []llmprovider.Message
	LastUpdated time.Time
}

func (s *SessionMemory) append(limit int, msgs ...llmprovider.Message) {
	s.Messages = append(s.Messages, msgs...)
	if len(s.Messages) > limit {
		s.Messages = s.Messages[len(s.Messages)-limit:]
	}
	s.LastUpdated = time.Now()
}
