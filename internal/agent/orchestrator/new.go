package orchestrator

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/agent/dispatcher"
	"todo-assistant/internal/agent/notation"
	"todo-assistant/pkg/llmprovider"
	pkgLog "todo-assistant/pkg/log"
)

type Orchestrator struct {
	nlu        Classifier
	parser     *notation.Parser
	dispatcher *dispatcher.Dispatcher
	registry   *agent.ToolRegistry
	llm        Generator
	l          pkgLog.Logger
	cfg        Config

	sessionMu sync.Mutex
	sessions  *expirable.LRU[string, *SessionMemory]
}

// New creates an Orchestrator. llm may be nil, in which case only rule-based
// handling is available.
func New(l pkgLog.Logger, classifier Classifier, registry *agent.ToolRegistry, disp *dispatcher.Dispatcher, llm Generator, cfg Config) *Orchestrator {
	if cfg.ModelTimeout <= 0 {
		cfg.ModelTimeout = DefaultModelTimeout
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.SessionCapacity <= 0 {
		cfg.SessionCapacity = DefaultSessionCapacity
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = MaxSessionHistory
	}

	return &Orchestrator{
		nlu:        classifier,
		parser:     notation.New(registry),
		dispatcher: disp,
		registry:   registry,
		llm:        llm,
		l:          l,
		cfg:        cfg,
		sessions:   expirable.NewLRU[string, *SessionMemory](cfg.SessionCapacity, nil, cfg.SessionTTL),
	}
}

// session returns the memory for id, creating it if needed.
func (o *Orchestrator) session(id string) *SessionMemory {
	o.sessionMu.Lock()
	defer o.sessionMu.Unlock()

	if s, ok := o.sessions.Get(id); ok {
		return s
	}
	s := &SessionMemory{SessionID: id}
	o.sessions.Add(id, s)
	return s
}

// History returns a copy of the session's rolling history.
func (o *Orchestrator) History(sessionID string) []llmprovider.Message {
	s, ok := o.sessions.Peek(sessionID)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llmprovider.Message(nil), s.Messages...)
}

// Registry exposes the tool catalog for help output.
func (o *Orchestrator) Registry() *agent.ToolRegistry {
	return o.registry
}

// Reset clears the session's history. The session entry and its lock are kept so
// an utterance still in flight stays serialized with the next one. It reports
// whether the session existed.
func (o *Orchestrator) Reset(sessionID string) bool {
	o.sessionMu.Lock()
	s, ok := o.sessions.Peek(sessionID)
	o.sessionMu.Unlock()
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = nil
	s.LastUpdated = time.Now()
	return true
}
