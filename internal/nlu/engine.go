package nlu

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"todo-assistant/pkg/log"
)

const tracerName = "todo-assistant/internal/nlu"

// Engine is the rule-based intent classifier. It is immutable after construction
// and safe for concurrent use.
type Engine struct {
	rules     *RuleSet
	threshold float64
	l         log.Logger
}

// New creates an Engine over the embedded rule table.
func New(l log.Logger, cfg Config) (*Engine, error) {
	rules, err := LoadRules(defaultRulesYAML)
	if err != nil {
		return nil, err
	}
	return NewWithRules(l, cfg, rules)
}

// NewWithRules creates an Engine over an already compiled rule table.
func NewWithRules(l log.Logger, cfg Config, rules *RuleSet) (*Engine, error) {
	if rules == nil || len(rules.Intents) == 0 {
		return nil, ErrEmptyRules
	}
	threshold := cfg.ConfidenceThreshold
	if threshold == 0 {
		threshold = DefaultConfidenceThreshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}
	return &Engine{rules: rules, threshold: threshold, l: l}, nil
}

// Threshold returns the confidence needed for direct call synthesis.
func (e *Engine) Threshold() float64 {
	return e.threshold
}

type intentScore struct {
	kind       IntentKind
	confidence float64
	capture    string
}

// Analyze classifies text and extracts entities. Entity extraction runs regardless
// of the classification outcome.
func (e *Engine) Analyze(ctx context.Context, text string) Analysis {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "nlu.Engine.Analyze")
	defer span.End()

	norm := strings.ToLower(strings.TrimSpace(text))
	a := Analysis{
		SourceText:     text,
		NormalizedText: norm,
		Intent:         IntentNone,
	}

	best := e.classify(norm)
	a.Intent = best.kind
	a.Confidence = best.confidence

	a.Entities = Entities{
		Numbers:  extractNumbers(text),
		Priority: e.extractPriority(norm),
		Category: e.extractCategory(norm),
	}
	switch a.Intent {
	case IntentCreate:
		a.Entities.FreeText = e.extractPayload(text, true)
	case IntentUpdate:
		a.Entities.FreeText = e.extractPayload(text, false)
	case IntentSearch:
		a.Entities.SearchTerm = cleanTerm(best.capture)
	}

	classificationsTotal.WithLabelValues(a.Intent.String()).Inc()
	span.SetAttributes(
		attribute.String("intent", a.Intent.String()),
		attribute.Float64("confidence", a.Confidence),
		attribute.Int("numbers", len(a.Entities.Numbers)),
	)
	e.l.Debugf(ctx, "internal.nlu.Analyze: intent=%s confidence=%.2f priority=%s category=%q",
		a.Intent, a.Confidence, a.Entities.Priority, a.Entities.Category)

	return a
}

// classify scores every intent and returns the strictly highest. Ties keep the
// earlier intent in rule-table order.
func (e *Engine) classify(norm string) intentScore {
	best := intentScore{kind: IntentNone}
	if norm == "" {
		return best
	}

	for _, rule := range e.rules.Intents {
		s, ok := score(rule, norm)
		if ok && s.confidence > best.confidence {
			best = s
		}
	}
	return best
}

// score computes min(1, 0.3*matches + min(0.4, avgSpan/len) + 0.1*filters).
func score(rule IntentRule, norm string) (intentScore, bool) {
	s := intentScore{kind: rule.Kind}

	matches, spanTotal := 0, 0
	for _, m := range rule.Matchers {
		loc := m.FindStringSubmatchIndex(norm)
		if loc == nil {
			continue
		}
		matches++
		spanTotal += loc[1] - loc[0]
		if s.capture == "" {
			s.capture = firstCapture(norm, loc)
		}
	}
	if matches == 0 {
		return s, false
	}

	filters := 0
	for _, f := range rule.Filters {
		if f.MatchString(norm) {
			filters++
		}
	}

	avgSpan := float64(spanTotal) / float64(matches)
	boost := min(maxSpanBoost, avgSpan/float64(len(norm)))
	s.confidence = min(1.0, matchWeight*float64(matches)+boost+filterBoost*float64(filters))
	return s, true
}

func firstCapture(s string, loc []int) string {
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			continue
		}
		if c := strings.TrimSpace(s[loc[i]:loc[i+1]]); c != "" {
			return c
		}
	}
	return ""
}
