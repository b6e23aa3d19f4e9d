package orchestrator

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"todo-assistant/internal/agent/notation"
	"todo-assistant/internal/agent/tools"
	"todo-assistant/internal/nlu"
	"todo-assistant/pkg/llmprovider"
	pkgLog "todo-assistant/pkg/log"
)

var (
	helpRe   = regexp.MustCompile(`^(?:help|\?|commands|what can you do\??|how does this work\??)$`)
	listRe   = regexp.MustCompile(`^(?:list|todos|ls|all)$`)
	statsRe  = regexp.MustCompile(`^(?:stats|summary)$`)
	searchRe = regexp.MustCompile(`(?is)^(?:search|find)\s+(.+)$`)
	callRe   = regexp.MustCompile(`^[A-Za-z_]\w*\s*\(`)
)

// ProcessQuery handles one utterance: typed call notation, then the rule
// classifier, then fallback heuristics, then the external model. Utterances
// of the same session are processed one at a time.
func (o *Orchestrator) ProcessQuery(ctx context.Context, sessionID, text string) (Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}, ErrEmptyMessage
	}
	ctx = pkgLog.WithSessionID(ctx, sessionID)

	sess := o.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	reply := Reply{Analysis: o.nlu.Analyze(ctx, text)}

	calls, source := o.route(text, reply.Analysis)
	reply.Source = source
	if reply.Source == SourceHelp {
		reply.Text = o.helpText()
		queriesTotal.WithLabelValues(string(reply.Source)).Inc()
		o.finish(ctx, sess, text, reply)
		return reply, nil
	}

	if len(calls) == 0 {
		o.askModel(ctx, sess, text, &reply, &calls)
	}

	if len(calls) > 0 {
		reply.Calls = make([]string, len(calls))
		for i, c := range calls {
			reply.Calls[i] = notation.Format(c.ToolName, c.Args...)
		}
		reply.Results = o.dispatcher.Dispatch(ctx, calls)
		reply.Text = Present(reply.Results)
	}

	o.l.Infof(ctx, "%s: source=%s intent=%s confidence=%.2f calls=%d",
		LogPrefixProcessQuery, reply.Source, reply.Analysis.Intent, reply.Analysis.Confidence, len(calls))
	queriesTotal.WithLabelValues(string(reply.Source)).Inc()

	o.finish(ctx, sess, text, reply)
	return reply, nil
}

// route picks the calls for an utterance without consulting the model.
// Typed notation goes first so its arguments are never classified as prose.
func (o *Orchestrator) route(text string, a nlu.Analysis) ([]notation.Call, Source) {
	if callRe.MatchString(text) {
		if calls := o.parser.Parse(text); len(calls) > 0 {
			return calls, SourceNotation
		}
	}
	if synthesized, ok := o.nlu.Synthesize(a); ok {
		if calls := o.parser.Parse(synthesized); len(calls) > 0 {
			return calls, SourceRules
		}
	}
	norm := strings.ToLower(text)
	if helpRe.MatchString(norm) {
		return nil, SourceHelp
	}
	if h, ok := heuristic(norm, text); ok {
		return o.parser.Parse(h), SourceHeuristic
	}
	return nil, SourceNone
}

// askModel delegates to the external model. Any failure degrades to a
// rule-only notice and never aborts the utterance.
func (o *Orchestrator) askModel(ctx context.Context, sess *SessionMemory, text string, reply *Reply, calls *[]notation.Call) {
	if o.llm == nil {
		reply.Text = MsgUnrecognized + "\n" + hint()
		return
	}

	req := &llmprovider.Request{
		SystemInstruction: fmt.Sprintf(SystemPromptTemplate, o.registry.Describe()),
		Messages:          append(append([]llmprovider.Message(nil), sess.Messages...), llmprovider.Message{Role: llmprovider.RoleUser, Text: text}),
		Temperature:       o.cfg.Temperature,
		MaxTokens:         o.cfg.MaxTokens,
	}

	mctx, cancel := context.WithTimeout(ctx, o.cfg.ModelTimeout)
	defer cancel()

	resp, err := o.llm.GenerateContent(mctx, req)
	if err != nil {
		o.l.Warnf(ctx, "%s: model unavailable: %v", LogPrefixAskModel, err)
		reply.Degraded = true
		reply.Text = MsgDegraded + "\n" + hint()
		return
	}

	reply.Source = SourceModel
	*calls = o.parser.Parse(resp.Text)
	if len(*calls) == 0 {
		answer := strings.TrimSpace(resp.Text)
		if answer == "" {
			answer = MsgUnrecognized
		}
		reply.Text = answer + "\n\n" + hint()
	}
}

// finish records the turn in the session history. For executed turns the
// assistant side is the call notation, which keeps the model's context in the
// same notation it is asked to write.
func (o *Orchestrator) finish(ctx context.Context, sess *SessionMemory, text string, reply Reply) {
	assistant := reply.Text
	if len(reply.Calls) > 0 {
		assistant = strings.Join(reply.Calls, "\n")
	}
	sess.append(o.cfg.MaxHistory,
		llmprovider.Message{Role: llmprovider.RoleUser, Text: text},
		llmprovider.Message{Role: llmprovider.RoleAssistant, Text: assistant},
	)
	o.l.Debugf(ctx, "%s: history=%d", LogPrefixProcessQuery, len(sess.Messages))
}

func hint() string {
	return MsgHint + "\n" + MsgExamples
}

func (o *Orchestrator) helpText() string {
	return MsgHelpHeader + "\n" + MsgExamples + "\n\n" + MsgCommandsHeading + "\n" + o.registry.Describe()
}

// heuristic maps a few bare commands the classifier does not cover.
func heuristic(norm, original string) (string, bool) {
	switch {
	case listRe.MatchString(norm):
		return notation.Format(tools.NameGetAllTodos), true
	case statsRe.MatchString(norm):
		return notation.Format(tools.NameGetTodoStats), true
	}
	if m := searchRe.FindStringSubmatch(original); m != nil {
		term := strings.Trim(strings.TrimSpace(m[1]), `"'`)
		if term != "" {
			return notation.Format(tools.NameSearchTodos, notation.Positional(term)...), true
		}
	}
	return "", false
}
