package orchestrator

import "time"

// Log prefixes
const (
	LogPrefixProcessQuery = "internal.agent.orchestrator.ProcessQuery"
	LogPrefixAskModel     = "internal.agent.orchestrator.askModel"
)

// System prompt. %s is the tool catalog rendered by ToolRegistry.Describe.
const (
	SystemPromptTemplate = `You are a todo list assistant. You act on the list only by writing function calls
in this notation, one per line:

  name(arg1, arg2, option=value)

Strings are double-quoted, numbers are plain decimals, lists look like [1, 2].
When the user asks for an action, reply with the calls and nothing else.
If the request is not about the todo list, answer briefly in plain text without any call.

Available functions:
%s`
)

// User-facing messages
const (
	MsgHelpHeader      = "I can manage your todo list. Try things like:"
	MsgExamples        = "  add buy milk with high priority\n  show my todos\n  complete 3\n  delete 2 and 5\n  search milk\n  stats"
	MsgUnrecognized    = "Sorry, I did not understand that."
	MsgHint            = "Type \"help\" for all commands, or try:"
	MsgDegraded        = "The language model is unavailable right now, so only simple commands work."
	MsgCommandsHeading = "Commands:"
)

// Configuration
const (
	MaxSessionHistory      = 10 // Last 5 turns (10 messages)
	DefaultModelTimeout    = 20 * time.Second
	DefaultSessionTTL      = 30 * time.Minute
	DefaultSessionCapacity = 10000
)
