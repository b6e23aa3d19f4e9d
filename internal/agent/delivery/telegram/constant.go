package telegram

import "time"

const (
	// SessionPrefix namespaces chat ids in the orchestrator's session store.
	SessionPrefix = "telegram_"

	processTimeout = 60 * time.Second
)

// Bot commands
const (
	CmdStart = "/start"
	CmdHelp  = "/help"
	CmdReset = "/reset"
)

// User-facing messages
const (
	MsgWelcome = "Hi! I keep your todo list.\n\nTell me what to do in plain words, for example \"add buy milk with high priority\" or \"show my todos\". Send /help for every command and /reset to forget our conversation."
	MsgReset   = "Conversation history cleared. Your todos are untouched."
	MsgFailed  = "Something went wrong while handling your message. Please try again."
)
