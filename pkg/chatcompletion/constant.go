package chatcompletion

import "time"

// Known providers speaking the OpenAI chat-completions protocol.
const (
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
	ProviderOpenAI   = "openai"
	ProviderOllama   = "ollama"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	completionsPath = "/chat/completions"
	maxErrorBody    = 4 << 10
)

type providerDefaults struct {
	baseURL    string
	model      string
	requireKey bool
}

var defaults = map[string]providerDefaults{
	ProviderDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat", requireKey: true},
	ProviderQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus", requireKey: true},
	ProviderOpenAI:   {baseURL: "https://api.openai.com/v1", model: "gpt-4o-mini", requireKey: true},
	ProviderOllama:   {baseURL: "http://localhost:11434/v1", model: "llama3.1"},
}
