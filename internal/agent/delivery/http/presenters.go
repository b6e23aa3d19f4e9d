package http

import (
	"strings"
	"time"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/agent/dispatcher"
	"todo-assistant/internal/agent/orchestrator"
	"todo-assistant/internal/nlu"
	"todo-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
	Message   string `json:"message"    binding:"required,max=2000"`
}

// --- Response DTOs ---

type chatResp struct {
	SessionID   string                  `json:"session_id"`
	Reply       string                  `json:"reply"`
	Source      string                  `json:"source"`
	Intent      string                  `json:"intent"`
	Confidence  float64                 `json:"confidence"`
	Entities    nlu.Entities            `json:"entities"`
	Calls       []string                `json:"calls"`
	Results     []dispatcher.CallResult `json:"results"`
	Degraded    bool                    `json:"degraded"`
	ProcessedAt response.DateTime       `json:"processed_at"`
}

func newChatResp(sessionID string, r orchestrator.Reply, now time.Time) chatResp {
	calls := r.Calls
	if calls == nil {
		calls = []string{}
	}
	results := r.Results
	if results == nil {
		results = []dispatcher.CallResult{}
	}
	return chatResp{
		SessionID:   sessionID,
		Reply:       r.Text,
		Source:      string(r.Source),
		Intent:      r.Analysis.Intent.String(),
		Confidence:  r.Analysis.Confidence,
		Entities:    r.Analysis.Entities,
		Calls:       calls,
		Results:     results,
		Degraded:    r.Degraded,
		ProcessedAt: response.DateTime(now),
	}
}

type paramResp struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Optional    bool   `json:"optional"`
	Description string `json:"description,omitempty"`
}

type toolResp struct {
	Name        string      `json:"name"`
	Signature   string      `json:"signature"`
	Description string      `json:"description"`
	Parameters  []paramResp `json:"parameters"`
}

type toolsResp struct {
	Tools []toolResp `json:"tools"`
}

func newToolsResp(tools []agent.Tool) toolsResp {
	out := toolsResp{Tools: make([]toolResp, 0, len(tools))}
	for _, t := range tools {
		params := make([]paramResp, 0, len(t.Parameters()))
		for _, p := range t.Parameters() {
			params = append(params, paramResp{
				Name:        p.Name,
				Type:        p.Type.String(),
				Optional:    p.Optional,
				Description: p.Description,
			})
		}
		out.Tools = append(out.Tools, toolResp{
			Name:        t.Name(),
			Signature:   agent.Signature(t),
			Description: strings.TrimSpace(t.Description()),
			Parameters:  params,
		})
	}
	return out
}
