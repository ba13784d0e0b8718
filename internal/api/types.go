package api

import (
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// SearchRequest accepts both supported request formats:
//
//  1. simple: {"query": "search telegram for ..."}
//  2. chat completion: {"messages": [...], "model": "..."}
//
// Chat format is detected by the presence of both messages and model.
type SearchRequest struct {
	Query    string                         `json:"query"`
	Model    string                         `json:"model"`
	Messages []openai.ChatCompletionMessage `json:"messages"`
}

// IsChatFormat reports whether the caller expects a chat-completion
// shaped response.
func (r *SearchRequest) IsChatFormat() bool {
	return len(r.Messages) > 0 && r.Model != ""
}

// ExtractQuery pulls the search text out of either format. Chat content
// may carry an "[actor-name (actor-id) at timestamp]:" envelope; only
// the text after the first "]:" is used. The split has no escaping rule,
// so a literal "]:" early in the message truncates it.
func (r *SearchRequest) ExtractQuery() string {
	if r.Query != "" {
		return r.Query
	}
	if len(r.Messages) == 0 {
		return ""
	}
	content := r.Messages[len(r.Messages)-1].Content
	if _, after, found := strings.Cut(content, "]:"); found {
		return strings.TrimSpace(after)
	}
	return content
}

// SitesResponse lists the platform registry.
type SitesResponse struct {
	Sites      []string `json:"sites"`
	QueryTypes []string `json:"query_types"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse carries an error message and, for interpretation
// failures, the pipeline stage that produced it.
type ErrorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}
