// Package formatter shapes search outcomes for the two consumer kinds:
// raw-envelope callers and chat-completion callers.
package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
)

const (
	completionID     = "chatcmpl-openmeasures"
	completionObject = "chat.completion"

	// createdFallback stands in when the caller supplies no usable
	// request time.
	createdFallback = 1234567890

	// DefaultModel is echoed back when a chat request names none.
	DefaultModel = "openai/gpt-oss-20b"
)

// Raw returns the payload for simple-format consumers: the search body
// untouched on success, an error field on failure. Raw-mode consumers
// depend on the engine's response structure passing through unchanged.
func Raw(resp *openmeasures.Response, searchErr error) any {
	if searchErr != nil {
		return map[string]string{"error": searchErr.Error()}
	}
	return resp.Body
}

// Created resolves the created timestamp from a caller-supplied header
// value, falling back to a fixed constant unless it parses as a positive
// integer.
func Created(headerValue string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(headerValue), 10, 64)
	if err != nil || n <= 0 {
		return createdFallback
	}
	return n
}

// ChatCompletion wraps assistant content in a well-formed completion
// object. Downstream failures never surface as HTTP errors in this
// shape; they are described inside the message instead.
func ChatCompletion(model string, created int64, content string) openai.ChatCompletionResponse {
	if model == "" {
		model = DefaultModel
	}
	return openai.ChatCompletionResponse{
		ID:      completionID,
		Object:  completionObject,
		Created: created,
		Model:   model,
		Choices: []openai.ChatCompletionChoice{{
			Index: 0,
			Message: openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: content,
			},
			FinishReason: openai.FinishReasonStop,
		}},
	}
}

// ParseFailureNarrative describes an interpretation failure for chat
// consumers.
func ParseFailureNarrative(err error) string {
	return fmt.Sprintf("Error parsing query: %s", err)
}

// SearchNarrative builds the Markdown block describing a search outcome:
// outcome banner, echoed parameters, the reconstructed request URL, and
// on success the full raw results in a fenced JSON block.
func SearchNarrative(query string, params openmeasures.Params, requestURL string, resp *openmeasures.Response, searchErr error) string {
	var b strings.Builder

	if searchErr != nil {
		fmt.Fprintf(&b, "Error searching Open Measures: %s\n\n", searchErr)
		writeRequestURL(&b, requestURL)
		return b.String()
	}

	hits := resp.Hits()
	if len(hits) == 0 {
		fmt.Fprintf(&b, "❌ No results found for: %s\n\n", query)
		writeParams(&b, params)
		b.WriteString("\n")
		writeRequestURL(&b, requestURL)
		return b.String()
	}

	b.WriteString("✅ Open Measures Search Complete\n\n")
	writeParams(&b, params)
	fmt.Fprintf(&b, "- Results Received: `%d`\n", len(hits))
	fmt.Fprintf(&b, "- Total Available: `%d`\n\n", resp.Total())
	writeRequestURL(&b, requestURL)
	b.WriteString("\n\n**Raw JSON Results:**\n```json\n")
	b.WriteString(prettyJSON(resp.Body))
	b.WriteString("\n```")
	return b.String()
}

func writeParams(b *strings.Builder, p openmeasures.Params) {
	b.WriteString("**Search Parameters:**\n")
	fmt.Fprintf(b, "- Term: `%s`\n", p.Term)
	fmt.Fprintf(b, "- Platform: `%s`\n", p.Site)
	fmt.Fprintf(b, "- Query Type: `%s`\n", p.QueryType)
	fmt.Fprintf(b, "- Limit: `%d`\n", p.Limit)
}

func writeRequestURL(b *strings.Builder, requestURL string) {
	fmt.Fprintf(b, "**API Request Sent:**\n```\n%s\n```", requestURL)
}

func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
