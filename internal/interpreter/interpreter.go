// Package interpreter turns free-text search requests into structured
// Open Measures query parameters using an LLM.
package interpreter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
)

// Completer abstracts the LLM dependency.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ParseError reports a model reply that could not be parsed as JSON.
// Raw keeps the unparsed reply for caller-side diagnostics; the
// condition is local and recoverable, no retry is attempted.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse query: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Interpreter extracts search parameters from natural language.
type Interpreter struct {
	completer Completer
}

// New creates an interpreter backed by the given completer.
func New(completer Completer) *Interpreter {
	return &Interpreter{completer: completer}
}

// Interpret asks the model for structured parameters and applies the
// registry defaults. Site and querytype are not validated here; unknown
// values are forwarded downstream as-is.
func (i *Interpreter) Interpret(ctx context.Context, userQuery string) (openmeasures.Params, error) {
	reply, err := i.completer.Complete(ctx, BuildParsePrompt(userQuery))
	if err != nil {
		return openmeasures.Params{}, err
	}
	return ParseReply(reply)
}

// ParseReply extracts parameters from a model reply, tolerating an
// enclosing fenced code block and a leading "json" language tag. Field
// extraction is lenient: a limit sent as a quoted number still parses.
func ParseReply(reply string) (openmeasures.Params, error) {
	cleaned := StripFence(reply)

	var probe map[string]any
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return openmeasures.Params{}, &ParseError{Raw: reply, Err: err}
	}

	parsed := gjson.Parse(cleaned)
	p := openmeasures.Params{
		Term:      parsed.Get("term").String(),
		Site:      parsed.Get("site").String(),
		Limit:     int(parsed.Get("limit").Int()),
		QueryType: parsed.Get("querytype").String(),
	}
	p.ApplyDefaults()
	return p, nil
}

// StripFence removes an enclosing triple-backtick block by dropping the
// first and last lines, then a leading "json" language tag if one is
// left over.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		lines := strings.Split(s, "\n")
		if len(lines) >= 2 {
			s = strings.Join(lines[1:len(lines)-1], "\n")
		}
	}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "json"))
	}
	return s
}
