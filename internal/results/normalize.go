// Package results normalizes heterogeneous platform hits into a uniform
// record for display and summarization. Everything here is a pure
// function over the raw hit JSON; inputs are never mutated.
package results

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Text caps for the two consumption contexts.
const (
	// SummaryTextLimit bounds hit text embedded in LLM prompts.
	SummaryTextLimit = 500
	// DisplayTextLimit bounds hit text printed for humans.
	DisplayTextLimit = 300
)

// Record is a uniform, read-only view over one raw hit. Timestamp stays
// the raw string the platform reported; it is never re-parsed.
type Record struct {
	Username  string
	Timestamp string
	Text      string
}

// textFields are checked on _source in order; the first non-empty wins.
var textFields = []string{"message", "txt", "content"}

// Normalize extracts a record from one raw hit. defaultUsername fills in
// when the hit carries no username; summary contexts use "Unknown",
// display contexts use "N/A".
func Normalize(hit gjson.Result, defaultUsername string) Record {
	source := hit.Get("_source")

	rec := Record{
		Username:  defaultUsername,
		Timestamp: "N/A",
	}
	for _, field := range textFields {
		if v := source.Get(field).String(); v != "" {
			rec.Text = v
			break
		}
	}
	if u := source.Get("uinf.username").String(); u != "" {
		rec.Username = u
	}
	if ts := source.Get("timestamp").String(); ts != "" {
		rec.Timestamp = ts
	}
	return rec
}

// NormalizeBatch converts up to max hits, preserving the original order.
// max <= 0 means no cap.
func NormalizeBatch(hits []gjson.Result, max int, defaultUsername string) []Record {
	if max > 0 && len(hits) > max {
		hits = hits[:max]
	}
	records := make([]Record, 0, len(hits))
	for _, hit := range hits {
		records = append(records, Normalize(hit, defaultUsername))
	}
	return records
}

// Truncate caps s at max characters, appending an ellipsis only when the
// original was longer.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// FormatForSummary renders records as the numbered block embedded in
// analysis prompts.
func FormatForSummary(records []Record) string {
	formatted := make([]string, 0, len(records))
	for i, rec := range records {
		formatted = append(formatted, fmt.Sprintf(
			"Result %d:\nUser: %s\nTime: %s\nText: %s\n",
			i+1, rec.Username, rec.Timestamp, Truncate(rec.Text, SummaryTextLimit),
		))
	}
	return strings.Join(formatted, "\n")
}
