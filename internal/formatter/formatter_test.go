package formatter

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
)

func TestCreated(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int64
	}{
		{"valid positive", "1700000000", 1700000000},
		{"whitespace trimmed", " 1700000000 ", 1700000000},
		{"empty falls back", "", 1234567890},
		{"zero falls back", "0", 1234567890},
		{"negative falls back", "-5", 1234567890},
		{"garbage falls back", "soon", 1234567890},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Created(tt.header))
		})
	}
}

func TestRaw(t *testing.T) {
	t.Run("passthrough on success", func(t *testing.T) {
		body := json.RawMessage(`{"hits":{"hits":[]},"took":2}`)
		got := Raw(&openmeasures.Response{Body: body}, nil)

		encoded, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, string(body), string(encoded))
	})

	t.Run("error field on failure", func(t *testing.T) {
		got := Raw(nil, errors.New("connection refused"))

		encoded, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"connection refused"}`, string(encoded))
	})
}

func TestChatCompletion(t *testing.T) {
	resp := ChatCompletion("my-model", 1700000000, "hello there")

	assert.Equal(t, "chatcmpl-openmeasures", resp.ID)
	assert.Equal(t, "chat.completion", resp.Object)
	assert.EqualValues(t, 1700000000, resp.Created)
	assert.Equal(t, "my-model", resp.Model)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "assistant", resp.Choices[0].Message.Role)
	assert.Equal(t, "hello there", resp.Choices[0].Message.Content)
	assert.EqualValues(t, "stop", resp.Choices[0].FinishReason)

	t.Run("model defaulted when empty", func(t *testing.T) {
		assert.Equal(t, DefaultModel, ChatCompletion("", 1, "x").Model)
	})
}

func TestSearchNarrative(t *testing.T) {
	params := openmeasures.Params{Term: "election", Site: "gab", Limit: 20, QueryType: "content"}
	requestURL := "https://api.openmeasures.io/content?term=election&site=gab"

	t.Run("failure describes error and echoes URL", func(t *testing.T) {
		out := SearchNarrative("find stuff", params, requestURL, nil, errors.New("dial tcp: timeout"))

		assert.Contains(t, out, "Error searching Open Measures: dial tcp: timeout")
		assert.Contains(t, out, requestURL)
		assert.Contains(t, out, "**API Request Sent:**")
	})

	t.Run("no results banner with parameters", func(t *testing.T) {
		resp := &openmeasures.Response{Body: []byte(`{"hits":{"hits":[],"total":0}}`)}
		out := SearchNarrative("find stuff", params, requestURL, resp, nil)

		assert.Contains(t, out, "❌ No results found for: find stuff")
		assert.Contains(t, out, "- Term: `election`")
		assert.Contains(t, out, "- Platform: `gab`")
		assert.Contains(t, out, "- Query Type: `content`")
		assert.Contains(t, out, "- Limit: `20`")
		assert.Contains(t, out, requestURL)
	})

	t.Run("success includes counts and raw JSON block", func(t *testing.T) {
		resp := &openmeasures.Response{Body: []byte(`{"hits":{"hits":[{"_source":{"message":"hi"}}],"total":{"value":42}}}`)}
		out := SearchNarrative("find stuff", params, requestURL, resp, nil)

		assert.Contains(t, out, "✅ Open Measures Search Complete")
		assert.Contains(t, out, "- Results Received: `1`")
		assert.Contains(t, out, "- Total Available: `42`")
		assert.Contains(t, out, "**Raw JSON Results:**\n```json\n")
		assert.True(t, strings.HasSuffix(out, "\n```"), "raw block should close the narrative")
		assert.Contains(t, out, `"message": "hi"`, "results should be pretty-printed")
	})
}

func TestParseFailureNarrative(t *testing.T) {
	out := ParseFailureNarrative(errors.New("unexpected token"))
	assert.Equal(t, "Error parsing query: unexpected token", out)
}
