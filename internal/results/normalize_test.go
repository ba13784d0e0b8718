package results

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func hit(t *testing.T, raw string) gjson.Result {
	t.Helper()
	if !gjson.Valid(raw) {
		t.Fatalf("invalid test hit: %s", raw)
	}
	return gjson.Parse(raw)
}

func TestNormalize(t *testing.T) {
	t.Run("message field wins", func(t *testing.T) {
		rec := Normalize(hit(t, `{"_source":{"message":"from message","txt":"from txt","content":"from content"}}`), "N/A")
		if rec.Text != "from message" {
			t.Errorf("Text = %q, want from message", rec.Text)
		}
	})

	t.Run("falls through to txt then content", func(t *testing.T) {
		rec := Normalize(hit(t, `{"_source":{"txt":"from txt","content":"from content"}}`), "N/A")
		if rec.Text != "from txt" {
			t.Errorf("Text = %q, want from txt", rec.Text)
		}

		rec = Normalize(hit(t, `{"_source":{"content":"from content"}}`), "N/A")
		if rec.Text != "from content" {
			t.Errorf("Text = %q, want from content", rec.Text)
		}
	})

	t.Run("empty string skipped in precedence", func(t *testing.T) {
		rec := Normalize(hit(t, `{"_source":{"message":"","txt":"fallback"}}`), "N/A")
		if rec.Text != "fallback" {
			t.Errorf("Text = %q, want fallback", rec.Text)
		}
	})

	t.Run("no text fields yields empty text", func(t *testing.T) {
		rec := Normalize(hit(t, `{"_source":{"other":"stuff"}}`), "N/A")
		if rec.Text != "" {
			t.Errorf("Text = %q, want empty", rec.Text)
		}
	})

	t.Run("username and timestamp extracted", func(t *testing.T) {
		rec := Normalize(hit(t, `{"_source":{"uinf":{"username":"alice"},"timestamp":"2024-01-01T00:00:00Z"}}`), "N/A")
		if rec.Username != "alice" {
			t.Errorf("Username = %s, want alice", rec.Username)
		}
		if rec.Timestamp != "2024-01-01T00:00:00Z" {
			t.Errorf("Timestamp = %s", rec.Timestamp)
		}
	})

	t.Run("caller chooses username default", func(t *testing.T) {
		empty := hit(t, `{"_source":{}}`)
		if got := Normalize(empty, "Unknown").Username; got != "Unknown" {
			t.Errorf("Username = %s, want Unknown", got)
		}
		if got := Normalize(empty, "N/A").Username; got != "N/A" {
			t.Errorf("Username = %s, want N/A", got)
		}
	})

	t.Run("missing timestamp defaults", func(t *testing.T) {
		rec := Normalize(hit(t, `{"_source":{}}`), "N/A")
		if rec.Timestamp != "N/A" {
			t.Errorf("Timestamp = %s, want N/A", rec.Timestamp)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		h := hit(t, `{"_source":{"message":"hi","uinf":{"username":"bob"},"timestamp":"t"}}`)
		first := Normalize(h, "N/A")
		second := Normalize(h, "N/A")
		if first != second {
			t.Errorf("Normalize not idempotent: %+v vs %+v", first, second)
		}
	})
}

func TestNormalizeBatch(t *testing.T) {
	hits := []gjson.Result{
		hit(t, `{"_source":{"message":"one"}}`),
		hit(t, `{"_source":{"message":"two"}}`),
		hit(t, `{"_source":{"message":"three"}}`),
	}

	t.Run("caps count and preserves order", func(t *testing.T) {
		records := NormalizeBatch(hits, 2, "N/A")
		if len(records) != 2 {
			t.Fatalf("len = %d, want 2", len(records))
		}
		if records[0].Text != "one" || records[1].Text != "two" {
			t.Errorf("order not preserved: %+v", records)
		}
	})

	t.Run("no cap when max is zero", func(t *testing.T) {
		if got := len(NormalizeBatch(hits, 0, "N/A")); got != 3 {
			t.Errorf("len = %d, want 3", got)
		}
	})
}

func TestTruncate(t *testing.T) {
	t.Run("at limit untouched", func(t *testing.T) {
		s := strings.Repeat("a", 300)
		if got := Truncate(s, 300); got != s {
			t.Error("text at the cap should not get an ellipsis")
		}
	})

	t.Run("over limit gets ellipsis", func(t *testing.T) {
		s := strings.Repeat("a", 301)
		got := Truncate(s, 300)
		if len([]rune(got)) != 303 || !strings.HasSuffix(got, "...") {
			t.Errorf("Truncate() = %d chars, want 300 + ellipsis", len(got))
		}
	})

	t.Run("multibyte safe", func(t *testing.T) {
		s := strings.Repeat("é", 10)
		got := Truncate(s, 5)
		if got != strings.Repeat("é", 5)+"..." {
			t.Errorf("Truncate() = %q", got)
		}
	})
}

func TestFormatForSummary(t *testing.T) {
	records := []Record{
		{Username: "alice", Timestamp: "2024-01-01", Text: "first post"},
		{Username: "Unknown", Timestamp: "N/A", Text: strings.Repeat("x", 600)},
	}

	out := FormatForSummary(records)

	if !strings.Contains(out, "Result 1:\nUser: alice\nTime: 2024-01-01\nText: first post") {
		t.Errorf("unexpected block format:\n%s", out)
	}
	if !strings.Contains(out, "Result 2:") {
		t.Error("second record missing")
	}
	if strings.Contains(out, strings.Repeat("x", 501)) {
		t.Error("summary text not capped at 500")
	}
}
