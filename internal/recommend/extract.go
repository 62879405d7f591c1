package recommend

import (
	"encoding/json"
	"strings"
)

// Item is one model-produced recommendation, carried through as-is.
type Item struct {
	Action   string `json:"action"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

// Extraction is the outcome of parsing model output. Fallback is set when
// the text could not be parsed and the canned item was substituted, so
// callers can tell the two apart without string inspection.
type Extraction struct {
	Recommendations []Item
	Fallback        bool
}

func fallbackExtraction() Extraction {
	return Extraction{
		Recommendations: []Item{{
			Action:   "Manual review required",
			Priority: "Medium",
			Reason:   "Failed to parse AI response",
		}},
		Fallback: true,
	}
}

// Extract parses raw model output into recommendations. The model is
// asked for bare JSON but routinely wraps it in a fenced block anyway, so
// fences are stripped before parsing. Any parse failure, including a
// missing or non-array "recommendations" key, yields the deterministic
// fallback instead of an error: the pipeline stays available no matter
// what the model emitted.
func Extract(raw string) Extraction {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		parts := strings.Split(text, "```")
		if len(parts) < 2 {
			return fallbackExtraction()
		}
		text = parts[1]
		// A language tag like "json" sits on the first line of the
		// fenced segment and is not part of the payload.
		if idx := strings.IndexByte(text, '\n'); idx >= 0 && !strings.ContainsAny(text[:idx], "{[") {
			text = text[idx+1:]
		}
		text = strings.TrimSpace(text)
	}

	var parsed struct {
		Recommendations []Item `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return fallbackExtraction()
	}
	if parsed.Recommendations == nil {
		return fallbackExtraction()
	}
	return Extraction{Recommendations: parsed.Recommendations}
}
