package rest

import (
	"encoding/json"

	"github.com/nemanja-m/wordfreq/pkg/core"
)

type AnalyzeRequest struct {
	Text string `json:"text"`
}

// UnmarshalJSON accepts any JSON value for text. Values that are not strings
// are treated as no text and analyse to the empty result.
func (r *AnalyzeRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text json.RawMessage `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Text = ""
	if len(raw.Text) > 0 {
		var text string
		if err := json.Unmarshal(raw.Text, &text); err == nil {
			r.Text = text
		}
	}
	return nil
}

type AnalyzeResponse struct {
	Unique            []string         `json:"unique"`
	Repeated          []core.WordCount `json:"repeated"`
	Counts            map[string]int64 `json:"counts"`
	TotalWords        int64            `json:"totalWords"`
	UniqueWordCount   int              `json:"uniqueWordCount"`
	RepeatedWordCount int              `json:"repeatedWordCount"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}
