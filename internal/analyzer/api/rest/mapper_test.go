package rest

import (
	"encoding/json"
	"testing"

	"github.com/nemanja-m/wordfreq/pkg/core"
)

func TestToAnalyzeResponse(t *testing.T) {
	t.Run("basic conversion", func(t *testing.T) {
		result := &core.Result{
			Unique:            []string{"cat", "sat", "on", "mat"},
			Repeated:          []core.WordCount{{Word: "the", Count: 2}},
			Counts:            core.FrequencyTable{"the": 2, "cat": 1, "sat": 1, "on": 1, "mat": 1},
			TotalWords:        6,
			UniqueWordCount:   4,
			RepeatedWordCount: 1,
		}

		resp := ToAnalyzeResponse(result)

		if len(resp.Unique) != 4 || resp.Unique[0] != "cat" {
			t.Errorf("Expected unique words to be preserved, got %v", resp.Unique)
		}

		if len(resp.Repeated) != 1 || resp.Repeated[0].Word != "the" || resp.Repeated[0].Count != 2 {
			t.Errorf("Expected repeated [[the 2]], got %v", resp.Repeated)
		}

		if resp.Counts["the"] != 2 {
			t.Errorf("Expected count of 'the' to be 2, got %d", resp.Counts["the"])
		}

		if resp.TotalWords != 6 {
			t.Errorf("Expected 6 total words, got %d", resp.TotalWords)
		}

		if resp.UniqueWordCount != 4 {
			t.Errorf("Expected 4 unique words, got %d", resp.UniqueWordCount)
		}

		if resp.RepeatedWordCount != 1 {
			t.Errorf("Expected 1 repeated word, got %d", resp.RepeatedWordCount)
		}
	})

	t.Run("nil collections become empty", func(t *testing.T) {
		resp := ToAnalyzeResponse(&core.Result{})

		data, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("Failed to marshal response: %v", err)
		}

		expected := `{"unique":[],"repeated":[],"counts":{},"totalWords":0,"uniqueWordCount":0,"repeatedWordCount":0}`
		if string(data) != expected {
			t.Errorf("Expected %s, got %s", expected, string(data))
		}
	})

	t.Run("nil result", func(t *testing.T) {
		resp := ToAnalyzeResponse(nil)

		if resp.Unique == nil || resp.Repeated == nil || resp.Counts == nil {
			t.Error("Expected empty, non-nil collections")
		}
	})

	t.Run("repeated serialized as pairs", func(t *testing.T) {
		resp := ToAnalyzeResponse(&core.Result{
			Repeated: []core.WordCount{{Word: "x", Count: 2}, {Word: "y", Count: 2}},
		})

		data, err := json.Marshal(resp.Repeated)
		if err != nil {
			t.Fatalf("Failed to marshal repeated: %v", err)
		}

		if string(data) != `[["x",2],["y",2]]` {
			t.Errorf("Expected [[\"x\",2],[\"y\",2]], got %s", string(data))
		}
	})
}
