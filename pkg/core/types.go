package core

import (
	"encoding/json"
	"fmt"
)

// CountRecord is a single (word, count) pair flowing from the map phase to the
// reduce phase. Mappers always emit Count == 1.
type CountRecord struct {
	Word  string
	Count int64
}

// FrequencyTable maps each distinct token to its total number of occurrences.
type FrequencyTable map[string]int64

// Total returns the sum of all counts in the table.
func (t FrequencyTable) Total() int64 {
	var total int64
	for _, count := range t {
		total += count
	}
	return total
}

// WordCount is a ranked entry of the repeated-words list.
// It is serialized as a two-element JSON array: ["word", count].
type WordCount struct {
	Word  string
	Count int64
}

func (wc WordCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{wc.Word, wc.Count})
}

func (wc WordCount) MarshalYAML() (any, error) {
	return []any{wc.Word, wc.Count}, nil
}

func (wc *WordCount) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("word count must be a [word, count] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &wc.Word); err != nil {
		return fmt.Errorf("invalid word: %w", err)
	}
	if err := json.Unmarshal(pair[1], &wc.Count); err != nil {
		return fmt.Errorf("invalid count: %w", err)
	}
	return nil
}

// Result is the outcome of analyzing a single text.
type Result struct {
	Unique            []string       `json:"unique" yaml:"unique"`
	Repeated          []WordCount    `json:"repeated" yaml:"repeated"`
	Counts            FrequencyTable `json:"counts" yaml:"counts"`
	TotalWords        int64          `json:"totalWords" yaml:"totalWords"`
	UniqueWordCount   int            `json:"uniqueWordCount" yaml:"uniqueWordCount"`
	RepeatedWordCount int            `json:"repeatedWordCount" yaml:"repeatedWordCount"`
}

// EmptyResult returns a result with non-nil empty collections, so it
// serializes as [] and {} rather than null.
func EmptyResult() *Result {
	return &Result{
		Unique:   []string{},
		Repeated: []WordCount{},
		Counts:   FrequencyTable{},
	}
}

// DistinctWords is the number of distinct tokens in the analyzed text.
func (r *Result) DistinctWords() int {
	return len(r.Counts)
}

// Top returns a copy of the result with the repeated list cut to the n most
// frequent entries. Non-positive n leaves the list untouched.
func (r *Result) Top(n int) *Result {
	out := *r
	if n > 0 && n < len(r.Repeated) {
		out.Repeated = r.Repeated[:n:n]
	}
	return &out
}
