package grpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/nemanja-m/wordfreq/pkg/core"
)

// ToStruct converts a result into the google.protobuf.Struct sent on the wire.
// The struct has the same shape as the REST JSON response.
func ToStruct(result *core.Result) (*structpb.Struct, error) {
	if result == nil {
		result = core.EmptyResult()
	}

	unique := make([]any, 0, len(result.Unique))
	for _, word := range result.Unique {
		unique = append(unique, word)
	}

	repeated := make([]any, 0, len(result.Repeated))
	for _, wc := range result.Repeated {
		repeated = append(repeated, []any{wc.Word, wc.Count})
	}

	counts := make(map[string]any, len(result.Counts))
	for word, count := range result.Counts {
		counts[word] = count
	}

	return structpb.NewStruct(map[string]any{
		"unique":            unique,
		"repeated":          repeated,
		"counts":            counts,
		"totalWords":        result.TotalWords,
		"uniqueWordCount":   result.UniqueWordCount,
		"repeatedWordCount": result.RepeatedWordCount,
	})
}

// FromStruct decodes a struct produced by ToStruct.
func FromStruct(s *structpb.Struct) (*core.Result, error) {
	data, err := protojson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis struct: %w", err)
	}

	result := core.EmptyResult()
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}
	return result, nil
}
