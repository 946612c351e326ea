package rest

import "github.com/nemanja-m/wordfreq/pkg/core"

func ToAnalyzeResponse(result *core.Result) AnalyzeResponse {
	if result == nil {
		result = core.EmptyResult()
	}

	resp := AnalyzeResponse{
		Unique:            result.Unique,
		Repeated:          result.Repeated,
		Counts:            result.Counts,
		TotalWords:        result.TotalWords,
		UniqueWordCount:   result.UniqueWordCount,
		RepeatedWordCount: result.RepeatedWordCount,
	}

	// Empty collections must serialize as [] and {}, never null.
	if resp.Unique == nil {
		resp.Unique = []string{}
	}
	if resp.Repeated == nil {
		resp.Repeated = []core.WordCount{}
	}
	if resp.Counts == nil {
		resp.Counts = map[string]int64{}
	}

	return resp
}
