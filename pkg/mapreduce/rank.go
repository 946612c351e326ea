package mapreduce

import (
	"cmp"
	"slices"

	"github.com/nemanja-m/wordfreq/pkg/core"
)

// Classify splits the table into unique and repeated words and ranks the
// repeated ones by descending count. Words with equal counts keep the order
// given by order, which must list every key of table in first-seen order.
//
// totalWords is taken as given rather than re-derived from the table.
func Classify(table core.FrequencyTable, order []string, totalWords int64) *core.Result {
	result := core.EmptyResult()
	result.TotalWords = totalWords

	for _, word := range order {
		count, ok := table[word]
		if !ok || count < 1 {
			continue
		}
		result.Counts[word] = count

		if count == 1 {
			result.Unique = append(result.Unique, word)
		} else {
			result.Repeated = append(result.Repeated, core.WordCount{Word: word, Count: count})
		}
	}

	slices.SortStableFunc(result.Repeated, func(left, right core.WordCount) int {
		return cmp.Compare(right.Count, left.Count)
	})

	result.UniqueWordCount = len(result.Unique)
	result.RepeatedWordCount = len(result.Repeated)
	return result
}
