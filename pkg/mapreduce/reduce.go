package mapreduce

import "github.com/nemanja-m/wordfreq/pkg/core"

// Reduce sums every group into a frequency table.
func Reduce(groups *Groups) core.FrequencyTable {
	table := make(core.FrequencyTable, len(groups.Values))
	for word, values := range groups.Values {
		table[word] = ReduceGroup(values)
	}
	return table
}

// ReduceGroup sums the counts of a single word.
func ReduceGroup(values []int64) int64 {
	var total int64
	for _, v := range values {
		total += v
	}
	return total
}

// Merge combines partial tables by summing counts key-wise.
func Merge(tables ...core.FrequencyTable) core.FrequencyTable {
	size := 0
	for _, t := range tables {
		size = max(size, len(t))
	}

	merged := make(core.FrequencyTable, size)
	for _, t := range tables {
		for word, count := range t {
			merged[word] += count
		}
	}
	return merged
}
