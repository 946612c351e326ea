package mapreduce

import (
	"iter"

	"github.com/nemanja-m/wordfreq/pkg/core"
)

// Groups holds count records grouped by word.
type Groups struct {
	// Order lists distinct words in the order they were first seen.
	Order []string
	// Values holds the counts of every record emitted for a word.
	Values map[string][]int64
	// Records is the number of records consumed.
	Records int64
}

// Shuffle groups records by word in a single pass.
func Shuffle(records iter.Seq[core.CountRecord]) *Groups {
	groups := &Groups{
		Order:  []string{},
		Values: make(map[string][]int64),
	}
	for record := range records {
		values, seen := groups.Values[record.Word]
		if !seen {
			groups.Order = append(groups.Order, record.Word)
		}
		groups.Values[record.Word] = append(values, record.Count)
		groups.Records++
	}
	return groups
}

// Partition splits the groups into numPartitions buckets keyed by core.Partition.
// Each bucket keeps the relative first-seen order of its words.
func (g *Groups) Partition(numPartitions int) []*Groups {
	if numPartitions <= 0 {
		numPartitions = 1
	}

	partitions := make([]*Groups, numPartitions)
	for i := range partitions {
		partitions[i] = &Groups{
			Order:  []string{},
			Values: make(map[string][]int64),
		}
	}

	for _, word := range g.Order {
		values := g.Values[word]
		part := partitions[core.Partition(word, numPartitions)]
		part.Order = append(part.Order, word)
		part.Values[word] = values
		part.Records += int64(len(values))
	}

	return partitions
}
