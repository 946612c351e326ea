package mapreduce

import (
	"iter"

	"github.com/nemanja-m/wordfreq/pkg/core"
)

// Map emits a unit count record for every token, preserving token order.
func Map(tokens iter.Seq[string]) iter.Seq[core.CountRecord] {
	return func(yield func(core.CountRecord) bool) {
		for token := range tokens {
			if !yield(core.CountRecord{Word: token, Count: 1}) {
				return
			}
		}
	}
}
