package mapreduce

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nemanja-m/wordfreq/pkg/core"
)

func TestMap_EmitsUnitRecordsInOrder(t *testing.T) {
	records := slices.Collect(Map(slices.Values([]string{"b", "a", "b"})))
	require.Equal(t, []core.CountRecord{
		{Word: "b", Count: 1},
		{Word: "a", Count: 1},
		{Word: "b", Count: 1},
	}, records)
}

func TestShuffle_GroupsByWordInFirstSeenOrder(t *testing.T) {
	groups := Shuffle(Map(Tokenize("x y x y z x")))

	require.Equal(t, []string{"x", "y", "z"}, groups.Order)
	require.Equal(t, []int64{1, 1, 1}, groups.Values["x"])
	require.Equal(t, []int64{1, 1}, groups.Values["y"])
	require.Equal(t, []int64{1}, groups.Values["z"])
	require.Equal(t, int64(6), groups.Records)
}

func TestShuffle_Empty(t *testing.T) {
	groups := Shuffle(Map(Tokenize("")))
	require.Empty(t, groups.Order)
	require.Empty(t, groups.Values)
	require.Zero(t, groups.Records)
}

func TestGroups_Partition(t *testing.T) {
	groups := Shuffle(Map(Tokenize("alpha beta gamma alpha delta epsilon beta alpha")))
	parts := groups.Partition(3)
	require.Len(t, parts, 3)

	var records int64
	seen := map[string]int{}
	for i, part := range parts {
		records += part.Records
		for _, word := range part.Order {
			seen[word]++
			require.Equal(t, i, core.Partition(word, 3))
			require.Equal(t, groups.Values[word], part.Values[word])
		}
	}
	require.Equal(t, groups.Records, records)
	require.Len(t, seen, len(groups.Order))
	for _, n := range seen {
		require.Equal(t, 1, n)
	}
}

func TestReduce(t *testing.T) {
	table := Reduce(Shuffle(Map(Tokenize("the cat sat on the mat"))))
	require.Equal(t, core.FrequencyTable{"the": 2, "cat": 1, "sat": 1, "on": 1, "mat": 1}, table)
	require.Equal(t, int64(6), table.Total())
}

func TestReduceGroup(t *testing.T) {
	require.Equal(t, int64(0), ReduceGroup(nil))
	require.Equal(t, int64(6), ReduceGroup([]int64{1, 2, 3}))
}

func TestMerge(t *testing.T) {
	merged := Merge(
		core.FrequencyTable{"a": 1, "b": 2},
		core.FrequencyTable{"b": 3, "c": 1},
		nil,
	)
	require.Equal(t, core.FrequencyTable{"a": 1, "b": 5, "c": 1}, merged)
	require.Empty(t, Merge())
}

func TestClassify_RanksByCountThenFirstSeen(t *testing.T) {
	table := core.FrequencyTable{"p": 2, "q": 3, "r": 1, "s": 2, "t": 3}
	order := []string{"p", "q", "r", "s", "t"}

	result := Classify(table, order, 11)

	require.Equal(t, []string{"r"}, result.Unique)
	require.Equal(t, []core.WordCount{
		{Word: "q", Count: 3},
		{Word: "t", Count: 3},
		{Word: "p", Count: 2},
		{Word: "s", Count: 2},
	}, result.Repeated)
	require.Equal(t, int64(11), result.TotalWords)
	require.Equal(t, 1, result.UniqueWordCount)
	require.Equal(t, 4, result.RepeatedWordCount)
}

func TestClassify_Idempotent(t *testing.T) {
	table := core.FrequencyTable{"x": 2, "y": 2, "z": 1}
	order := []string{"x", "y", "z"}

	first := Classify(table, order, 5)
	second := Classify(table, order, 5)
	require.Equal(t, first, second)
}

func TestClassify_EmptyTable(t *testing.T) {
	result := Classify(core.FrequencyTable{}, nil, 0)
	require.Equal(t, core.EmptyResult(), result)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
	}{
		{"single shard", "one two three", 1},
		{"more shards than words", "one two", 8},
		{"long word", "supercalifragilistic expialidocious", 4},
		{"unicode", "žluťoučký kůň úpěl ďábelské ódy", 5},
		{"no separators", "abcdefghijklmnopqrstuvwxyz", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shards := Split(tt.text, tt.n)
			require.LessOrEqual(t, len(shards), max(tt.n, 1))

			joined := ""
			var tokens []string
			for _, shard := range shards {
				joined += shard
				tokens = append(tokens, slices.Collect(Tokenize(shard))...)
			}
			require.Equal(t, tt.text, joined)
			require.Equal(t, slices.Collect(Tokenize(tt.text)), tokens)
		})
	}
}

func TestSplit_Empty(t *testing.T) {
	require.Equal(t, []string{""}, Split("", 4))
}
