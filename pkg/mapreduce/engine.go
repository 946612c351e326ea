package mapreduce

import (
	"context"
	"strings"

	"github.com/nemanja-m/wordfreq/pkg/core"
)

const (
	DefaultMaxInputBytes     = 10 * 1024 * 1024 // 10MB
	DefaultParallelThreshold = 256 * 1024       // 256KB
)

// Logger is the subset of logging used by the engine.
type Logger interface {
	Debug(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}

type Config struct {
	// MaxInputBytes rejects larger texts with ErrInputTooLarge. Zero disables the limit.
	MaxInputBytes int
	// NumMappers is the number of shards large inputs are split into.
	NumMappers int
	// NumReducers is the number of partitions the shuffled words are routed to.
	NumReducers int
	// ParallelThreshold is the input size in bytes from which the sharded
	// pipeline is used.
	ParallelThreshold int
	Logger            Logger
}

func DefaultConfig() Config {
	return Config{
		MaxInputBytes:     DefaultMaxInputBytes,
		NumMappers:        4,
		NumReducers:       4,
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// Engine runs the word frequency pipeline. It holds no per-analysis state and
// is safe for concurrent use.
type Engine struct {
	config Config
	logger Logger
}

func NewEngine(config Config) *Engine {
	logger := config.Logger
	if logger == nil {
		logger = noopLogger{}
	}
	return &Engine{config: config, logger: logger}
}

// Analyze computes the word frequency analysis of text. Empty text is not an
// error. The only failure besides context cancellation is ErrInputTooLarge.
func (e *Engine) Analyze(ctx context.Context, text string) (*core.Result, error) {
	if limit := e.config.MaxInputBytes; limit > 0 && len(text) > limit {
		return nil, &InputTooLargeError{Size: len(text), Limit: limit}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return core.EmptyResult(), nil
	}

	if e.config.NumMappers > 1 && len(text) >= e.config.ParallelThreshold {
		return e.runSharded(ctx, text)
	}
	return e.runSequential(text), nil
}

func (e *Engine) runSequential(text string) *core.Result {
	groups := Shuffle(Map(Tokenize(text)))
	e.logger.Debug("Shuffle completed", "records", groups.Records, "groups", len(groups.Order))

	table := Reduce(groups)
	e.logger.Debug("Reduce completed", "keys", len(table))

	return Classify(table, groups.Order, groups.Records)
}

func (e *Engine) runSharded(ctx context.Context, text string) (*core.Result, error) {
	shards := Split(text, e.config.NumMappers)
	numReducers := max(e.config.NumReducers, 1)

	// Each map task owns its slot; no locking needed.
	mapped := make([]*Groups, len(shards))
	partitions := make([][]*Groups, len(shards))

	mapperPool := NewPool(len(shards))
	mapperPool.Start()
	for mapperId, shard := range shards {
		mapperPool.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			groups := Shuffle(Map(Tokenize(shard)))
			mapped[mapperId] = groups
			partitions[mapperId] = groups.Partition(numReducers)
			e.logger.Debug("Map task completed", "mapper", mapperId, "records", groups.Records)
		})
	}
	mapperPool.Close()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	partials := make([]core.FrequencyTable, numReducers)

	reducerPool := NewPool(numReducers)
	reducerPool.Start()
	for reducerId := range numReducers {
		reducerPool.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			tables := make([]core.FrequencyTable, 0, len(partitions))
			for _, parts := range partitions {
				tables = append(tables, Reduce(parts[reducerId]))
			}
			partials[reducerId] = Merge(tables...)
			e.logger.Debug("Reduce task completed", "reducer", reducerId, "keys", len(partials[reducerId]))
		})
	}
	reducerPool.Close()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Shards are contiguous, so concatenating their first-seen orders and
	// skipping words already seen yields the global first-seen order.
	var totalWords int64
	var order []string
	seen := make(map[string]struct{})
	for _, groups := range mapped {
		totalWords += groups.Records
		for _, word := range groups.Order {
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			order = append(order, word)
		}
	}

	return Classify(Merge(partials...), order, totalWords), nil
}
