package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nemanja-m/wordfreq/internal/shared/logging"
	"github.com/nemanja-m/wordfreq/pkg/core"
	"github.com/nemanja-m/wordfreq/pkg/mapreduce"
)

type AnalysisService interface {
	Analyze(ctx context.Context, text string) (*core.Result, error)
}

type requestIDKey struct{}

// WithRequestID attaches a request ID to ctx so that service logs can be
// correlated with transport logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

type analysisService struct {
	engine *mapreduce.Engine
	logger logging.Logger
}

func NewAnalysisService(engine *mapreduce.Engine, logger logging.Logger) AnalysisService {
	return &analysisService{
		engine: engine,
		logger: logger,
	}
}

func (s *analysisService) Analyze(ctx context.Context, text string) (*core.Result, error) {
	requestID, ok := RequestID(ctx)
	if !ok {
		requestID = uuid.New().String()
	}

	start := time.Now()
	result, err := s.engine.Analyze(ctx, text)
	if err != nil {
		if errors.Is(err, mapreduce.ErrInputTooLarge) {
			s.logger.Warn("Analysis rejected", "request_id", requestID, "input_bytes", len(text), "error", err)
		} else {
			s.logger.Error("Analysis failed", "request_id", requestID, "input_bytes", len(text), "error", err)
		}
		return nil, err
	}

	s.logger.Info(
		"Analysis completed",
		"request_id", requestID,
		"input_bytes", len(text),
		"total_words", result.TotalWords,
		"distinct_words", result.DistinctWords(),
		"unique_words", result.UniqueWordCount,
		"repeated_words", result.RepeatedWordCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}
