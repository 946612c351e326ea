package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/nemanja-m/wordfreq/internal/analyzer/service"
	"github.com/nemanja-m/wordfreq/internal/shared/logging"
	"github.com/nemanja-m/wordfreq/pkg/mapreduce"
)

const (
	ServiceName   = "wordfreq.v1.Analyzer"
	AnalyzeMethod = "/" + ServiceName + "/Analyze"

	requestIDMetadataKey = "x-request-id"
)

// AnalyzerServer is the server API for the Analyzer service.
type AnalyzerServer interface {
	Analyze(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// AnalyzerServiceDesc describes the Analyzer service. Messages are protobuf
// well-known types, so no generated code is required.
var AnalyzerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AnalyzerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Analyze",
			Handler:    analyzeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wordfreq/v1/analyzer.proto",
}

func analyzeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalyzerServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalyzeMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AnalyzerServer).Analyze(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

type AnalyzerService struct {
	analysisService service.AnalysisService

	logger logging.Logger
}

func NewAnalyzerService(analysisService service.AnalysisService, logger logging.Logger) *AnalyzerService {
	return &AnalyzerService{
		analysisService: analysisService,
		logger:          logger,
	}
}

func (s *AnalyzerService) Analyze(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	ctx = service.WithRequestID(ctx, requestIDFromMetadata(ctx))

	result, err := s.analysisService.Analyze(ctx, req.GetValue())
	if err != nil {
		return nil, toStatusError(err)
	}

	resp, err := ToStruct(result)
	if err != nil {
		s.logger.Error("Failed to convert analysis result", "error", err)
		return nil, status.Error(codes.Internal, "failed to encode analysis result")
	}
	return resp, nil
}

func requestIDFromMetadata(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(requestIDMetadataKey); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.New().String()
}

func toStatusError(err error) error {
	switch {
	case errors.Is(err, mapreduce.ErrInputTooLarge):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
