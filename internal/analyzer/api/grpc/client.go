package grpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/google/uuid"

	"github.com/nemanja-m/wordfreq/pkg/core"
)

// DefaultMaxResponseBytes bounds the size of an analysis response the client
// accepts. Responses carry the unique list, the counts map and the ranked
// pairs, so they are several times larger than the analysed text.
const DefaultMaxResponseBytes = 256 * 1024 * 1024 // 256MB

type AnalyzerClient struct {
	conn *grpc.ClientConn

	serverAddr string
}

func NewAnalyzerClient(serverAddr string, opts ...grpc.DialOption) (*AnalyzerClient, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(
			keepalive.ClientParameters{
				Time:                30 * time.Second,
				Timeout:             5 * time.Second,
				PermitWithoutStream: true,
			},
		),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(DefaultMaxResponseBytes)),
	}
	dialOpts = append(dialOpts, opts...)

	conn, err := grpc.NewClient(serverAddr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to analyzer: %w", err)
	}

	return &AnalyzerClient{
		conn:       conn,
		serverAddr: serverAddr,
	}, nil
}

// Analyze sends text to the server and decodes the analysis result.
func (c *AnalyzerClient) Analyze(ctx context.Context, text string) (*core.Result, error) {
	ctx = metadata.AppendToOutgoingContext(ctx, requestIDMetadataKey, uuid.New().String())

	resp := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, AnalyzeMethod, wrapperspb.String(text), resp); err != nil {
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}

	return FromStruct(resp)
}

// WithMaxResponseBytes overrides DefaultMaxResponseBytes.
func WithMaxResponseBytes(n int) grpc.DialOption {
	return grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(n))
}

func (c *AnalyzerClient) Conn() *grpc.ClientConn {
	return c.conn
}

func (c *AnalyzerClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
