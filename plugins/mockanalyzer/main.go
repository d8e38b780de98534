package main

import (
	"context"
	"fmt"
	"log"

	analyzerout "nextround/internal/modules/analyzer/adapter/out"
	analyzerrpc "nextround/internal/modules/analyzer/adapter/out/rpc"
	"nextround/internal/modules/analyzer/domain"
	"nextround/internal/platform/catalog"

	"github.com/hashicorp/go-plugin"
)

type server struct {
	engine *analyzerout.BuiltinAnalyzer
}

func (s *server) GetMetadata(_ context.Context, _ *analyzerrpc.Empty) (*analyzerrpc.Metadata, error) {
	return &analyzerrpc.Metadata{Name: "mockanalyzer", Version: "1.0.0"}, nil
}

func (s *server) Analyze(ctx context.Context, in *analyzerrpc.AnalyzeRequest) (*analyzerrpc.AnalyzeResponse, error) {
	if in.MediaName == "" {
		return nil, fmt.Errorf("media name is required")
	}
	result, err := s.engine.Analyze(ctx, domain.Request{JobID: in.JobID, MediaName: in.MediaName, MediaBytes: in.MediaBytes})
	if err != nil {
		return nil, err
	}
	return &analyzerrpc.AnalyzeResponse{
		Score:     int32(result.Score),
		Tips:      result.Tips,
		Strengths: result.Strengths,
	}, nil
}

func main() {
	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: analyzerrpc.HandshakeConfig,
		Plugins:         analyzerrpc.PluginMap(&server{engine: analyzerout.NewBuiltinAnalyzer(nil, cat.Analysis.Tips, cat.Analysis.Strengths)}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
