package out

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	analyzerrpc "nextround/internal/modules/analyzer/adapter/out/rpc"
	"nextround/internal/modules/analyzer/domain"
	analyzerout "nextround/internal/modules/analyzer/port/out"
	"nextround/internal/platform/logging"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const defaultStartTimeout = 3 * time.Second

// GRPCHost launches an analyzer binary per call and talks to it over the
// go-plugin gRPC transport.
type GRPCHost struct {
	callTimeout time.Duration
	logLevel    hclog.Level
}

func NewGRPCHost(callTimeout time.Duration) analyzerout.Host {
	return &GRPCHost{callTimeout: callTimeout, logLevel: hclog.Warn}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	_, err := h.GetMetadata(ctx, manifest)
	return err
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version}, nil
}

func (h *GRPCHost) Analyze(ctx context.Context, manifest domain.Manifest, request domain.Request) (domain.Result, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Result{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx)
	defer cancel()
	response, err := client.Analyze(callCtx, &analyzerrpc.AnalyzeRequest{
		JobID:      request.JobID,
		MediaName:  request.MediaName,
		MediaBytes: request.MediaBytes,
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.Result{}, fmt.Errorf("%w: %s", domain.ErrAnalyzerTimeout, manifest.Name)
		}
		return domain.Result{}, fmt.Errorf("analyze: %w", err)
	}
	return domain.Result{
		Score:     int(response.Score),
		Tips:      response.Tips,
		Strengths: response.Strengths,
	}, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest) (analyzerrpc.AnalyzerClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  analyzerrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          analyzerrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger: hclog.New(&hclog.LoggerOptions{
			Name:   "analyzer." + manifest.Name,
			Output: logging.Logger.StandardLog().Writer(),
			Level:  h.logLevel,
		}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start analyzer client: %w", err)
	}
	raw, err := rpcClient.Dispense(analyzerrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense analyzer: %w", err)
	}
	typed, ok := raw.(analyzerrpc.AnalyzerClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("analyzer rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, h.callTimeout)
}
