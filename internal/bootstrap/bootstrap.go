package bootstrap

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	analyzerinadapter "nextround/internal/modules/analyzer/adapter/in"
	analyzeroutadapter "nextround/internal/modules/analyzer/adapter/out"
	analyzerservice "nextround/internal/modules/analyzer/service"
	analyzerusecase "nextround/internal/modules/analyzer/usecase"
	feedinadapter "nextround/internal/modules/feed/adapter/in"
	feedoutadapter "nextround/internal/modules/feed/adapter/out"
	feedservice "nextround/internal/modules/feed/service"
	feedusecase "nextround/internal/modules/feed/usecase"
	profileinadapter "nextround/internal/modules/profile/adapter/in"
	profileoutadapter "nextround/internal/modules/profile/adapter/out"
	profileservice "nextround/internal/modules/profile/service"
	profileusecase "nextround/internal/modules/profile/usecase"
	swingsinadapter "nextround/internal/modules/swings/adapter/in"
	swingsoutadapter "nextround/internal/modules/swings/adapter/out"
	swingsservice "nextround/internal/modules/swings/service"
	swingsusecase "nextround/internal/modules/swings/usecase"
	uploadinadapter "nextround/internal/modules/upload/adapter/in"
	uploadoutadapter "nextround/internal/modules/upload/adapter/out"
	uploadout "nextround/internal/modules/upload/port/out"
	uploadservice "nextround/internal/modules/upload/service"
	uploadusecase "nextround/internal/modules/upload/usecase"
	"nextround/internal/platform/catalog"
	"nextround/internal/platform/clock"
	"nextround/internal/platform/config"
	"nextround/internal/platform/id"
	uiapp "nextround/internal/ui/app"
)

const checkoutLatency = 300 * time.Millisecond

type App struct {
	FeedCLI     feedinadapter.CLIHandler
	SwingsCLI   swingsinadapter.CLIHandler
	ProfileCLI  profileinadapter.CLIHandler
	AnalyzerCLI analyzerinadapter.CLIHandler
	UploadCLI   uploadinadapter.CLIHandler
	UploadTUI   uploadinadapter.TUIHandler

	closers []io.Closer
}

// New wires every module against the embedded catalog. Notices raised by the
// upload pipeline go to notifier.
func New(ctx context.Context, cfg config.Config, notifier uploadout.Notifier) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	swingStore, err := swingsoutadapter.NewMemorySwingStore(cat.Swings)
	if err != nil {
		return nil, fmt.Errorf("new swing store: %w", err)
	}
	swingIndex, err := swingsoutadapter.NewSQLiteSwingIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("new swing index: %w", err)
	}
	app := &App{}
	if c, ok := swingIndex.(io.Closer); ok {
		app.closers = append(app.closers, c)
	}
	swingsUC := swingsusecase.NewInteractor(swingsservice.NewSwingService(swingStore, swingIndex))
	if err := swingsUC.Reindex(ctx); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("index swings: %w", err)
	}

	profileStore, err := profileoutadapter.NewMemoryProfileStore(cat.Profile)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new profile store: %w", err)
	}
	profileUC := profileusecase.NewInteractor(profileservice.NewProfileService(
		profileStore,
		profileoutadapter.NewSimulatedCheckout(clk, ids, checkoutLatency),
		cfg.Quota.FreeLimit,
	))

	analyzerUC := analyzerusecase.NewInteractor(analyzerservice.NewAnalyzerService(
		analyzeroutadapter.NewFileManifestStore(cfg.AnalyzerDir()),
		analyzeroutadapter.NewGRPCHost(cfg.Analyzer.Timeout),
		analyzeroutadapter.NewBuiltinAnalyzer(nil, cat.Analysis.Tips, cat.Analysis.Strengths),
	))

	postStore, err := feedoutadapter.NewCatalogPostStore(cat.Posts)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new post store: %w", err)
	}
	feedUC := feedusecase.NewInteractor(feedservice.NewFeedService(
		postStore,
		feedoutadapter.NewMemoryLikeStore(),
		cfg.Feed.PageSize,
	))

	uploadUC := uploadusecase.NewInteractor(uploadservice.NewUploadService(
		clk,
		ids,
		uploadservice.Settings{
			ProgressStep:  cfg.Upload.ProgressStep,
			MaxMediaBytes: cfg.Upload.MaxMediaBytes,
		},
		uploadoutadapter.NewFileInspector(),
		uploadoutadapter.NewProfileQuota(profileUC),
		uploadoutadapter.NewAnalyzerBridge(analyzerUC, cfg.Analyzer.Name, cfg.Analyzer.Timeout),
		notifier,
		uploadoutadapter.NewSwingTimeline(swingsUC),
	))

	app.FeedCLI = feedinadapter.NewCLIHandler(feedUC)
	app.SwingsCLI = swingsinadapter.NewCLIHandler(swingsUC)
	app.ProfileCLI = profileinadapter.NewCLIHandler(profileUC)
	app.AnalyzerCLI = analyzerinadapter.NewCLIHandler(analyzerUC)
	app.UploadCLI = uploadinadapter.NewCLIHandler(uploadUC, uploadinadapter.Timing{
		TickInterval:    cfg.Upload.TickInterval,
		CompletionDelay: cfg.Upload.CompletionDelay,
	})
	app.UploadTUI = uploadinadapter.NewTUIHandler(uploadUC)
	return app, nil
}

// Close releases the in-memory index.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// RunTUI runs the four-tab client. notices must be the queue the App was
// built with.
func RunTUI(cfg config.Config, app *App, notices *uploadoutadapter.QueueNotifier) error {
	model := uiapp.NewModel(
		app.FeedCLI,
		app.SwingsCLI,
		app.UploadTUI,
		app.ProfileCLI,
		notices,
		uiapp.Timing{
			TickInterval:    cfg.Upload.TickInterval,
			CompletionDelay: cfg.Upload.CompletionDelay,
		},
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
