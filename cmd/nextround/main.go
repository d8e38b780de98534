package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"nextround/internal/bootstrap"
	uploadoutadapter "nextround/internal/modules/upload/adapter/out"
	uploaddto "nextround/internal/modules/upload/dto"
	uploadout "nextround/internal/modules/upload/port/out"
	"nextround/internal/platform/config"
	"nextround/internal/platform/logging"
	"nextround/internal/platform/markdown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	logging.Close()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "nextround",
		Short:         "Golf swing analysis in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/nextround/config.yaml)")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newFeedCmd(&configPath))
	root.AddCommand(newSwingsCmd(&configPath))
	root.AddCommand(newUploadCmd(&configPath))
	root.AddCommand(newProfileCmd(&configPath))
	root.AddCommand(newAnalyzerCmd(&configPath))
	return root
}

func loadConfig(configPath string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := logging.Init(cfg.LogDir(), cfg.LogLevel); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadApp builds the app for one command. Quota notices are printed to
// stderr.
func loadApp(ctx context.Context, configPath string, stderr io.Writer) (*bootstrap.App, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg, uploadoutadapter.NewLogNotifier(stderr))
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the NextRound terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			notices := uploadoutadapter.NewQueueNotifier(8)
			app, err := bootstrap.New(cmd.Context(), cfg, uploadout.Notifier(notices))
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(cfg, app, notices)
		},
	}
}

func newFeedCmd(configPath *string) *cobra.Command {
	feed := &cobra.Command{Use: "feed", Short: "Social feed"}

	var page int
	var golfer string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List posts from other golfers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.FeedCLI.List(cmd.Context(), page, golfer)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Golfer != "" {
				_, _ = fmt.Fprintf(w, "posts by %s\n", out.Golfer)
			}
			if len(out.Posts) == 0 {
				_, _ = fmt.Fprintln(w, "no posts")
				return nil
			}
			for _, p := range out.Posts {
				_, _ = fmt.Fprintf(w, "#%d [%s] %s (handicap %d) %s score=%d likes=%d comments=%d rating=%.1f\n",
					p.ID, p.Initials, p.GolferName, p.GolferHandicap, p.Date, p.Score, p.Likes, p.Comments, p.Rating)
				for _, tip := range p.Tips {
					_, _ = fmt.Fprintf(w, "    • %s\n", tip)
				}
			}
			if out.HasMore {
				_, _ = fmt.Fprintf(w, "more: --page %d\n", out.Page+1)
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&page, "page", 1, "page number")
	listCmd.Flags().StringVar(&golfer, "golfer", "", "only posts by the golfer closest to this name")

	feed.AddCommand(listCmd)
	return feed
}

func newSwingsCmd(configPath *string) *cobra.Command {
	swings := &cobra.Command{Use: "swings", Short: "Your swing history"}

	var sort string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your swings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			items, err := app.SwingsCLI.ListSwings(cmd.Context(), sort)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, s := range items {
				_, _ = fmt.Fprintf(w, "#%d %s score=%d improvement=%+d tips=%q\n", s.ID, s.Date, s.Score, s.Improvement, strings.Join(s.Tips, "; "))
			}
			quota, err := app.UploadCLI.Quota(cmd.Context())
			if err != nil {
				return err
			}
			if !quota.Unlimited {
				_, _ = fmt.Fprintf(w, "%d of %d free uploads used\n", quota.Used, quota.Limit)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&sort, "sort", "date", "sort order: date|score|improvement")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the progress overview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			stats, err := app.SwingsCLI.Stats(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "latest=%d this_month=%+d total=%d\n", stats.LatestScore, stats.MonthImprovement, stats.Total)
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare <id>...",
		Short: "Toggle swings into the comparison in order and compare the two that remain",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toggles := make([]int, 0, len(args))
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid swing id %q", arg)
				}
				toggles = append(toggles, id)
			}
			app, err := loadApp(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			report, err := app.SwingsCLI.CompareReport(cmd.Context(), toggles)
			if err != nil {
				return err
			}
			out, err := markdown.RenderTerminal(report, 80, markdown.StyleNoTTY)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	swings.AddCommand(listCmd, statsCmd, compareCmd)
	return swings
}

func newUploadCmd(configPath *string) *cobra.Command {
	var format string
	uploadCmd := &cobra.Command{
		Use:   "upload <video>",
		Short: "Upload a swing video, wait for the analysis and save it to your timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "markdown" {
				return fmt.Errorf("--format must be text or markdown")
			}
			app, err := loadApp(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			progress := cmd.ErrOrStderr()
			job, saved, err := app.UploadCLI.Upload(cmd.Context(), args[0], func(j uploaddto.JobOutput) {
				if j.Phase == uploaddto.PhaseUploading {
					_, _ = fmt.Fprintf(progress, "\ranalyzing %s %3d%%", j.Media.Name, j.Progress)
				}
			})
			_, _ = fmt.Fprintln(progress)
			if err != nil {
				return err
			}
			report, err := app.UploadCLI.Report(job, format)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), report)
			_, _ = fmt.Fprintf(progress, "saved to timeline as swing #%d\n", saved.SwingID)
			return nil
		},
	}
	uploadCmd.Flags().StringVar(&format, "format", "text", "output format: text|markdown")
	return uploadCmd
}

func newProfileCmd(configPath *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Profile and subscription"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show profile, stats and upload usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			p, err := app.ProfileCLI.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			usage, err := app.ProfileCLI.Usage(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "[%s] %s <%s> handicap=%s plan=%s\n", p.Initials, p.Name, p.Email, p.Handicap, p.Plan)
			_, _ = fmt.Fprintf(w, "best=%d average=%d improvement=%+d total=%d\n", p.BestScore, p.AverageScore, p.Improvement, p.TotalSwings)
			if usage.Unlimited {
				_, _ = fmt.Fprintln(w, "uploads: unlimited")
				return nil
			}
			_, _ = fmt.Fprintf(w, "uploads: %d of %d used\n", usage.Used, usage.Limit)
			if usage.Low {
				_, _ = fmt.Fprintln(w, "running low on uploads: nextround profile upgrade")
			}
			return nil
		},
	})

	var name, handicap string
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Change name or handicap",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			current, err := app.ProfileCLI.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") {
				name = current.Name
			}
			if !cmd.Flags().Changed("handicap") {
				handicap = current.Handicap
			}
			p, err := app.ProfileCLI.UpdateProfile(cmd.Context(), name, handicap)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s handicap=%s\n", p.Name, p.Handicap)
			return nil
		},
	}
	editCmd.Flags().StringVar(&name, "name", "", "display name")
	editCmd.Flags().StringVar(&handicap, "handicap", "", "handicap index (-10 to 54)")
	profile.AddCommand(editCmd)

	profile.AddCommand(&cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade to NextRound Pro",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ProfileCLI.Upgrade(cmd.Context())
			if err != nil {
				return err
			}
			if !out.Upgraded {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "already on pro")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "upgraded to %s (%s) receipt=%s\n", out.Plan, out.PriceLabel, out.ReceiptID)
			return nil
		},
	})
	return profile
}

func newAnalyzerCmd(configPath *string) *cobra.Command {
	analyzer := &cobra.Command{Use: "analyzer", Short: "Swing analyzers"}

	analyzer.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the builtin analyzer and plugin manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			items, err := app.AnalyzerCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range items {
				if a.Builtin {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s builtin\n", a.Name)
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t binary=%s\n", a.Name, a.Version, a.Enabled, a.Binary)
			}
			return nil
		},
	})

	analyzer.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate analyzer checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			results, err := app.AnalyzerCLI.Doctor(cmd.Context())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no analyzer plugins configured")
				return nil
			}
			failed := false
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					failed = true
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			if failed {
				return fmt.Errorf("analyzer doctor found failing checks")
			}
			return nil
		},
	})
	return analyzer
}
