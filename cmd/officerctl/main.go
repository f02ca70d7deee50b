package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/officerfeedback/officer-feedback/config"
	"github.com/officerfeedback/officer-feedback/internal/bootstrap"
	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/services"
	"github.com/officerfeedback/officer-feedback/internal/tui"
	"github.com/officerfeedback/officer-feedback/internal/views"
	apperrors "github.com/officerfeedback/officer-feedback/pkg/errors"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

type globalFlags struct {
	baseURL     string
	metricsAddr string
	logLevel    string
}

type submitFlags struct {
	rating    int
	comment   string
	anonymous bool
}

func main() {
	var gf globalFlags
	var rt *bootstrap.Runtime

	root := &cobra.Command{
		Use:           "officerctl",
		Short:         "Browse police officers and leave community feedback",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(gf)
			if err != nil {
				return codeError(3, "invalid configuration: %s", err)
			}
			rt, err = bootstrap.New(cfg)
			if err != nil {
				return codeError(3, "%s", err)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&gf.baseURL, "base-url", "", "Officer API base URL (overrides API_BASE_URL)")
	pf.StringVar(&gf.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (overrides METRICS_ADDR)")
	pf.StringVar(&gf.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides LOG_LEVEL)")

	var search string
	officersCmd := &cobra.Command{
		Use:   "officers",
		Short: "List officers, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOfficers(cmd.Context(), rt, search)
		},
	}
	officersCmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive substring of the officer's full name")

	feedbackCmd := &cobra.Command{
		Use:   "feedback <officer-id>",
		Short: "Show the feedback history of one officer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOfficerID(args[0])
			if err != nil {
				return err
			}
			return runFeedback(cmd.Context(), rt, id)
		},
	}

	var sf submitFlags
	submitCmd := &cobra.Command{
		Use:   "submit <officer-id>",
		Short: "Submit a rating and optional comment for an officer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOfficerID(args[0])
			if err != nil {
				return err
			}
			return runSubmit(cmd.Context(), rt, id, sf)
		},
	}
	f := submitCmd.Flags()
	f.IntVarP(&sf.rating, "rating", "r", 0, "Star rating from 1 to 5 (required)")
	f.StringVarP(&sf.comment, "comment", "c", "", "Optional free-text comment")
	f.BoolVar(&sf.anonymous, "anonymous", true, "Post without attribution")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactive directory and feedback form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notifier := tui.NewNotifier(cmd.OutOrStdout())
			nav := rt.NewNavigator(notifier)
			return tui.NewBrowser(nav, notifier, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	root.AddCommand(officersCmd, feedbackCmd, submitCmd, browseCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if rt != nil {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if closeErr := rt.Close(closeCtx); closeErr != nil {
			fmt.Fprintln(os.Stderr, "WARN: shutdown:", closeErr)
		}
		cancel()
	}
	if err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig(gf globalFlags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if gf.baseURL != "" {
		cfg.API.BaseURL = gf.baseURL
	}
	if gf.metricsAddr != "" {
		cfg.Observability.MetricsAddr = gf.metricsAddr
	}
	if gf.logLevel != "" {
		cfg.Logging.Level = gf.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseOfficerID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, codeError(2, "officer id must be a positive integer, got %q", arg)
	}
	return id, nil
}

func runOfficers(ctx context.Context, rt *bootstrap.Runtime, search string) error {
	officers, err := rt.Officers.ListOfficers(ctx)
	if err != nil {
		return codeError(4, "Failed to load officers: %s", err)
	}
	filtered := services.FilterOfficers(officers, search)
	tui.NewRenderer(os.Stdout).Officers(views.FormatHeader(len(filtered), len(officers)), filtered)
	return nil
}

func runFeedback(ctx context.Context, rt *bootstrap.Runtime, officerID int) error {
	entries, err := rt.Officers.ListFeedback(ctx, officerID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return codeError(4, "officer %d not found", officerID)
		}
		return codeError(4, "Failed to load feedback: %s", err)
	}
	if len(entries) == 0 {
		fmt.Println("No feedback yet")
		return nil
	}
	tui.NewRenderer(os.Stdout).Feedback(entries)
	return nil
}

func runSubmit(ctx context.Context, rt *bootstrap.Runtime, officerID int, sf submitFlags) error {
	draft := models.FeedbackDraft{Rating: sf.rating, Comment: sf.comment, Anonymous: sf.anonymous}
	if err := rt.Feedback.Submit(ctx, officerID, draft); err != nil {
		if errors.Is(err, services.ErrRatingRequired) {
			return codeError(2, "Please select a rating before submitting (--rating 1..5)")
		}
		if apperrors.Is(err, apperrors.ErrInvalidInput) {
			return codeError(2, "%s", err)
		}
		return codeError(4, "Failed to submit feedback: %s", err)
	}
	fmt.Println("Thank you for your feedback!")
	return nil
}
