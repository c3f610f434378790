package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stellarhub/stellarctl/internal/config"
	"github.com/stellarhub/stellarctl/internal/gateway"
	"github.com/stellarhub/stellarctl/internal/guard"
	"github.com/stellarhub/stellarctl/internal/identity"
	"github.com/stellarhub/stellarctl/internal/log"
	"github.com/stellarhub/stellarctl/internal/notify"
	"github.com/stellarhub/stellarctl/internal/progress"
	"github.com/stellarhub/stellarctl/internal/session"
	"github.com/stellarhub/stellarctl/pkg/stellarhub"
)

// App bundles everything a command needs. It is built once per run; no
// package-level identity state exists outside it.
type App struct {
	Config   config.Config
	Logger   *log.Logger
	Sessions *session.Store
	IDs      *identity.Context
	Gateway  *gateway.Gateway
	Guard    *guard.Guard
	Hub      *stellarhub.Client
	Notifier notify.Notifier
}

var app *App

var (
	flagAPIURL   string
	flagStateDir string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "stellarctl",
	Short: "StellarHub device-monitoring dashboard client",
	Long: `stellarctl is the command-line client for the StellarHub IoT dashboard.
It signs in to your account's backend, keeps the session locally, and exposes
the dashboard's device, telemetry, work-order and user-management screens as
commands. All requests are scoped to your account automatically.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagStateDir, "state-dir", "", "state directory (default ~/.stellarhub)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")
}

func initApp() error {
	if app != nil {
		return nil
	}

	stateDir := flagStateDir
	if stateDir == "" {
		var err error
		stateDir, err = session.DefaultDir()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(stateDir)
	if err != nil {
		return err
	}
	if flagAPIURL != "" {
		cfg.APIBaseURL = flagAPIURL
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	})
	log.SetDefaultLogger(logger)

	ids := identity.NewContext()
	notifier := notify.NewTerminal(os.Stderr)
	sessions := session.NewStore(cfg.StateDir)

	gw := gateway.New(cfg.APIBaseURL, ids,
		gateway.WithNotifier(notifier),
		gateway.WithLogger(logger))

	// The one place session teardown happens: the gateway reports the 401,
	// the shell clears local state. Commands never handle this themselves.
	gw.OnSessionInvalidated(func() {
		ids.Reset()
		if err := sessions.SignOut(); err != nil {
			logger.WithError(err).Warn("could not clear session token")
		}
	})

	app = &App{
		Config:   cfg,
		Logger:   logger,
		Sessions: sessions,
		IDs:      ids,
		Gateway:  gw,
		Guard:    guard.New(gw, sessions, ids, logger),
		Hub:      stellarhub.New(gw),
		Notifier: notifier,
	}
	return nil
}

// requireAccount performs the tenant bootstrap the dashboard shell did at
// page load: one GET /api/info, populating the account store so every later
// call is scoped.
func (a *App) requireAccount(ctx context.Context) error {
	if !a.IDs.Account.IsEmpty() {
		return nil
	}
	account, err := a.Hub.AccountInfo(ctx)
	if err != nil {
		return fmt.Errorf("cannot resolve account: %w", err)
	}
	a.IDs.Account.Set(*account)
	return nil
}

// authorize is the protected-route check: account bootstrap, then role gate.
func (a *App) authorize(ctx context.Context, required guard.Role) error {
	if err := a.requireAccount(ctx); err != nil {
		return err
	}
	return a.Guard.Authorize(ctx, required)
}

// withSpinner shows a spinner on stderr while fn runs.
func withSpinner(message string, fn func() error) error {
	ind := progress.NewIndicator(progress.Config{Message: message})
	ind.Start()
	defer ind.Stop()
	return fn()
}
