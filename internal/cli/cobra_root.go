package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vault-tracker/internal/config"
	"vault-tracker/internal/errors"
	"vault-tracker/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	opener Opener
	app    *App

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(opener Opener) *RootCommand {
	root := &RootCommand{
		opener: opener,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	root.cmd = &cobra.Command{
		Use:   "vt",
		Short: "Track time against named sessions in a notes vault",
		Long: `vt records named tracking sessions in a SQLite file inside your vault.

Starting a tracking closes the one that is running. Days are calendar days
in UTC; times are shown and edited in the configured time zone.

EXAMPLES:
  vt start Write weekly report       # Start tracking, stopping the current one
  vt current                         # Show the running tracking
  vt stop                            # Stop the running tracking
  vt list --date yesterday           # Trackings started yesterday
  vt edit 3 --end "2024-01-05 17:30:00"
  vt report                          # Totals per description for today
  vt output --from 2024-01-01 --to 2024-01-31 > january.csv
  vt ui                              # Interactive day view

CONFIGURATION:
  Priority: command-line flags > environment variables > config file > defaults

    VT_CONFIG_PATH          YAML config file
    VT_VAULT_DIR            Vault directory (default: .)
    VT_DB_FILENAME          Database file inside the vault (default: time-tracker.db)
    VT_TIMEZONE             Time zone for display and edits (default: Local)
    VT_TIME_DISPLAY_FORMAT  Timestamp layout for exports
    VT_DESCRIPTION_MAX      Maximum description length (default: 255)
    VT_LOG_LEVEL            debug, info, warn or error (default: info)
    VT_APP_TIMEOUT          Per-command timeout (default: 30s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.open(cmd.Context())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// SetIO replaces the streams used by commands. Call before Execute.
func (r *RootCommand) SetIO(in io.Reader, out, errOut io.Writer) {
	r.in = in
	r.out = out
	r.errOut = errOut
	r.cmd.SetIn(in)
	r.cmd.SetOut(out)
	r.cmd.SetErr(errOut)
}

// SetArgs overrides the arguments cobra parses, for tests.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command and closes the API afterwards, saving the
// database one last time.
func (r *RootCommand) Execute(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if r.app != nil {
		if closeErr := r.app.api.Close(context.WithoutCancel(ctx)); closeErr != nil && err == nil {
			err = r.app.errorHandler.Handle("save tracking database", closeErr)
		}
		r.app = nil
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "YAML config file (overrides VT_CONFIG_PATH)")
	flags.String("vault", "", "Vault directory (overrides VT_VAULT_DIR)")
	flags.String("db-filename", "", "Database filename inside the vault (overrides VT_DB_FILENAME)")
	flags.String("timezone", "", "Time zone for display and edits (overrides VT_TIMEZONE)")
	flags.String("time-format", "", "Timestamp layout for exports (overrides VT_TIME_DISPLAY_FORMAT)")
	flags.Int("description-max-length", 0, "Maximum description length (overrides VT_DESCRIPTION_MAX)")
	flags.String("log-level", "", "Log level (overrides VT_LOG_LEVEL)")
	flags.Duration("app-timeout", 0, "Per-command timeout (overrides VT_APP_TIMEOUT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newStartCmd(),
		r.newStopCmd(),
		r.newCurrentCmd(),
		r.newListCmd(),
		r.newEditCmd(),
		r.newDeleteCmd(),
		r.newResumeCmd(),
		r.newReportCmd(),
		r.newOutputCmd(),
		r.newUICmd(),
	)
}

// open loads configuration with flag overrides and builds the App.
func (r *RootCommand) open(ctx context.Context) error {
	if r.app != nil {
		return nil
	}
	if r.opener == nil {
		return fmt.Errorf("no API opener configured")
	}

	overrides, err := r.getConfigOverrides()
	if err != nil {
		return err
	}
	cfg, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		return NewErrorHandler().Handle("load configuration", errors.WrapError(err, errors.ErrorTypeInvalidInput, err.Error()))
	}

	logger := logging.NewLogger(r.errOut, cfg.Log.Level)
	apiInstance, err := r.opener(ctx, cfg, logger)
	if err != nil {
		return NewErrorHandlerWithLogger(logger).Handle("open tracking database", err)
	}

	r.app = NewAppWithIO(apiInstance, cfg, r.in, r.out).WithLogger(logger)
	return nil
}

// getConfigOverrides collects the persistent flags the user actually set
func (r *RootCommand) getConfigOverrides() (*config.ConfigOverrides, error) {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	stringFlags := map[string]**string{
		"config":      &overrides.ConfigPath,
		"vault":       &overrides.VaultDir,
		"db-filename": &overrides.DBFilename,
		"timezone":    &overrides.Timezone,
		"time-format": &overrides.TimeFormat,
		"log-level":   &overrides.LogLevel,
	}
	for name, target := range stringFlags {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return nil, err
		}
		*target = &value
	}

	if flags.Changed("description-max-length") {
		value, err := flags.GetInt("description-max-length")
		if err != nil {
			return nil, err
		}
		overrides.DescriptionMaxLength = &value
	}
	if flags.Changed("app-timeout") {
		value, err := flags.GetDuration("app-timeout")
		if err != nil {
			return nil, err
		}
		overrides.Timeout = &value
	}

	return overrides, nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.app != nil && r.app.config.Application.Timeout > 0 {
		return r.app.config.Application.Timeout
	}
	return 30 * time.Second
}

// run executes fn with the per-command timeout applied. A failure caused by
// the timeout is reported as a timeout error.
func (r *RootCommand) run(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) error {
	timeout := r.getAppTimeout()
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	err := fn(ctx, r.app)
	if err != nil && stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		timeoutErr := errors.NewTimeoutError(cmd.Name(), timeout)
		timeoutErr.Cause = err
		return r.app.errorHandler.Handle(cmd.Name(), timeoutErr)
	}
	return err
}

// runInteractive executes fn without a timeout, for commands that wait on the user.
func (r *RootCommand) runInteractive(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) error {
	return fn(cmd.Context(), r.app)
}
