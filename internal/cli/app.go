package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"vault-tracker/internal/api"
	"vault-tracker/internal/config"
	"vault-tracker/internal/events"
	"vault-tracker/internal/services"
	"vault-tracker/internal/validation"
)

// Opener builds the API for a loaded configuration. The root command calls
// it once per invocation, after flags are parsed.
type Opener func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (api.API, error)

// App carries what every command handler needs.
type App struct {
	api          api.API
	config       *config.Config
	in           io.Reader
	out          io.Writer
	renderer     *lipgloss.Renderer
	errorHandler *ErrorHandler
}

// NewAppWithIO creates a CLI application with explicit streams.
func NewAppWithIO(apiInstance api.API, cfg *config.Config, in io.Reader, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		api:          apiInstance,
		config:       cfg,
		in:           in,
		out:          out,
		renderer:     lipgloss.NewRenderer(out),
		errorHandler: NewErrorHandler(),
	}
}

// WithLogger makes the error handler log system failures to logger.
func (a *App) WithLogger(logger *slog.Logger) *App {
	a.errorHandler = NewErrorHandlerWithLogger(logger)
	return a
}

// OpenAPI opens the tracking database in the configured vault and wires the
// API around it.
func OpenAPI(ctx context.Context, cfg *config.Config, logger *slog.Logger) (api.API, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	store, err := config.OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return api.New(
		store,
		services.NewServiceContainer(loc, time.Now),
		validation.NewTrackingValidatorWithConfig(cfg),
		events.NewBus(),
		logger,
	), nil
}

// prompt writes question and reads one trimmed line of input.
func (a *App) prompt(question string) (string, error) {
	fmt.Fprint(a.out, question)
	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && !stderrors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
