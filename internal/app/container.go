// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/runoshun/makkah-counter/internal/domain"
	"github.com/runoshun/makkah-counter/internal/infra/config"
	"github.com/runoshun/makkah-counter/internal/infra/console"
	"github.com/runoshun/makkah-counter/internal/infra/logging"
	"github.com/runoshun/makkah-counter/internal/receipt"
	"github.com/runoshun/makkah-counter/internal/usecase"
)

// Options holds command-line overrides applied on top of the config files.
type Options struct {
	ConfigPath string // Extra config file merged last (--config)
	LogDir     string // Overrides [log].dir when not empty
	LogLevel   string // Overrides [log].level when not empty
	NoColor    bool   // Forces plain output
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
// Fields are ordered to minimize memory padding.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigLoader domain.ConfigLoader
	Logger       domain.Logger

	// Pointer fields
	Config *domain.Config

	Catalog   domain.Catalog
	SessionID string
}

// New creates a new Container from the config files and opts.
func New(opts Options) (*Container, error) {
	loader := config.NewLoader(opts.ConfigPath)
	return newContainer(loader, opts)
}

// NewWithLoader creates a new Container using the given config loader.
// This is useful for testing.
func NewWithLoader(loader domain.ConfigLoader, opts Options) (*Container, error) {
	return newContainer(loader, opts)
}

func newContainer(loader domain.ConfigLoader, opts Options) (*Container, error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	applyOptions(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	fileLogger := logging.New(cfg.Log.Dir, sessionID, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		ConfigLoader: loader,
		Logger:       fileLogger,
		Config:       cfg,
		Catalog:      domain.DefaultCatalog(),
		SessionID:    sessionID,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, loader domain.ConfigLoader, logger domain.Logger) *Container {
	return &Container{
		ConfigLoader: loader,
		Logger:       logger,
		Config:       cfg,
		Catalog:      domain.DefaultCatalog(),
		SessionID:    uuid.NewString(),
	}
}

func applyOptions(cfg *domain.Config, opts Options) {
	if opts.LogDir != "" {
		cfg.Log.Dir = opts.LogDir
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.NoColor {
		cfg.Display.Color = false
	}
}

// Close releases the log file when the logger holds one.
// It is safe to call more than once.
func (c *Container) Close() error {
	closer, ok := c.Logger.(io.Closer)
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("close log: %w", err)
	}
	return nil
}

// Printer returns a receipt printer configured for the hotel and display settings.
func (c *Container) Printer() *receipt.Printer {
	styles := receipt.PlainStyles()
	if c.Config.Display.Color {
		styles = receipt.DefaultStyles()
	}
	return receipt.NewPrinter(c.Config.Hotel.Name, c.Config.Hotel.Currency, styles)
}

// UseCase factory methods

// TakeOrdersUseCase returns a new TakeOrders use case reading from in and writing to out.
func (c *Container) TakeOrdersUseCase(in io.Reader, out io.Writer) *usecase.TakeOrders {
	return usecase.NewTakeOrders(
		c.Catalog,
		console.NewReader(in),
		out,
		c.Printer(),
		c.Logger,
		c.Config.Pricing.RoundPlaces,
	)
}

// ShowMenuUseCase returns a new ShowMenu use case.
func (c *Container) ShowMenuUseCase() *usecase.ShowMenu {
	return usecase.NewShowMenu(c.Catalog)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader)
}
