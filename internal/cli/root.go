// Package cli provides the command-line interface for the order counter.
package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/makkah-counter/internal/app"
	"github.com/spf13/cobra"
)

// ContainerFactory builds the container once flags are parsed.
type ContainerFactory func(app.Options) (*app.Container, error)

// env carries the parsed global flags and the container built from them.
type env struct {
	newContainer ContainerFactory
	container    *app.Container
	opts         app.Options
}

// load builds the container on first use.
func (e *env) load() (*app.Container, error) {
	if e.container != nil {
		return e.container, nil
	}
	c, err := e.newContainer(e.opts)
	if err != nil {
		return nil, err
	}
	e.container = c
	return c, nil
}

// close releases the container, if one was built.
func (e *env) close() error {
	if e.container == nil {
		return nil
	}
	return e.container.Close()
}

// NewRootCommand creates the root command.
// Running it without a subcommand starts an order session on stdin/stdout.
func NewRootCommand(newContainer ContainerFactory, version string) *cobra.Command {
	e := &env{newContainer: newContainer}

	root := &cobra.Command{
		Use:   "counter",
		Short: "Take orders at the Makkah Hotel counter",
		Long: `counter shows the menu, takes an item, an option and a quantity,
prints the price with GST and repeats until the customer is done.
The session ends with a receipt showing the grand total.`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The template is static and must print even when the config is broken
			if cmd.Name() == "template" {
				return nil
			}

			c, err := e.load()
			if err != nil {
				return err
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e.container == nil {
				return errNoContainer
			}
			uc := e.container.TakeOrdersUseCase(cmd.InOrStdin(), cmd.OutOrStdout())
			_, err := uc.Execute(cmd.Context())
			return err
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return e.close()
		},
	}

	root.PersistentFlags().StringVar(&e.opts.ConfigPath, "config", "", "Additional config file merged over the global one")
	root.PersistentFlags().BoolVar(&e.opts.NoColor, "no-color", false, "Print plain, unstyled output")
	root.PersistentFlags().StringVar(&e.opts.LogDir, "log-dir", "", "Directory for counter.log (overrides [log].dir)")
	root.PersistentFlags().StringVar(&e.opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides [log].level)")

	root.AddCommand(
		newMenuCommand(e),
		newConfigCommand(e),
	)
	closeOnFailure(root, e)

	return root
}

// closeOnFailure wraps the RunE of cmd and its children so the container is
// also closed when a command fails. Cobra runs PersistentPostRunE only on success.
func closeOnFailure(cmd *cobra.Command, e *env) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			if err := run(c, args); err != nil {
				return errors.Join(err, e.close())
			}
			return nil
		}
	}
	for _, child := range cmd.Commands() {
		closeOnFailure(child, e)
	}
}

// errNoContainer is returned when a command runs without PersistentPreRunE.
var errNoContainer = errors.New("container not initialized")
