package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/makkah-counter/internal/domain"
	"github.com/runoshun/makkah-counter/internal/receipt"
	"github.com/runoshun/makkah-counter/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// menuDocument is the exported shape of the menu for yaml and toml output.
type menuDocument struct {
	Items   []domain.MenuEntry `toml:"items" yaml:"items"`
	TaxRate int                `toml:"tax_rate" yaml:"tax_rate"`
}

// newMenuCommand creates the menu command.
func newMenuCommand(e *env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the menu without taking an order",
		Long: `Print every menu item with its price and options.

Formats:
  text  the menu as shown at the counter, followed by each item's options (default)
  yaml  machine-readable YAML
  toml  machine-readable TOML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e.container == nil {
				return errNoContainer
			}
			out, err := e.container.ShowMenuUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			return writeMenu(cmd.OutOrStdout(), format, e.container.Printer(), out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, yaml, toml")

	return cmd
}

// writeMenu renders the menu in the requested format.
func writeMenu(w io.Writer, format string, printer *receipt.Printer, out *usecase.ShowMenuOutput) error {
	doc := menuDocument{Items: out.Entries, TaxRate: out.TaxRate}

	switch format {
	case "text":
		catalog := domain.NewCatalog(out.Entries...)
		_, _ = fmt.Fprint(w, printer.Menu(catalog))
		for _, entry := range out.Entries {
			_, _ = fmt.Fprint(w, printer.Options(entry))
		}
		_, _ = fmt.Fprintf(w, "\nGST of %d%% is added to every order.\n", out.TaxRate)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q (want text, yaml or toml)", domain.ErrUnknownFormat, format)
	}
}
