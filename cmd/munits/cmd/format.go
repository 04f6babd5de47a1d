package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/pkg/quantity"
)

type formatOptions struct {
	to   string
	verb string
	kind string
}

func newFormatCmd(a *app) *cobra.Command {
	opts := &formatOptions{}

	formatCmd := &cobra.Command{
		Use:   "format <wert> <einheit>",
		Short: "Größe in einer Einheit ausgeben",
		Long: `Bildet eine Größe aus Wert und Einheit und gibt sie in der
Zieleinheit aus. Ohne --to wird die Anzeigeeinheit der Größenart verwendet.

Beispiele:
  munits format 5 km --to mi
  munits format 1500 g
  munits format 0,5 km --to m --locale de
  munits format 3 ft --to m --verb %.3f`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, a, opts, args)
		},
	}

	formatCmd.Flags().StringVar(&opts.to, "to", "", "Zieleinheit (default: Anzeigeeinheit)")
	formatCmd.Flags().StringVar(&opts.verb, "verb", "", "Zahlenformat, z.B. %.3f (default: %g)")
	formatCmd.Flags().StringVar(&opts.kind, "kind", "", "Größenart, falls der Einheitenname mehrdeutig ist")

	return formatCmd
}

func runFormat(cmd *cobra.Command, a *app, opts *formatOptions, args []string) error {
	value, err := a.numbers.ParseFloat(args[0])
	if err != nil {
		return err
	}

	descriptor, err := a.resolveUnit(opts.kind, args[1])
	if err != nil {
		return err
	}

	constructor, ok := quantity.Lookup(descriptor.Kind)
	if !ok {
		return mdwerror.New("unknown quantity kind").
			WithCode(mdwerror.CodeUnknownKind).
			WithOperation("munits.format").
			WithDetail("kind", descriptor.Kind.String())
	}
	q := constructor(value * descriptor.Unit.Value())

	text, err := a.provider.Format(strings.TrimSpace(opts.verb+" "+opts.to), q)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
