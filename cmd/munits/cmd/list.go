package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/msto63/munits/foundation/utils/slicex"
	"github.com/msto63/munits/foundation/utils/stringx"
	"github.com/msto63/munits/pkg/quantity"
	"github.com/msto63/munits/pkg/units"
)

const displayMarker = "*"

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [größenart]",
		Short: "Registrierte Einheiten anzeigen",
		Long: `Zeigt die registrierten Einheiten je Größenart in Registrierungsreihenfolge.
Die Anzeigeeinheit ist mit * markiert.

Beispiele:
  munits list
  munits list length
  munits list --catalog ./units.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, a, args)
		},
	}
}

func runList(cmd *cobra.Command, a *app, args []string) error {
	kinds := a.provider.Kinds()
	if len(args) == 1 {
		kind, err := quantity.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []quantity.Kind{kind}
	}

	out := cmd.OutOrStdout()
	printed := 0
	for _, kind := range kinds {
		descriptors := a.provider.Units(kind)
		if len(descriptors) == 0 {
			continue
		}
		_, displayName, _ := a.provider.DisplayUnit(kind)
		baseUnit, _ := quantity.BaseUnit(kind)

		width, _ := slicex.Max(slicex.Map(descriptors, func(d units.Descriptor) int {
			return utf8.RuneCountInString(d.Name)
		}))

		if printed > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, headerStyle.Render(a.kindName(kind)))
		for _, d := range descriptors {
			marker := " "
			name := stringx.PadRight(d.Name, width, ' ')
			if d.Name == displayName {
				marker = displayMarker
				name = displayStyle.Render(name)
			}
			factor := a.messages.T("list.factor", map[string]interface{}{
				"factor": a.numbers.Format("%g", d.Unit.Value()),
				"base":   baseUnit,
			})
			fmt.Fprintf(out, "  %s %s  %s\n", marker, name, mutedStyle.Render("= "+factor))
		}
		printed++
	}

	if printed == 0 {
		fmt.Fprintln(out, a.messages.T("list.empty"))
	}
	return nil
}
