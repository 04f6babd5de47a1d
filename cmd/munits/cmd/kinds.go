package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/msto63/munits/foundation/utils/slicex"
	"github.com/msto63/munits/foundation/utils/stringx"
	"github.com/msto63/munits/pkg/quantity"
)

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Bekannte Größenarten anzeigen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(cmd, a)
		},
	}
}

func runKinds(cmd *cobra.Command, a *app) error {
	kinds := quantity.Kinds()

	width, _ := slicex.Max(slicex.Map(kinds, func(k quantity.Kind) int {
		return utf8.RuneCountInString(k.String())
	}))

	out := cmd.OutOrStdout()
	for _, kind := range kinds {
		baseUnit, _ := quantity.BaseUnit(kind)
		count := a.messages.T("kinds.units", map[string]interface{}{"count": len(a.provider.Units(kind))})
		fmt.Fprintf(out, "%s  %s  %s  %s\n",
			stringx.PadRight(kind.String(), width, ' '),
			stringx.PadRight(baseUnit, 4, ' '),
			stringx.PadRight(a.kindName(kind), 16, ' '),
			mutedStyle.Render(count))
	}
	return nil
}
