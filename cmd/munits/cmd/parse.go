package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/foundation/utils/stringx"
	"github.com/msto63/munits/pkg/quantity"
)

const labelWidth = 8

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <größenart> <text>",
		Short: "Text als Größe lesen",
		Long: `Liest einen Text wie "5 km" oder "250g" als Größe der angegebenen Art
und zeigt Wert, Einheit und Betrag in der Basiseinheit.

Beispiele:
  munits parse length "5 km"
  munits parse mass 250g
  munits parse length 1,5 --locale de`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, a, args)
		},
	}
}

func runParse(cmd *cobra.Command, a *app, args []string) error {
	kind, err := quantity.ParseKind(args[0])
	if err != nil {
		return err
	}

	input := strings.Join(args[1:], " ")
	value, descriptor, ok := a.provider.ParseDescriptor(kind, input)
	if !ok {
		message := a.messages.T("parse.failed", map[string]interface{}{
			"input": input,
			"kind":  a.kindName(kind),
		})
		return mdwerror.New(message).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("munits.parse").
			WithDetail("kind", kind.String()).
			WithDetail("input", input)
	}

	baseUnit, _ := quantity.BaseUnit(kind)
	base := value * descriptor.Unit.Value()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", stringx.PadRight(a.messages.T("parse.value")+":", labelWidth, ' '), a.numbers.Format("%g", value))
	fmt.Fprintf(out, "%s %s\n", stringx.PadRight(a.messages.T("parse.unit")+":", labelWidth, ' '), descriptor.Name)
	fmt.Fprintf(out, "%s %s %s\n", stringx.PadRight(a.messages.T("parse.base")+":", labelWidth, ' '), a.numbers.Format("%g", base), baseUnit)
	return nil
}
