package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/munits/internal/tui/repl"
	"github.com/msto63/munits/pkg/catalog"
	"github.com/msto63/munits/pkg/quantity"
)

type replOptions struct {
	kind  string
	verb  string
	watch bool
}

func newReplCmd(a *app) *cobra.Command {
	opts := &replOptions{}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Interaktiver Umrechner",
		Long: `Startet einen interaktiven Umrechner. Eine eingegebene Größe wird in
allen registrierten Einheiten der gewählten Größenart angezeigt.
Tab wechselt die Größenart, Esc beendet.

Mit --watch wird der Katalog (--catalog oder catalog.path) bei
Änderungen neu geladen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, a, opts)
		},
	}

	replCmd.Flags().StringVar(&opts.kind, "kind", string(quantity.KindLength), "Größenart beim Start")
	replCmd.Flags().StringVar(&opts.verb, "verb", "", "Zahlenformat, z.B. %.3f (default: %g)")
	replCmd.Flags().BoolVar(&opts.watch, "watch", false, "Katalog bei Änderungen neu laden")

	return replCmd
}

func runRepl(cmd *cobra.Command, a *app, opts *replOptions) error {
	kind, err := quantity.ParseKind(opts.kind)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if opts.watch && a.catalogPath != "" {
		done, err := catalog.Watch(ctx, a.catalogPath, a.provider, a.logger)
		if err != nil {
			return err
		}
		defer func() {
			cancel()
			<-done
		}()
	}

	model := repl.New(repl.Config{
		Provider: a.provider,
		Kind:     kind,
		Verb:     opts.verb,
		Labels:   a.replLabels(),
	})

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = program.Run()
	return err
}

func (a *app) replLabels() repl.Labels {
	return repl.Labels{
		Placeholder: a.messages.T("repl.placeholder"),
		NextKind:    a.messages.T("repl.next_kind"),
		Quit:        a.messages.T("repl.quit"),
		NoUnits:     a.messages.T("repl.no_units"),
		KindName:    a.kindName,
	}
}
