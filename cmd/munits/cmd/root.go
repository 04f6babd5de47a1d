package cmd

import (
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	cfgFile     string
	catalogFile string
	locale      string
	verbose     bool
}

// NewRootCmd builds the munits command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "munits",
		Short: "mUnits - Physikalische Größen und Einheiten",
		Long: `mUnits formatiert und liest physikalische Größen in
registrierten Einheiten, abhängig von der Locale.

Befehle:
  format  - Größe in einer Einheit ausgeben
  parse   - Text als Größe lesen
  list    - Registrierte Einheiten anzeigen
  kinds   - Bekannte Größenarten anzeigen
  repl    - Interaktiver Umrechner`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "Config-Datei (default: ./munits.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.catalogFile, "catalog", "", "Zusätzlicher Einheitenkatalog (TOML/YAML)")
	rootCmd.PersistentFlags().StringVar(&opts.locale, "locale", "", "Locale für Zahlen und Texte (default: $LANG)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose Output")

	rootCmd.AddCommand(
		newFormatCmd(a),
		newParseCmd(a),
		newListCmd(a),
		newKindsCmd(a),
		newReplCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
