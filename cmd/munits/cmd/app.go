package cmd

import (
	"embed"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/msto63/munits/foundation/core/config"
	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/foundation/core/i18n"
	mdwlog "github.com/msto63/munits/foundation/core/log"
	"github.com/msto63/munits/foundation/utils/stringx"
	"github.com/msto63/munits/pkg/catalog"
	"github.com/msto63/munits/pkg/core/logging"
	"github.com/msto63/munits/pkg/quantity"
	"github.com/msto63/munits/pkg/units"
)

//go:embed locales/*.toml
var localesFS embed.FS

// configRules validates munits.toml
var configRules = config.ValidationRules{
	"locale":           {Type: "string"},
	"log.level":        {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "fatal"}},
	"log.format":       {Type: "string", OneOf: []string{"json", "text", "console"}},
	"catalog.path":     {Type: "string"},
	"catalog.standard": {Type: "bool"},
}

// app is the state shared by all commands of one invocation
type app struct {
	cfg      *config.Config
	logger   *mdwlog.Logger
	locale   language.Tag
	numbers  *i18n.NumberFormat
	messages *i18n.Manager
	provider *units.Provider

	catalogPath string
}

// setup loads configuration, logger, translations and units
func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules); err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.GetString("log.level", "warn")
	if opts.verbose {
		level = "debug"
	}
	a.logger = logging.NewLogger(logging.LoggerConfig{
		Name:   "munits",
		Level:  level,
		Format: cfg.GetString("log.format", "text"),
		Output: cmd.ErrOrStderr(),
	}).WithField("command", cmd.Name())

	a.locale, err = resolveLocale(opts.locale, cfg.GetString("locale"))
	if err != nil {
		return err
	}
	a.numbers = i18n.NewNumberFormat(a.locale)

	a.messages, err = i18n.New(i18n.Options{
		DefaultLocale: language.English,
		FS:            localesFS,
		Dir:           "locales",
	})
	if err != nil {
		return err
	}
	a.messages.SetLocale(a.locale)

	a.provider = units.New(units.Locale(a.locale), units.Logger(a.logger))
	if cfg.GetBool("catalog.standard", true) {
		if err := catalog.Standard().Apply(a.provider); err != nil {
			return err
		}
	}

	a.catalogPath = stringx.FirstNonBlank(opts.catalogFile, cfg.GetString("catalog.path"))
	if a.catalogPath != "" {
		c, err := catalog.Load(a.catalogPath)
		if err != nil {
			return err
		}
		if err := c.Apply(a.provider); err != nil {
			return err
		}
		a.logger.Debug("catalog applied", mdwlog.Fields{"path": a.catalogPath, "units": c.Len()})
	}

	a.logger.Debug("ready", mdwlog.Fields{"locale": a.locale.String(), "kinds": len(a.provider.Kinds())})
	return nil
}

// loadConfig loads the explicit config file or discovers munits.toml
func loadConfig(path string) (*config.Config, error) {
	options := config.DefaultDiscoveryOptions()
	if stringx.IsBlank(path) {
		return config.Discover(options)
	}
	return config.LoadWithOptions(path, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
}

// resolveLocale picks the locale from flag, config or environment
func resolveLocale(flagValue, configValue string) (language.Tag, error) {
	value := stringx.FirstNonBlank(flagValue, configValue)
	if value == "" {
		return i18n.SystemLocale(language.English), nil
	}
	tag, err := i18n.ParseLocale(value)
	if err != nil {
		return language.Und, mdwerror.Wrap(err, "invalid locale").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("munits.resolveLocale").
			WithDetail("locale", value)
	}
	return tag, nil
}

// kindName returns the translated name of kind
func (a *app) kindName(kind quantity.Kind) string {
	key := "kind." + kind.String()
	if a.messages.HasTranslation(key) {
		return a.messages.T(key)
	}
	return kind.String()
}

// resolveUnit finds a unit by name, restricted to kind when given
func (a *app) resolveUnit(kindName, unitName string) (units.Descriptor, error) {
	if stringx.IsNotBlank(kindName) {
		kind, err := quantity.ParseKind(kindName)
		if err != nil {
			return units.Descriptor{}, err
		}
		if descriptor, ok := a.provider.Unit(kind, unitName); ok {
			return descriptor, nil
		}
	} else if unit, ok := a.provider.GetUnit(unitName); ok {
		if descriptor, ok := a.provider.Unit(unit.Kind(), unitName); ok {
			return descriptor, nil
		}
	}

	return units.Descriptor{}, mdwerror.New(a.messages.T("format.unknown_unit", map[string]interface{}{"unit": unitName})).
		WithCode(mdwerror.CodeUnknownUnit).
		WithOperation("munits.resolveUnit").
		WithDetail("unit", unitName)
}
