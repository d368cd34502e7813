// Package cli implements the alias-resolver command line.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"alias-resolver/internal/config"
)

// BuildInfo is injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app is the state shared by all commands of one invocation.
type app struct {
	info    BuildInfo
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
	printer *message.Printer
}

// Execute runs the root command with os.Args.
func Execute(info BuildInfo) error {
	return NewRootCommand(info).Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{
		info:    info,
		v:       config.New(),
		logger:  zap.NewNop(),
		printer: message.NewPrinter(language.English),
	}

	root := &cobra.Command{
		Use:   "alias-resolver",
		Short: "Resolve annotation attributes through alias declarations",
		Long: `alias-resolver answers "what is the value of attribute X of annotation type T
on this element", following alias-for declarations between annotation types.

Annotation types and elements are read from YAML model files (--model) and
from Go packages declaring annotation types as structs (--package).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./"+config.FileName+".yaml)")
	flags.StringSliceP("model", "m", nil, "YAML model files")
	flags.StringSliceP("package", "p", nil, "Go packages declaring annotation types")
	flags.Bool("cache", true, "cache alias links per annotation type")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolP("quiet", "q", false, "disable logging")

	bindFlags(a.v, flags, map[string]string{
		config.KeyModelFiles:    "model",
		config.KeyModelPackages: "package",
		config.KeyCacheEnabled:  "cache",
		config.KeyLogLevel:      "log-level",
		config.KeyLogQuiet:      "quiet",
	})

	root.AddCommand(
		a.newResolveCommand(),
		a.newLinksCommand(),
		a.newCheckCommand(),
		a.newEndpointsCommand(),
		a.newExportCommand(),
		a.newVersionCommand(),
	)

	return root
}

// bindFlags binds config keys to flags, so flags override the config file and
// the environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		// Lookup cannot fail for flags defined by NewRootCommand
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger.Named("alias-resolver")

	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.Strings("files", cfg.Model.Files),
		zap.Strings("packages", cfg.Model.Packages),
		zap.Bool("cache", cfg.Cache.Enabled),
	)

	return nil
}

func (a *app) printf(w io.Writer, format string, args ...any) {
	_, _ = a.printer.Fprintf(w, format, args...)
}
