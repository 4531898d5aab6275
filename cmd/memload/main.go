package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/memload/internal/cliconfig"
	logAdapter "github.com/bft-labs/memload/pkg/log"
	"github.com/bft-labs/memload/pkg/memload"
)

const helpDescription = `
Hand assemblies to a managed runtime from memory instead of from disk.

memload packs a directory of assemblies into a bundle file, then registers
that bundle for one execution domain and resolves assemblies out of it the
way an embedded runtime would.

Configuration is read from $HOME/.memload/config.toml, then MEMLOAD_*
environment variables, then flags.
`

var exampleUsage = strings.TrimSpace(`
  memload pack ./bin/Release -o app.mlb --xalz
  memload inspect app.mlb
  memload resolve app.mlb Mono.Android.dll MyApp.dll
  memload watch app.mlb --log-level debug
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the resolved configuration into subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	logger  *logAdapter.ZerologAdapter
}

func main() {
	a := &app{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "memload",
		Short:         "Register and resolve in-memory assemblies per execution domain",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.memload/config.toml)")
	flags.IntVar(&a.cfg.Domain, "domain", a.cfg.Domain, "execution domain id written by pack")
	flags.IntVar(&a.cfg.InitialCapacity, "initial-capacity", a.cfg.InitialCapacity, "initial domain table capacity")
	flags.BoolVar(&a.cfg.Decompress, "decompress", a.cfg.Decompress, "decode XALZ-compressed images on registration")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		newPackCmd(a),
		newInspectCmd(a),
		newResolveCmd(a),
		newWatchCmd(a),
	)

	if err := root.Execute(); err != nil {
		if a.logger != nil {
			a.logger.Error("memload", logAdapter.Err(err))
		} else {
			fmt.Fprintf(os.Stderr, "memload: %v\n", err)
		}
		os.Exit(1)
	}
}

// loadConfig layers the config file, then MEMLOAD_* variables, under the
// flags the user set explicitly.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, _ := logAdapter.ParseLevel(a.cfg.LogLevel)
	a.logger = logAdapter.NewZerologAdapterWithLogger(logAdapter.NewConsoleLogger(os.Stderr, level))
	a.logger.Debug("configuration", logAdapter.Any("config", a.cfg))
	return nil
}

// registryOptions maps the configuration onto library options.
func (a *app) registryOptions() []memload.Option {
	return []memload.Option{
		memload.WithLogger(a.logger),
		memload.WithInitialCapacity(a.cfg.InitialCapacity),
		memload.WithDecompression(a.cfg.Decompress),
	}
}
