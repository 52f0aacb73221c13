package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/graphlet/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// globals carries the root flags and the loaded configuration to every
// subcommand.
type globals struct {
	verbosity  int
	logFile    string
	configPath string
	config     config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{config: config.Default()}

	rootCmd := &cobra.Command{
		Use:     "graphlet",
		Short:   "Symbols and completions for Mermaid diagrams",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load(cmd)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&g.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&g.logFile, "log", "", "write logs to this file instead of stderr")
	flags.StringVar(&g.configPath, "config", "", "path to graphlet.toml (default: search upward from the working directory)")

	rootCmd.AddCommand(newLSPCmd(g))
	rootCmd.AddCommand(newServeCmd(g))
	rootCmd.AddCommand(newSymbolsCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newCatalogCmd())

	return rootCmd
}

// load reads the configuration and sets up logging. Flags given on the
// command line win over the file.
func (g *globals) load(cmd *cobra.Command) error {
	var err error
	if g.configPath != "" {
		g.config, err = config.LoadFile(g.configPath)
	} else {
		g.config, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		g.config.Log.Verbosity = g.verbosity
	}
	if flags.Changed("log") {
		g.config.Log.File = g.logFile
	}

	var path *string
	if g.config.Log.File != "" {
		path = &g.config.Log.File
	}
	commonlog.Configure(g.config.Log.Verbosity, path)

	if g.config.Path != "" {
		commonlog.GetLogger("graphlet").Debugf("using config %s", g.config.Path)
	}
	return nil
}
