package main

import (
	"fmt"
	"log"
	"os"

	"github.com/n3xus/n3xus/commands"
	"github.com/n3xus/n3xus/config"
	"github.com/n3xus/n3xus/filesystem"
	"github.com/n3xus/n3xus/internal/util"
	"github.com/n3xus/n3xus/requests"
	"github.com/n3xus/n3xus/shell"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	cfgFile   string
	nodesDef  string
	verbose   int
	color     string
	inputMode string
	host      string
	noBanner  bool
}

var rootOpt rootOpts

var longRootCmdDescription = `n3xus is an interactive shell over an in-memory file tree.
Directories and empty files live only for the session; nothing touches the disk.
Press ESC on an empty prompt, type 'exit', or send EOF to leave.
`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "n3xus",
		Short:         "Interactive shell over an in-memory file tree",
		Long:          longRootCmdDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.StringVarP(&rootOpt.cfgFile, "config", "c", "", "Path to a YAML or JSON config file")
	flags.StringVarP(&rootOpt.nodesDef, "nodes", "n", "", "Path to a nodes def file seeding the tree")
	flags.IntVarP(&rootOpt.verbose, "verbose", "v", config.ErrorVerbose,
		"Log verbosity level between 1 (error) and 5 (trace). Logs go to stderr.")
	flags.StringVar(&rootOpt.color, "color", string(config.DefaultColor), "Prompt color mode: auto, always or never")
	flags.StringVar(&rootOpt.inputMode, "input-mode", string(config.DefaultInputMode), "Input mode: auto, line or raw")
	flags.StringVar(&rootOpt.host, "host", config.DefaultHost, "Host label shown in the prompt")
	flags.BoolVar(&rootOpt.noBanner, "no-banner", false, "Skip the start-up banner")
	return cmd
}

// loadConfig layers defaults, the config file and explicitly set flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if rootOpt.cfgFile != "" {
		override, err := config.LoadConfigOverrideFile(rootOpt.cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", rootOpt.cfgFile, err)
		}
		cfg.Merge(override)
	}

	flags := cmd.Flags()
	var override config.ConfigOverride
	if flags.Changed("verbose") {
		override.LogLvl = util.Pointer(rootOpt.verbose)
	}
	if flags.Changed("color") {
		override.Color = util.Pointer(config.ColorMode(rootOpt.color))
	}
	if flags.Changed("input-mode") {
		override.InputMode = util.Pointer(config.InputMode(rootOpt.inputMode))
	}
	if flags.Changed("host") {
		override.Host = util.Pointer(rootOpt.host)
	}
	if flags.Changed("no-banner") {
		override.Banner = util.Pointer(!rootOpt.noBanner)
	}
	cfg.Merge(&override)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Initialize logger
	util.InitializeLogger(cfg.LogLvl)
	log.SetFlags(0)
	log.SetOutput(util.NewLogLogger("stdlog", util.InfoLevel).Writer())
	logger := util.GetLogger("main")
	logger.Info().
		Int("verbose", rootOpt.verbose).
		Str("config", rootOpt.cfgFile).
		Str("nodes", rootOpt.nodesDef).
		Msg("N3XUS initializing")

	fs := filesystem.NewFS()

	// Load node definitions
	if rootOpt.nodesDef != "" {
		reqs, err := requests.LoadNodeRequestsFile(rootOpt.nodesDef)
		if err != nil {
			return fmt.Errorf("failed to load nodes def file %s: %w", rootOpt.nodesDef, err)
		}
		logger.Debug().Str("nodes", rootOpt.nodesDef).Int("requests", len(reqs)).Msg("Nodes def file loaded successfully")

		res := requests.Seed(fs, reqs)
		logger.Info().
			Int("directories", res.Directories).
			Int("files", res.Files).
			Int("failed", res.Failed).
			Msg("Added new nodes to filesystem")
	} else {
		logger.Debug().Msg("No nodes def file provided")
	}

	out := shell.Stdout(os.Stdout)
	in := shell.NewLineReader(cfg.InputMode, os.Stdin, out)
	session := shell.New(cfg, fs, commands.NewDefaultRegistry(), in, out)

	if err := session.Run(); err != nil {
		// the session already said goodbye; input just went away
		logger.Warn().Err(err).Msg("Session ended on input error")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "n3xus: %v\n", err)
		os.Exit(1)
	}
}
