package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bpbin/rawexplorer/internal/config"
	"github.com/bpbin/rawexplorer/internal/logger"
)

type rootOpts struct {
	cfgFile     string
	colorMode   string
	hideLogTime bool
}

const (
	colorModeNever  = "never"
	colorModeAlways = "always"
)

var longRootCmdDescription = `rawexplorer loads a data.raw dump and the prototype API documentation
and tells, for any JSON Pointer into the dump, which documented type the value has.

Settings come from flags, RAWEXPLORER_* environment variables and a YAML config
file (default $HOME/.rawexplorer.yaml), in that order of precedence.
`

// app carries state shared by all subcommands.
type app struct {
	opts rootOpts
	v    *viper.Viper
	cfg  *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:           "rawexplorer",
		Short:         "Explore data.raw with prototype API type information",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.cfgFile, "config", "", "config file (default is $HOME/.rawexplorer.yaml)")
	flags.String("schema", "", "prototype API document (prototype-api.json, or .yaml)")
	flags.String("dump", "", "data.raw dump in JSON")
	flags.String("doc-base", "", "documentation base URL (default https://lua-api.factorio.com/<version>)")
	flags.StringP("mode", "m", "normal", "type display mode: normal, all, off or debug")
	flags.String("driver", "go-json", "JSON token driver: go-json or encoding/json")
	flags.Int("max-depth", 0, "maximum nesting depth accepted in the dump, 0 for no limit")
	flags.String("duplicates", "ignore", "duplicate object keys in the dump: ignore, warn or error")
	flags.BoolP("debug", "d", false, "turn on debug mode")
	flags.StringVar(&a.opts.colorMode, "color", colorModeAlways, fmt.Sprintf("set the log color mode, the possible values can be %v", []string{colorModeNever, colorModeAlways}))
	flags.BoolVar(&a.opts.hideLogTime, "hide-time", false, "hide the log time")

	for key, flag := range map[string]string{
		config.KeySchema:     "schema",
		config.KeyDump:       "dump",
		config.KeyDocBase:    "doc-base",
		config.KeyMode:       "mode",
		config.KeyDriver:     "driver",
		config.KeyMaxDepth:   "max-depth",
		config.KeyDuplicates: "duplicates",
		config.KeyDebug:      "debug",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		newLabelCmd(a),
		newShowCmd(a),
		newTreeCmd(a),
		newPropsCmd(a),
		newLintCmd(a),
		newVersionCmd(),
	)
	rootCmd.DisableAutoGenTag = true
	return rootCmd
}

// initConfig reads the config file and environment and sets up logging.
func (a *app) initConfig() error {
	cfgFile, required := a.opts.cfgFile, true
	if cfgFile == "" {
		cfgFile, required = config.DefaultFile(), false
	}
	if err := config.ReadFile(a.v, cfgFile, required); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger.Init(logger.LogOptions{
		Verbose:      cfg.Debug,
		DisableColor: a.opts.colorMode == colorModeNever,
		HideLogTime:  a.opts.hideLogTime,
	})
	return nil
}
