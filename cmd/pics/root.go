package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/pics/internal/config"
	"github.com/backmassage/pics/internal/display"
	"github.com/backmassage/pics/internal/logging"
)

// commandContext carries the config and logger shared by all subcommands.
// The logger is built in PersistentPreRunE, after flags and the config file
// have been applied; before that, errors go to stderr via main.
type commandContext struct {
	cfg config.Config
	log *logging.Logger

	// Persistent flag targets.
	configFlag string
	forceColor bool
	noColor    bool
}

func newRootCommand() (*cobra.Command, *commandContext) {
	ctx := &commandContext{cfg: config.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:           "pics",
		Short:         "Organize photos by separating JPEG and RAW files into subdirectories",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&ctx.cfg.Verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().StringVarP(&ctx.cfg.LogFile, "log", "l", "", "Append logs to file")
	rootCmd.PersistentFlags().BoolVar(&ctx.forceColor, "color", false, "Force colored logs")
	rootCmd.PersistentFlags().BoolVar(&ctx.noColor, "no-color", false, "Disable colored logs")

	rootCmd.AddCommand(newOrganizeCommand(ctx))
	rootCmd.AddCommand(newImportCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))

	return rootCmd, ctx
}

// setup applies the config file overlay and color flags, validates the
// resulting config, and constructs the logger.
func (c *commandContext) setup() error {
	// Flags already wrote into c.cfg; remember the values the file must not
	// clobber (flags take precedence over the file).
	logFlag := c.cfg.LogFile

	if c.configFlag != "" {
		if err := config.LoadFile(&c.cfg, c.configFlag); err != nil {
			return err
		}
	} else if err := config.LoadDefaultFile(&c.cfg); err != nil {
		return err
	}

	if logFlag != "" {
		c.cfg.LogFile = logFlag
	}
	if c.noColor {
		c.cfg.ColorMode = config.ColorNever
	} else if c.forceColor {
		c.cfg.ColorMode = config.ColorAlways
	}

	if err := c.cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&c.cfg)
	if err != nil {
		return err
	}
	c.log = log

	display.PrintBanner()
	return nil
}

func (c *commandContext) closeLogger() {
	if c.log != nil {
		_ = c.log.Close()
	}
}

// resolveDir resolves path to an absolute directory, failing with a clear
// invocation error when it is missing or not a directory.
func resolveDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("directory '%s' does not exist", path)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("'%s' is not a directory", path)
	}
	return abs, nil
}
