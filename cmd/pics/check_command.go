package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/pics/internal/check"
	"github.com/backmassage/pics/internal/config"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <directory>",
		Short: "Inspect a directory without changing it",
		Long: `Check recursively scans a directory and reports what the other commands
would see: file counts per extension and category, files without a camera
sequence number, the date range, and the covered week span.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(config.NormalizeDirArg(args[0]))
			if err != nil {
				return err
			}
			ctx.cfg.TargetDir = dir
			return check.Run(dir, ctx.cfg.Epoch, ctx.cfg.ImportExtensionSet(), ctx.log)
		},
	}
	return cmd
}
