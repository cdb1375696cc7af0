package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/pics/internal/config"
	"github.com/backmassage/pics/internal/organize"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var (
		prefix string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "organize <directory>",
		Short: "Move JPEG files to JPG/ and RAW files to RAW/, optionally renaming them",
		Long: `Organize moves the JPEG files of a directory into a JPG/ subdirectory and
the CR3 files into a RAW/ subdirectory. With --prefix the files are renamed
"{prefix}-0001.jpg", "{prefix}-0002.jpg", ... ordered by the camera sequence
number embedded in each filename.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidatePrefix(prefix); err != nil {
				return err
			}
			dir, err := resolveDir(config.NormalizeDirArg(args[0]))
			if err != nil {
				return err
			}
			ctx.cfg.TargetDir = dir
			ctx.cfg.Prefix = prefix
			ctx.cfg.DryRun = dryRun

			ctx.log.Info("Organizing: %s", dir)
			_, err = organize.Run(dir, organize.Options{Prefix: prefix, DryRun: dryRun}, ctx.log)
			return err
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Prefix for renaming files (e.g. 'vacation' -> vacation-0001.jpg)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Show what would be done without moving files")

	return cmd
}
