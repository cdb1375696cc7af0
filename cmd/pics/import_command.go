package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/pics/internal/config"
	"github.com/backmassage/pics/internal/importer"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var (
		weekly      bool
		afterArg    string
		organizeDst bool
		prefix      string
		dryRun      bool
		destArg     string
	)

	cmd := &cobra.Command{
		Use:   "import <source>",
		Short: "Import photos from an SD card into Week N folders",
		Long: `Import recursively scans a source directory (e.g. an SD card mount) for
photo files and copies them into "Week N" folders under the destination root,
bucketed by the weekly schedule. Files keep their original names; with
--organize each week folder is organized afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidatePrefix(prefix); err != nil {
				return err
			}

			opts := importer.Options{
				Weekly:     weekly,
				Organize:   organizeDst,
				Prefix:     prefix,
				DryRun:     dryRun,
				Epoch:      ctx.cfg.Epoch,
				Extensions: ctx.cfg.ImportExtensionSet(),
			}
			if afterArg != "" {
				after, err := config.ParseDate(afterArg)
				if err != nil {
					return err
				}
				opts.After = after
				opts.AfterSet = true
			}

			source, err := resolveDir(config.NormalizeDirArg(args[0]))
			if err != nil {
				return err
			}
			dest, err := filepath.Abs(config.NormalizeDirArg(destArg))
			if err != nil {
				return err
			}
			ctx.cfg.SourceDir = source
			ctx.cfg.DestDir = dest
			ctx.cfg.Prefix = prefix
			ctx.cfg.DryRun = dryRun
			ctx.cfg.Weekly = weekly
			ctx.cfg.After = opts.After
			ctx.cfg.AfterSet = opts.AfterSet
			ctx.cfg.OrganizeAfter = organizeDst

			ctx.log.Info("Importing from: %s", source)
			ctx.log.Info("Into:           %s", dest)
			_, err = importer.Run(source, dest, opts, ctx.log)
			return err
		},
	}

	cmd.Flags().BoolVarP(&weekly, "weekly", "w", false, "Only import photos from weekly photo days")
	cmd.Flags().StringVarP(&afterArg, "after", "a", "", "Only import photos dated on or after this date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&organizeDst, "organize", "o", false, "Organize each week folder after copying")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Rename prefix used with --organize (effective prefix: '<prefix>-week-N')")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Show what would be done without copying files")
	cmd.Flags().StringVar(&destArg, "dest", ".", "Destination root for the Week N folders")

	return cmd
}
