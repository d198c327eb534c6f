package main

import (
	"context"
	"fmt"

	"emperror.dev/errors"
	"github.com/alimgiray/ghprofile/internal/services"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportFlags struct {
	File string
}

var exportCmd = &cobra.Command{
	Use:   "export <username>",
	Short: "write the profile and repositories of a GitHub user to a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		viewer, err := search(context.Background(), args[0])
		if err != nil {
			return err
		}
		state := viewer.Snapshot()
		if state.HasError() {
			return errors.Errorf("lookup of %q failed: %s", args[0], state.Error)
		}

		exportService := services.NewExportService()
		path := exportFlags.File
		if path == "" {
			path = exportService.Filename(state.Result)
		}
		if err := exportService.SaveWorkbook(path, state.Result); err != nil {
			return errors.Wrap(err, "failed to export search result")
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(),
			"Wrote ", color.GreenString("%d", len(state.Result.Repositories)), " repositories to ",
			color.CyanString(path), "\n",
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(
		&exportFlags.File, "file", "f", "",
		"workbook to write (default <login>-github-profile.xlsx)",
	)
}
