package main

import (
	"context"
	"encoding/json"

	"emperror.dev/errors"
	"github.com/alimgiray/ghprofile/internal/views"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var lookupFlags struct {
	Output string
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <username>",
	Short: "print the profile and repositories of a GitHub user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		viewer, err := search(context.Background(), args[0])
		if err != nil {
			return err
		}
		page := views.Build(viewer.Snapshot())

		out := cmd.OutOrStdout()
		switch lookupFlags.Output {
		case "text":
			printPage(out, page)
		case "json":
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(page); err != nil {
				return errors.Wrap(err, "failed to encode page as JSON")
			}
		case "yaml":
			encoder := yaml.NewEncoder(out)
			if err := encoder.Encode(page); err != nil {
				return errors.Wrap(err, "failed to encode page as YAML")
			}
			if err := encoder.Close(); err != nil {
				return errors.Wrap(err, "failed to encode page as YAML")
			}
		default:
			return errors.Errorf("unknown output format %q (use text, json or yaml)", lookupFlags.Output)
		}

		if page.Error != "" {
			return exitError{code: 1}
		}
		return nil
	},
}

func init() {
	lookupCmd.Flags().StringVarP(
		&lookupFlags.Output, "output", "o", "text",
		"output format: text, json or yaml",
	)
}
