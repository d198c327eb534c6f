package main

import (
	"fmt"
	"os"
	"strings"

	"emperror.dev/errors"
	"github.com/alimgiray/ghprofile/pkg/config"
	"github.com/alimgiray/ghprofile/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	Debug bool
}

var RootCmd = &cobra.Command{
	Use:   "ghprofile",
	Short: "look up GitHub profiles and their repositories",

	// Errors are printed by main; a failed lookup already printed its page.
	SilenceErrors: true,
	SilenceUsage:  true,

	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}

		// Search progress is logged at info, which is noise next to the page.
		logger.Configure("warn", "text")
		logger.SetOutput(os.Stderr)
		if rootFlags.Debug {
			logger.GetLogger().SetLevel(logrus.DebugLevel)
			logger.WithField("version", config.Version).Debug("enabled debug logging")
		}
		return nil
	},
}

// exitError ends the program with a status code without printing anything
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func init() {
	RootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug, "debug", false,
		"enable verbose debug logging",
	)
	RootCmd.AddCommand(
		lookupCmd,
		tuiCmd,
		exportCmd,
		versionCmd,
	)
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		var exit exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}

		if rootFlags.Debug {
			stackTrace := fmt.Sprintf("%+v", err)
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n%s\n", err, indent(stackTrace, "\t"))
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}

		os.Exit(1)
	}
}

func indent(s string, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
