package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	logFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{flags: flags}

	cmd := &cobra.Command{
		Use:           "playerui",
		Short:         "playerui builds, previews and compares skinnable player UIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open(cmd.ErrOrStderr(), cmd.Name() == "preview")
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to a rotated file instead of stderr")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newSkinsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
