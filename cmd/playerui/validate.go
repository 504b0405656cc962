package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cfginfra "github.com/alexisbeaulieu97/playerui/internal/infrastructure/config"
)

func newValidateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config>...",
		Short: "Check UI configuration files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.validate")
			loader := cfginfra.NewYAMLLoader(logger)
			w := cmd.OutOrStdout()

			var errs []error
			for _, path := range args {
				if err := loader.Validate(ctx, path); err != nil {
					fmt.Fprintf(w, "✗ %s: %v\n", path, err)
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(w, "✓ %s\n", path)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d of %d configuration files are invalid: %w", len(errs), len(args), errors.Join(errs...))
			}
			return nil
		},
	}

	return cmd
}
