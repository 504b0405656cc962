package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerui/internal/ui/factory"
)

func newSkinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skins",
		Short: "List skins and the variants each one selects from",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, skin := range factory.Skins() {
				variants, err := factory.Variants(skin)
				if err != nil {
					return err
				}
				names := make([]string, 0, len(variants))
				for _, v := range variants {
					names = append(names, v.Name)
				}
				fmt.Fprintf(w, "%-12s %s\n", skin, strings.Join(names, ", "))
			}
			return nil
		},
	}

	return cmd
}
