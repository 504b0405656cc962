package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerui/pkg/diff"
)

type diffOptions struct {
	ui       uiFlags
	From     string
	To       string
	FromSkin string
	ToSkin   string
	Format   string
	Stat     bool
}

func newDiffCmd(app *AppContext) *cobra.Command {
	opts := diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the UI mounted for two scenarios or two skins",
		Example: `  playerui diff --skin modern --from width=1280 --to width=400,mobile
  playerui diff --from-skin modern --to-skin tv --from state=playing --to state=playing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.diff")
			cfg, err := opts.ui.load(ctx, logger)
			if err != nil {
				return err
			}
			from, err := parseScenario(opts.From)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			to, err := parseScenario(opts.To)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			out := outputOptions{Format: opts.Format}
			beforeCfg := cfg.Clone()
			if opts.FromSkin != "" {
				beforeCfg.Skin = opts.FromSkin
			}
			before, beforeVariant, err := renderUI(ctx, beforeCfg, from.scenario(), out, logger)
			if err != nil {
				return err
			}
			afterCfg := cfg.Clone()
			if opts.ToSkin != "" {
				afterCfg.Skin = opts.ToSkin
			}
			after, afterVariant, err := renderUI(ctx, afterCfg, to.scenario(), out, logger)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			stats := diff.Count(diff.Lines(before, after))
			logger.Info(ctx, "ui compared", "from", beforeVariant, "to", afterVariant, "changes", stats.String())
			if !stats.Changed() {
				fmt.Fprintf(w, "no differences (%s)\n", beforeVariant)
				return nil
			}
			if opts.Stat {
				fmt.Fprintf(w, "%s → %s: %s\n", beforeVariant, afterVariant, stats)
				return nil
			}
			fmt.Fprint(w, diff.Unified(before, after, label(beforeCfg.Skin, beforeVariant), label(afterCfg.Skin, afterVariant)))
			return nil
		},
	}

	opts.ui.bind(cmd.Flags())
	cmd.Flags().StringVar(&opts.From, "from", "", "Scenario to compare from, e.g. width=1280,state=playing")
	cmd.Flags().StringVar(&opts.To, "to", "", "Scenario to compare to, e.g. width=400,mobile,ad")
	cmd.Flags().StringVar(&opts.FromSkin, "from-skin", "", "Skin to compare from")
	cmd.Flags().StringVar(&opts.ToSkin, "to-skin", "", "Skin to compare to")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatOutline, "Output format: html or outline")
	cmd.Flags().BoolVar(&opts.Stat, "stat", false, "Only print the number of changed lines")

	return cmd
}

func label(skin, variant string) string {
	if skin == "" {
		skin = "default"
	}
	return skin + "/" + variant
}
