package main

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/eventloop"
	"github.com/alexisbeaulieu97/playerui/internal/player"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/factory"
	"github.com/alexisbeaulieu97/playerui/internal/ui/manager"
	"github.com/alexisbeaulieu97/playerui/internal/ui/render"
)

const (
	formatHTML    = "html"
	formatOutline = "outline"
)

type renderOptions struct {
	ui         uiFlags
	scenario   scenarioFlags
	Format     string
	ShowHidden bool
	Color      bool
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the UI a skin mounts for a player scenario",
		Long: `Build a skin against a simulated player, drive the player into the
requested scenario and print the mounted UI tree as HTML or as an outline.`,
		Example: `  playerui render --skin modern --width 400 --mobile
  playerui render --skin tv --state playing --ad --format outline`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.render")
			cfg, err := opts.ui.load(ctx, logger)
			if err != nil {
				return err
			}
			out, variant, err := renderUI(ctx, cfg, opts.scenario.scenario(), outputOptions{
				Format:     opts.Format,
				ShowHidden: opts.ShowHidden,
				Color:      opts.Color,
			}, logger)
			if err != nil {
				logger.Error(ctx, "render failed", "error", err)
				return err
			}
			logger.Info(ctx, "ui rendered", "variant", variant, "format", opts.Format)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	opts.ui.bind(cmd.Flags())
	opts.scenario.bind(cmd.Flags())
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatHTML, "Output format: html or outline")
	cmd.Flags().BoolVar(&opts.ShowHidden, "show-hidden", false, "Include hidden components in outlines")
	cmd.Flags().BoolVar(&opts.Color, "color", false, "Style outlines for a terminal")

	return cmd
}

type outputOptions struct {
	Format     string
	ShowHidden bool
	Color      bool
}

// renderUI mounts the configured skin for scenario and serialises the active
// tree. It returns the output and the name of the mounted variant.
func renderUI(ctx context.Context, cfg config.UIConfig, scenario player.Scenario, out outputOptions, logger ports.Logger) (string, string, error) {
	if out.Format != formatHTML && out.Format != formatOutline {
		return "", "", fmt.Errorf("unknown format %q (want %s or %s)", out.Format, formatHTML, formatOutline)
	}

	pl := player.New(player.Options{Logger: logger})
	mgr, err := factory.Build(cfg.Skin, pl, manager.Options{
		Config:    cfg,
		Logger:    logger,
		Scheduler: eventloop.NewManual(),
	})
	if err != nil {
		return "", "", err
	}
	defer mgr.Release()

	if err := mgr.Start(ctx); err != nil {
		return "", "", err
	}
	if err := scenario.Apply(ctx, pl); err != nil {
		return "", "", err
	}

	root := mgr.Root()
	if root == nil {
		return "", "", fmt.Errorf("no ui variant mounted")
	}
	if out.Format == formatHTML {
		return stableIDs(render.HTML(root.Render())), mgr.ActiveVariant(), nil
	}

	opts := render.TerminalOptions{ShowHidden: out.ShowHidden, HideIDs: true}
	if out.Color {
		theme := render.DefaultTheme()
		opts.Theme = &theme
	}
	return render.Terminal(root.Render(), opts), mgr.ActiveVariant(), nil
}

var generatedID = regexp.MustCompile(`\b[a-z]+-id-\d+\b`)

// stableIDs renumbers generated element ids in order of appearance so the
// output does not depend on how many components the process built before.
func stableIDs(markup string) string {
	seen := make(map[string]string)
	return generatedID.ReplaceAllStringFunc(markup, func(id string) string {
		if stable, ok := seen[id]; ok {
			return stable
		}
		stable := "el-" + strconv.Itoa(len(seen)+1)
		seen[id] = stable
		return stable
	})
}
