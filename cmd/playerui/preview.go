package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/playerui/internal/channel"
	"github.com/alexisbeaulieu97/playerui/internal/channel/wsbridge"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/tui"
)

type previewOptions struct {
	ui             uiFlags
	scenario       scenarioFlags
	Bridge         string
	Follow         bool
	NonInteractive bool
}

var previewRunner = runPreview

func newPreviewCmd(app *AppContext) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a skin interactively in the terminal",
		Long: `Mount a skin on a simulated player and drive it from the keyboard.
The outline is redrawn after every key so variant switches can be watched
live. Without a terminal a single frame is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.preview")
			if !opts.NonInteractive {
				opts.NonInteractive = !term.IsTerminal(int(os.Stdout.Fd()))
			}
			err := previewRunner(ctx, cmd, opts, logger)
			if err != nil {
				logger.Error(ctx, "preview failed", "error", err)
			}
			return err
		},
	}

	opts.ui.bind(cmd.Flags())
	opts.scenario.bind(cmd.Flags())
	cmd.Flags().StringVar(&opts.Bridge, "bridge", "", "Websocket URL relaying the external message channel (overrides the configuration)")
	cmd.Flags().BoolVar(&opts.Follow, "follow", false, "Resize the player with the terminal")
	cmd.Flags().BoolVar(&opts.NonInteractive, "once", false, "Print a single frame and exit")

	return cmd
}

func runPreview(ctx context.Context, cmd *cobra.Command, opts previewOptions, logger ports.Logger) error {
	cfg, err := opts.ui.load(ctx, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hub := channel.NewHub(logger)
	model, err := tui.NewModel(ctx, tui.Options{
		Config:         cfg,
		Scenario:       opts.scenario.scenario(),
		Channel:        hub,
		Logger:         logger,
		FollowTerminal: opts.Follow,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	if opts.NonInteractive {
		fmt.Fprintln(cmd.OutOrStdout(), model.View())
		return nil
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	url := opts.Bridge
	if url == "" {
		url = cfg.Channel.URL
	}
	if url != "" {
		client, err := wsbridge.Dial(ctx, url, func(name string, data interface{}) {
			program.Send(tui.ChannelMsg{Name: name, Data: data})
		}, logger)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck
		hub.SetForwarder(client.Forward)
		go func() {
			if err := client.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Warn(ctx, "message channel closed", "error", err)
			}
		}()
	}

	_, err = program.Run()
	return err
}
