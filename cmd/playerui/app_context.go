package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/playerui/internal/logger"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

const previewLogLimit = 500

// AppContext bundles the services every command shares. It is filled in by
// the root command once flags are parsed.
type AppContext struct {
	flags  *rootFlags
	stderr io.Writer

	logger ports.Logger
	file   *logger.Logger
	buffer *logging.EventBuffer
}

// open creates the command logger. While the preview owns the terminal,
// entries are buffered and written to stderr once it exits.
func (a *AppContext) open(stderr io.Writer, interactive bool) error {
	if a.logger != nil {
		return nil
	}
	a.stderr = stderr

	if a.flags.logFile == "" && interactive {
		a.buffer = logging.NewEventBuffer(previewLogLimit)
		a.logger = logging.NewDeferredLogger(a.buffer, a.flags.verbose)
		return nil
	}

	log, err := a.newLogger()
	if err != nil {
		return err
	}
	a.file = log
	a.logger = log
	return nil
}

func (a *AppContext) newLogger() (*logger.Logger, error) {
	level := "warn"
	if a.flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        a.stderr,
		File:          a.flags.logFile,
		Component:     "cli",
	})
}

// Close flushes buffered entries and closes the log file.
func (a *AppContext) Close() error {
	if a.buffer != nil && a.buffer.Len() > 0 {
		log, err := a.newLogger()
		if err != nil {
			return err
		}
		a.buffer.Flush(log)
	}
	if a.file != nil {
		return a.file.Close()
	}
	return nil
}

// CommandContext returns a correlated context and a logger tagged with the
// command name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.NewCorrelatedContext(ctx)
	return ctx, logging.OrNoOp(a.logger).With("command", name)
}
