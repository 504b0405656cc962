package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/ui/factory"
)

// Set through -ldflags by release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Skins     []string
}

// currentBuild fills gaps left by a plain `go install` from the module's
// embedded build information.
func currentBuild() buildInfo {
	info := buildInfo{Version: version, Commit: commit, Date: date, GoVersion: runtime.Version(), Skins: factory.Skins()}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "none":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == "unknown":
			info.Date = s.Value
		}
	}
	return info
}

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and bundled skins",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuild()
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, info.Version)
				return nil
			}
			fmt.Fprintf(out, "playerui version %s (%s, built %s, %s)\n", info.Version, info.Commit, info.Date, info.GoVersion)
			fmt.Fprintf(out, "skins: %s (default %s)\n", strings.Join(info.Skins, ", "), config.SkinDefault)
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print the version number only")

	return cmd
}
