package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app carries state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string
	cfg        Config
	logs       io.Writer
}

// NewRootCommand builds the happycube command tree. Logs go to logs.
func NewRootCommand(logs io.Writer) *cobra.Command {
	a := &app{cfg: DefaultConfig(), logs: logs}

	root := &cobra.Command{
		Use:           "happycube",
		Short:         "Draw and inspect Happy Cube puzzle pieces",
		Long:          `happycube draws 5×5 puzzle pieces from their 16-digit edge codes, in any of their eight orientations.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(a.logs, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.configPath != "" {
				logger.Debug("loaded config", "path", a.configPath, "filled", cfg.Filled, "empty", cfg.Empty, "box", cfg.Box)
			}
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("happycube %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a TOML config file")

	root.AddCommand(a.newRenderCmd())
	root.AddCommand(a.newEdgesCmd())
	root.AddCommand(a.newOrientationsCmd())

	return root
}

// Execute runs the CLI with os.Args and returns the first command error.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}
