package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/keyline/pkg/buildinfo"
	"github.com/matzehuels/keyline/pkg/config"
	"github.com/matzehuels/keyline/pkg/pivot"
	"github.com/matzehuels/keyline/pkg/sim"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "keyline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Keyline simulates pivot-aligned list and grid layouts",
		Long:         `Keyline drives a virtualizing list and grid layout engine with directional moves, keeping the selected item aligned to a keyline inside the viewport.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.keylineCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Scenario Helpers
// =============================================================================

// loadScenario reads the scenario at path, or the default scenario when
// path is empty.
func loadScenario(path string) (*config.File, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// session is a manager wired to a simulated adapter and host.
type session struct {
	manager *pivot.Manager
	adapter *sim.Adapter
	host    *sim.Host
}

// newSession builds a manager for a scenario. The manager logs through the
// CLI logger.
func (c *CLI) newSession(f *config.File) (*session, error) {
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}
	opts.Logger = c.Logger

	adapter := sim.NewAdapter(f.BuildItems())
	host := sim.NewHost()
	m, err := pivot.New(adapter, host, opts)
	if err != nil {
		return nil, err
	}
	adapter.SetListener(m)
	return &session{manager: m, adapter: adapter, host: host}, nil
}
