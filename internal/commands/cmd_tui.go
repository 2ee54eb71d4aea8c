package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/msgview/internal/core/fixture"
	"github.com/colonyops/msgview/internal/tui"
	"github.com/colonyops/msgview/pkg/logutils"
)

type TuiCmd struct {
	flags *Flags

	fixture string
	watch   bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags. They are local so the root command
// and the tui subcommand can both carry them without leaking into the
// other subcommands.
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "fixture",
			Usage:       "path to the fixture YAML to display",
			Sources:     cli.EnvVars("MSGVIEW_FIXTURE"),
			Local:       true,
			Destination: &cmd.fixture,
		},
		&cli.BoolFlag{
			Name:        "watch",
			Usage:       "reload the fixture when it changes on disk",
			Sources:     cli.EnvVars("MSGVIEW_WATCH"),
			Local:       true,
			Destination: &cmd.watch,
		},
	}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tui",
		Usage:     "Browse a fixture interactively",
		UsageText: "msgview tui --fixture <path> [--watch]",
		Description: `Opens the interactive viewer with three tabs: the conversation timeline,
the search results and the announcements-only banner.

Mentions, read-more and download actions are focused with tab and activated
with space or enter. Navigation requests are shown as notices.`,
		Flags:  cmd.Flags(),
		Action: cmd.run,
	})
	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	doc, err := loadFixture(cmd.fixture)
	if err != nil {
		return err
	}

	var watcher *fixture.Watcher
	if cmd.watch {
		watcher, err = fixture.Watch(ctx, cmd.fixture)
		if err != nil {
			return fmt.Errorf("watch fixture: %w", err)
		}
		defer func() { _ = watcher.Close() }()
	}

	// Logs to stderr would draw over the alternate screen.
	if cmd.flags.LogFile == "" {
		deferred := &logutils.Deferred{}
		prev := log.Logger
		log.Logger = log.Logger.Output(deferred)
		defer func() {
			log.Logger = prev
			_ = deferred.Flush(logutils.Stderr())
		}()
	}

	m := tui.New(ctx, cmd.flags.Config, cmd.flags.Catalog, tui.Options{
		Doc:     doc,
		Watcher: watcher,
	})

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
