package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/fixture"
	"github.com/colonyops/msgview/internal/core/sysmsg"
	"github.com/colonyops/msgview/internal/tui/components"
	"github.com/colonyops/msgview/pkg/iojson"
)

type NotifyCmd struct {
	flags *Flags

	fixture    string
	now        string
	jsonOutput bool
}

// NewNotifyCmd creates a new notify command.
func NewNotifyCmd(flags *Flags) *NotifyCmd {
	return &NotifyCmd{flags: flags}
}

// Register adds the notify command to the application.
func (cmd *NotifyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "notify",
		Usage:     "Render the system notices of a fixture",
		UsageText: "msgview notify --fixture <path> [--now <time>] [--json]",
		Description: `Renders every group change, safety number verification and number change
entry of a fixture as the one-line system notices shown in a conversation.

Entries that break the notice contract (for example an add change without
contacts) are reported on stderr and the command exits non-zero after
rendering the rest.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "fixture",
				Usage:       "path to the fixture YAML",
				Sources:     cli.EnvVars("MSGVIEW_FIXTURE"),
				Destination: &cmd.fixture,
			},
			&cli.StringFlag{
				Name:        "now",
				Usage:       "reference time for relative timestamps (RFC 3339)",
				Destination: &cmd.now,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output notices as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

type noticeJSON struct {
	ID    string   `json:"id"`
	Icon  string   `json:"icon"`
	Lines []string `json:"lines"`
}

func (cmd *NotifyCmd) run(_ context.Context, c *cli.Command) error {
	doc, err := loadFixture(cmd.fixture)
	if err != nil {
		return err
	}
	now, err := parseNow(cmd.now)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	width := cmd.flags.outputWidth()

	var failed []error
	for _, e := range doc.Entries {
		m, ok, err := cmd.format(e, now)
		if !ok {
			continue
		}
		if err != nil {
			log.Warn().Err(err).Str("entry", e.ID).Msg("cannot render notice")
			failed = append(failed, fmt.Errorf("%s: %w", e.ID, err))
			continue
		}

		if cmd.jsonOutput {
			lines := make([]string, len(m.Lines))
			for i, l := range m.Lines {
				lines[i] = body.PlainText(l)
			}
			if err := iojson.WriteLine(out, noticeJSON{ID: e.ID, Icon: string(m.Icon), Lines: lines}); err != nil {
				return err
			}
			continue
		}
		_, _ = fmt.Fprintln(out, components.RenderSystemMessage(m, width))
	}

	return errors.Join(failed...)
}

// format renders a notice entry. ok is false for entries that are not
// notices.
func (cmd *NotifyCmd) format(e fixture.Entry, now time.Time) (sysmsg.SystemMessage, bool, error) {
	loc := cmd.flags.Catalog
	switch e.Kind {
	case fixture.KindGroup:
		n, err := e.Group.Notification()
		if err != nil {
			return sysmsg.SystemMessage{}, true, err
		}
		m, err := sysmsg.FormatGroup(loc, n)
		return m, true, err
	case fixture.KindVerification:
		m, err := sysmsg.FormatVerification(loc, e.Verification.Verification())
		return m, true, err
	case fixture.KindNumberChange:
		m, err := sysmsg.FormatNumberChange(loc, e.NumberChange.NumberChange(), now)
		return m, true, err
	default:
		return sysmsg.SystemMessage{}, false, nil
	}
}
