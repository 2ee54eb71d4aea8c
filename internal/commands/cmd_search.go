package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/logging"
	"github.com/colonyops/msgview/internal/core/search"
	"github.com/colonyops/msgview/internal/core/styles"
	"github.com/colonyops/msgview/internal/tui/components"
	"github.com/colonyops/msgview/pkg/iojson"
)

type SearchCmd struct {
	flags *Flags

	fixture    string
	now        string
	jsonOutput bool
}

// NewSearchCmd creates a new search command.
func NewSearchCmd(flags *Flags) *SearchCmd {
	return &SearchCmd{flags: flags}
}

// Register adds the search command to the application.
func (cmd *SearchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "search",
		Usage:     "Render the search results of a fixture",
		UsageText: "msgview search --fixture <path> [--now <time>] [--json]",
		Description: `Formats each search result of a fixture: a header naming sender and
recipient, the matched snippet with highlights and mentions, the sender's
badge and a relative date.

Snippets that do not agree with their message body are logged as warnings
and rendered as well as possible.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "fixture",
				Usage:       "path to the fixture YAML",
				Sources:     cli.EnvVars("MSGVIEW_FIXTURE"),
				Destination: &cmd.fixture,
			},
			&cli.StringFlag{
				Name:        "now",
				Usage:       "reference time for relative dates (RFC 3339)",
				Destination: &cmd.now,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output results as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

type resultJSON struct {
	ID             string        `json:"id"`
	ConversationID string        `json:"conversation_id"`
	Header         string        `json:"header"`
	Body           []segmentJSON `json:"body"`
	Badge          string        `json:"badge,omitempty"`
	Date           string        `json:"date,omitempty"`
	NoteToSelf     bool          `json:"note_to_self,omitempty"`
}

func (cmd *SearchCmd) run(ctx context.Context, c *cli.Command) error {
	doc, err := loadFixture(cmd.fixture)
	if err != nil {
		return err
	}
	now, err := parseNow(cmd.now)
	if err != nil {
		return err
	}

	ctx = logging.WithConversationID(ctx, doc.Conversation)
	out := c.Root().Writer
	width := cmd.flags.outputWidth()

	for _, r := range doc.Results {
		item := search.Format(ctx, cmd.flags.Catalog, r.Result(), search.FirstBadge, now)
		if item.Empty {
			continue
		}

		if cmd.jsonOutput {
			rj := resultJSON{
				ID:             item.ID,
				ConversationID: item.ConversationID,
				Header:         body.PlainText(item.Header),
				Body:           segmentsJSON(item.Body.Segments),
				Date:           item.Date,
				NoteToSelf:     item.IsNoteToSelf,
			}
			if item.Badge != nil {
				rj.Badge = item.Badge.Name
			}
			if err := iojson.WriteLine(out, rj); err != nil {
				return err
			}
			continue
		}

		header := components.RenderSegments(item.Header, components.NoFocus)
		if item.Badge != nil {
			header += " " + styles.BadgeStyle.Render(styles.IconBadge+" "+item.Badge.Name)
		}
		if item.Date != "" {
			header += styles.DividerStyle.Render(" · ") + styles.ResultDateStyle.Render(item.Date)
		}
		_, _ = fmt.Fprintln(out, ansi.Truncate(header, width, "…"))
		_, _ = fmt.Fprintln(out, "  "+ansi.Truncate(components.RenderSegments(item.Body.Segments, components.NoFocus), width-2, "…"))
	}
	return nil
}
