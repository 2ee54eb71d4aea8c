package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/tui/components"
	"github.com/colonyops/msgview/pkg/iojson"
)

// BodyInput is the document accepted by the body command on stdin or -f.
type BodyInput struct {
	Text   string       `json:"text"   yaml:"text"`
	Author string       `json:"author" yaml:"author"`
	Ranges []body.Range `json:"ranges" yaml:"ranges"`
}

type BodyCmd struct {
	flags *Flags
	fr    *iojson.FileReader[BodyInput]

	author       string
	maxLength    int
	pending      bool
	downloadable bool
	jsonOutput   bool
}

// NewBodyCmd creates a new body command.
func NewBodyCmd(flags *Flags) *BodyCmd {
	return &BodyCmd{flags: flags, fr: &iojson.FileReader[BodyInput]{}}
}

// Register adds the body command to the application.
func (cmd *BodyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "body",
		Usage:     "Render a message body",
		UsageText: "msgview body [options] [text...]",
		Description: `Renders message text the way the conversation view shows it: mentions,
emoji sizing, links and line breaks, followed by any pending or download indicator.

Text is taken from the arguments. Without arguments a document is read from
-f (JSON, or YAML for .yaml/.yml files) or as JSON from stdin:

  {"text": "hi @Bob", "author": "Ann",
   "ranges": [{"start": 3, "length": 4, "mention_id": "bob", "replacement_text": "Bob"}]}

Range offsets are UTF-16 code units.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
			&cli.StringFlag{
				Name:        "author",
				Usage:       "author name shown before the text",
				Destination: &cmd.author,
			},
			&cli.IntFlag{
				Name:        "max-length",
				Usage:       "truncate to this many graphemes (overrides body.max_length)",
				Value:       -1,
				Destination: &cmd.maxLength,
			},
			&cli.BoolFlag{
				Name:        "pending",
				Usage:       "mark the long-text attachment as downloading",
				Destination: &cmd.pending,
			},
			&cli.BoolFlag{
				Name:        "downloadable",
				Usage:       "mark the long-text attachment as downloadable",
				Destination: &cmd.downloadable,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output segments as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *BodyCmd) run(_ context.Context, c *cli.Command) error {
	input, err := cmd.input(c)
	if err != nil {
		return err
	}

	b := body.Render(input.Text, input.Ranges, cmd.options(input))
	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.Write(out, bodyJSON{
			Author:      segmentsJSON(b.Author),
			Segments:    segmentsJSON(b.Segments),
			Affordances: affordanceLabels(cmd.flags, b.Affordances),
			Size:        b.Size.String(),
			Truncated:   b.Truncated,
		})
	}

	_, err = fmt.Fprintln(out, components.RenderBody(cmd.flags.Catalog, b, components.Unfocused, cmd.flags.outputWidth()))
	return err
}

func (cmd *BodyCmd) input(c *cli.Command) (BodyInput, error) {
	if c.Args().Len() > 0 {
		return BodyInput{Text: strings.Join(c.Args().Slice(), " ")}, nil
	}
	input, err := cmd.fr.Read()
	if err != nil {
		return input, fmt.Errorf("read body: %w", err)
	}
	return input, nil
}

func (cmd *BodyCmd) options(input BodyInput) body.Options {
	cfg := cmd.flags.Config.Body
	opts := body.Options{
		DisableLinks:              cfg.DisableLinks,
		DisableUniformEmojiSizing: cfg.DisableJumbomoji,
		Author:                    input.Author,
		MaxLength:                 cfg.MaxLength,
	}
	if cmd.author != "" {
		opts.Author = cmd.author
	}
	if cmd.maxLength >= 0 {
		opts.MaxLength = cmd.maxLength
	}
	if cmd.pending || cmd.downloadable {
		opts.Attachment = &body.PendingAttachment{Pending: cmd.pending, Downloadable: cmd.downloadable}
		// Nothing can be downloaded from the command line; the callback only
		// makes the download action visible.
		opts.KickOffDownload = func() {}
	}
	return opts
}

type bodyJSON struct {
	Author      []segmentJSON `json:"author,omitempty"`
	Segments    []segmentJSON `json:"segments"`
	Affordances []string      `json:"affordances,omitempty"`
	Size        string        `json:"size,omitempty"`
	Truncated   bool          `json:"truncated,omitempty"`
}

func affordanceLabels(flags *Flags, as []body.Affordance) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		if a.LabelKey == "" {
			out = append(out, a.Label())
			continue
		}
		out = append(out, flags.Catalog.Lookup(a.LabelKey, nil))
	}
	return out
}
