package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/msgview/internal/core/styles"
	"github.com/colonyops/msgview/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "msgview config validate [options]",
				Description: "Validates the configuration file, checking the theme, locale, catalog patterns and key bindings.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationJSON struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)

	var problems []string
	if err != nil {
		problems = strings.Split(strings.TrimSpace(err.Error()), "\n")
	}

	out := c.Root().Writer
	if cmd.format == "json" {
		if werr := iojson.Write(out, validationJSON{Valid: err == nil, Errors: problems}); werr != nil {
			return werr
		}
	} else {
		for _, p := range problems {
			_, _ = fmt.Fprintln(out, styles.ErrorStyle.Render("✗ "+p))
		}
		if err == nil {
			_, _ = fmt.Fprintln(out, styles.StatusStyle.Render("✓ Configuration is valid"))
		}
	}

	if err != nil {
		return cli.Exit(fmt.Sprintf("%d error(s) found", len(problems)), 1)
	}
	return nil
}
