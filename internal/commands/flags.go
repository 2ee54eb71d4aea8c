package commands

import (
	"github.com/colonyops/msgview/internal/core/config"
	"github.com/colonyops/msgview/internal/core/i18n"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Locale     string
	Theme      string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Catalog is the negotiated message catalog for Config.Locale
	Catalog *i18n.Catalog
}
