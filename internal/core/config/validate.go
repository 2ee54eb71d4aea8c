package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"golang.org/x/text/language"

	"github.com/colonyops/msgview/internal/core/i18n"
)

// ValidateDeep performs comprehensive validation of the configuration
// including the config file itself, the locale and the extra catalogs. The
// configPath argument specifies the config file location to validate (empty
// string skips the config file check). This calls Validate() first for
// basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("locale", c.Locale, validLocale),
		c.validateCatalogs(),
		c.validateKeys(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validLocale accepts an empty locale, a POSIX LANG value or an
// Accept-Language list.
func validLocale(locale string) error {
	if locale == "" || locale == "C" || locale == "POSIX" {
		return nil
	}
	if _, _, err := language.ParseAcceptLanguage(posixToBCP47(locale)); err != nil {
		return fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return nil
}

// posixToBCP47 turns values like en_US.UTF-8 into en-US. Accept-Language
// lists pass through unchanged so their q-values survive.
func posixToBCP47(locale string) string {
	if strings.ContainsAny(locale, ",;") {
		return locale
	}
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// LanguageTag returns the configured locale in BCP 47 form.
func (c *Config) LanguageTag() string {
	if c.Locale == "C" || c.Locale == "POSIX" {
		return ""
	}
	return posixToBCP47(c.Locale)
}

func (c *Config) validateCatalogs() error {
	var errs criterio.FieldErrorsBuilder

	valid := true
	for i, pattern := range c.Catalogs {
		if !doublestar.ValidatePathPattern(pattern) {
			errs = errs.Append(fmt.Sprintf("catalogs[%d]", i), fmt.Errorf("invalid pattern %q", pattern))
			valid = false
		}
	}

	if valid && len(c.Catalogs) > 0 {
		if _, err := i18n.Load(c.LanguageTag(), c.Catalogs); err != nil {
			errs = errs.Append("catalogs", err)
		}
	}

	return errs.ToError()
}

func (c *Config) validateKeys() error {
	var errs criterio.FieldErrorsBuilder

	seen := map[string]string{}
	for _, action := range []struct {
		name string
		keys []string
	}{
		{"activate", c.TUI.Keys.Activate},
		{"next_focus", c.TUI.Keys.NextFocus},
		{"prev_focus", c.TUI.Keys.PrevFocus},
		{"next_tab", c.TUI.Keys.NextTab},
		{"quit", c.TUI.Keys.Quit},
	} {
		for _, k := range action.keys {
			if other, ok := seen[k]; ok && other != action.name {
				errs = errs.Append("tui.keys."+action.name, fmt.Errorf("key %q is already bound to %s", k, other))
				continue
			}
			seen[k] = action.name
		}
	}

	return errs.ToError()
}
