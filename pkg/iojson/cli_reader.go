package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// ErrNoInput is returned when there is neither a file nor piped stdin.
var ErrNoInput = errors.New("no input provided (stdin is a terminal); use -f or pipe a document")

// FileReader reads a document of type T from the file named by its flag,
// or from stdin when the flag is unset. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
type FileReader[T any] struct {
	fileFlagValue string
	stdin         io.Reader
}

// Flag is the -f/--file flag that names the input file.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to a JSON or YAML file (reads JSON from stdin if not provided)",
		TakesFile:   true,
		Destination: &fr.fileFlagValue,
	}
}

func (fr *FileReader[T]) Read() (T, error) {
	var input T

	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if isYAML(fr.fileFlagValue) {
			if err := yaml.NewDecoder(f).Decode(&input); err != nil {
				return input, fmt.Errorf("decode YAML: %w", err)
			}
			return input, nil
		}
		return input, decodeJSON(f, &input)
	}

	stdin := fr.stdin
	if stdin == nil {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return input, ErrNoInput
		}
		stdin = os.Stdin
	}
	return input, decodeJSON(stdin, &input)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func decodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	return nil
}
