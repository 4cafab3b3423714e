// Package config loads default flag values from a TOML file.
//
// Keys are flag names, with dashes or underscores:
//
//	encoding = "iso-8859-2"
//	log_level = "debug"
//
//	[stats]
//	non_blank = true
//
// Values given on the command line win over the file.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the default configuration file name.
const FileName = "config.toml"

// DefaultPath returns $XDG_CONFIG_HOME/corpusprep/config.toml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset. It returns "" when no home
// directory can be found.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "corpusprep", FileName)
}

// TOML is a kong.ConfigurationLoader reading flag values from a TOML document.
// Flags of a subcommand are looked up in the table named after the command
// first, then at the top level.
func TOML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if table, ok := values[parent.Command.Name].(map[string]any); ok {
				if raw, ok := lookup(table, flag.Name); ok {
					return raw, nil
				}
			}
		}

		raw, _ := lookup(values, flag.Name)
		return raw, nil
	}

	return f, nil
}

func lookup(values map[string]any, name string) (any, bool) {
	if raw, ok := values[name]; ok {
		return raw, true
	}
	raw, ok := values[strings.ReplaceAll(name, "-", "_")]
	return raw, ok
}
