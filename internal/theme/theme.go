// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package theme

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/conlog/internal/color"
	"github.com/matt-FFFFFF/conlog/internal/ctxlog"
	"github.com/spf13/afero"
)

var (
	// ErrReadTheme is returned when the theme file cannot be read.
	ErrReadTheme = errors.New("failed to read theme file")
	// ErrParseTheme is returned when the theme file is not valid YAML.
	ErrParseTheme = errors.New("failed to parse theme file")
	// ErrUnknownColor is returned when a color name is not recognized.
	ErrUnknownColor = errors.New("unknown color name")
)

// colorNames maps the YAML color vocabulary to ANSI foreground codes.
var colorNames = map[string]color.Code{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"hi-black":   color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
}

// Theme is a set of severity-to-color overrides loaded from YAML:
//
//	colors:
//	  warning: hi-yellow
//	  error: hi-red
//
// Level names follow the classic five (warn and warning are synonyms);
// color names are the eight ANSI foregrounds plus their hi- variants.
type Theme struct {
	Colors map[string]string `yaml:"colors"`
}

// Load reads and validates a theme file. All unknown level and color
// names are reported together, not just the first one found.
func Load(fs afero.Fs, path string) (*Theme, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Join(ErrReadTheme, err)
	}

	t := &Theme{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, errors.Join(ErrParseTheme, err)
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Theme) validate() error {
	var result *multierror.Error

	for levelName, colorName := range t.Colors {
		if _, err := ctxlog.ParseLevel(levelName); err != nil {
			result = multierror.Append(result, fmt.Errorf("%w: %q", err, levelName))
		}

		if _, ok := colorNames[colorName]; !ok {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrUnknownColor, colorName))
		}
	}

	return result.ErrorOrNil()
}

// LevelColors converts the theme into the handler's severity-to-color
// map. Severities the theme does not mention keep their built-in color;
// the result always covers the classic five.
func (t *Theme) LevelColors() map[slog.Level]color.Code {
	out := make(map[slog.Level]color.Code, len(ctxlog.DefaultLevelColors))
	for level, code := range ctxlog.DefaultLevelColors {
		out[level] = code
	}

	for levelName, colorName := range t.Colors {
		level, err := ctxlog.ParseLevel(levelName)
		if err != nil {
			continue // validate() already rejected this
		}

		out[level] = colorNames[colorName]
	}

	return out
}
