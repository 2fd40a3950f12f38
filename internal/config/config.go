// seehuhn.de/go/heatmap - coordinate heatmap overlays
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads the settings of the heatmap command from flags,
// environment variables and an optional configuration file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to the environment variables read by [Load],
// so that HEATMAP_ORIGIN_X sets origin-x and HEATMAP_LOG_LEVEL sets
// log.level.
const EnvPrefix = "HEATMAP"

// Config holds the settings of the heatmap command.
type Config struct {
	// Data is the input text given inline. If empty, Input is read.
	Data string `mapstructure:"data"`

	// Input names a file holding the input text. If both Data and Input
	// are empty, the text is read from standard input.
	Input string `mapstructure:"input"`

	// Map names the base map image. If empty, the overlay is drawn on a
	// transparent image just large enough for the data.
	Map string `mapstructure:"map"`

	// Out names the PNG file to write.
	Out string `mapstructure:"out"`

	// OriginX and OriginY give the pixel position of grid cell (0, 0)
	// on the base map.
	OriginX int `mapstructure:"origin-x"`
	OriginY int `mapstructure:"origin-y"`

	Table   bool `mapstructure:"table"`
	Preview bool `mapstructure:"preview"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig selects the level and format of the log output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load parses the command line arguments args (without the program
// name) and merges them with the environment and the configuration
// file. Flags take precedence over environment variables, which take
// precedence over the file. If args contains -h or --help, the usage
// is printed and [pflag.ErrHelp] is returned.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("heatmap", pflag.ContinueOnError)
	fs.String("data", "", "input text, e.g. \"(1, 2) 3;(4, 5) 10\"")
	fs.StringP("input", "i", "", "read the input text from `file`")
	fs.StringP("map", "m", "", "base map image `file`")
	fs.StringP("out", "o", "heatmap.png", "output PNG `file`")
	fs.Int("origin-x", 0, "horizontal pixel offset of the grid on the map")
	fs.Int("origin-y", 0, "vertical pixel offset of the grid on the map")
	fs.Bool("table", false, "print the count table to stdout")
	fs.Bool("preview", false, "show the heatmap in the terminal")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "text", "log format (text, json)")
	fs.StringP("config", "c", "", "configuration `file` (default ./heatmap.yaml)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	v := viper.New()

	// Defaults
	v.SetDefault("out", "heatmap.png")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	for _, key := range []string{"data", "input", "map", "out", "origin-x", "origin-y", "table", "preview"} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return nil, err
		}
	}
	if err := v.BindPFlag("log.level", fs.Lookup("log-level")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("log.format", fs.Lookup("log-format")); err != nil {
		return nil, err
	}

	// Config file (optional unless named explicitly)
	if file, _ := fs.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
	} else {
		v.SetConfigName("heatmap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	// Environment variables: HEATMAP_LOG_LEVEL → log.level
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the settings are consistent.
func (c *Config) Validate() error {
	var errs []string

	if c.Data != "" && c.Input != "" {
		errs = append(errs, "data and input are mutually exclusive")
	}
	if c.Out == "" && !c.Table && !c.Preview {
		errs = append(errs, "out is required unless table or preview is set")
	}
	if c.OriginX < 0 || c.OriginY < 0 {
		errs = append(errs, fmt.Sprintf("origin must not be negative, got (%d, %d)", c.OriginX, c.OriginY))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
