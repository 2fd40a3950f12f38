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

// Command heatmap draws a coordinate heatmap over a grid map image.
//
// The input text is a sequence of "(x, y) count" segments separated by
// semicolons. Each record colours one 16×16 pixel grid cell, from green
// for rare positions to red for the most frequent one.
//
// Usage:
//
//	heatmap [flags] < positions.txt
//	heatmap --data "(1, 2) 3;(4, 5) 10" --map office.png --out overlay.png
package main

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/heatmap"
	"seehuhn.de/go/heatmap/canvas"
	"seehuhn.de/go/heatmap/internal/config"
	"seehuhn.de/go/heatmap/internal/logging"
	"seehuhn.de/go/heatmap/term"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "heatmap:", err)
		os.Exit(2)
	}

	logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("heatmap failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	text, err := readInput(cfg, stdin)
	if err != nil {
		return err
	}

	records := heatmap.Parse(text)
	if len(records) == 0 {
		return heatmap.ErrEmptyInput
	}
	slog.Info("parsed input", "records", len(records))

	if cfg.Table {
		if err := heatmap.WriteTable(stdout, records); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
	}

	if cfg.Out != "" {
		img, err := baseImage(cfg, records)
		if err != nil {
			return err
		}
		c := canvas.New(img)
		b := img.Bounds()
		c.CTM = matrix.Scale(heatmap.CellSize, heatmap.CellSize).
			Translate(float64(b.Min.X+cfg.OriginX), float64(b.Min.Y+cfg.OriginY))

		gen := &heatmap.Generator{
			Surface: c,
			Once:    true,
			Skipped: func(index int, segment string) {
				slog.Debug("skipping malformed segment", "index", index, "segment", segment)
			},
		}
		if _, err := gen.Generate(text); err != nil {
			return err
		}
		if err := writePNG(cfg.Out, img); err != nil {
			return err
		}
		slog.Info("wrote heatmap", "file", cfg.Out, "cells", c.Cells(),
			"width", b.Dx(), "height", b.Dy())
	}

	if cfg.Preview {
		if err := preview(records); err != nil {
			return fmt.Errorf("terminal preview: %w", err)
		}
	}
	return nil
}

func readInput(cfg *config.Config, stdin io.Reader) (string, error) {
	switch {
	case cfg.Data != "":
		return cfg.Data, nil
	case cfg.Input != "":
		data, err := os.ReadFile(cfg.Input)
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}
}

// baseImage returns the image the heatmap is drawn on: the decoded map
// if one is configured, otherwise a transparent image covering the
// grid cells used by records.
func baseImage(cfg *config.Config, records []heatmap.Record) (draw.Image, error) {
	if cfg.Map == "" {
		img, err := canvas.Blank(records, cfg.OriginX, cfg.OriginY)
		if err != nil {
			return nil, fmt.Errorf("%w (use --map to draw onto a fixed size image)", err)
		}
		return img, nil
	}

	fd, err := os.Open(cfg.Map)
	if err != nil {
		return nil, fmt.Errorf("opening map: %w", err)
	}
	defer fd.Close()

	img, format, err := canvas.DecodeMap(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Map, err)
	}
	b := img.Bounds()
	slog.Debug("loaded map", "file", cfg.Map, "format", format,
		"width", b.Dx(), "height", b.Dy())
	return img, nil
}

func writePNG(fname string, img image.Image) error {
	fd, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := png.Encode(fd, img); err != nil {
		fd.Close()
		return fmt.Errorf("encoding %s: %w", fname, err)
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", fname, err)
	}
	return nil
}

func preview(records []heatmap.Record) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()
	return term.Preview(scr, records)
}
