// seehuhn.de/go/quadrant - single-quadrant graph rendering
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

// Command quadplot renders a graph scene to an image file.
//
// The scene is read from a TOML or YAML file; without -in a built-in demo
// scene is drawn.  The output format is chosen by the extension of the
// output file name:
//
//	.png   anti-aliased raster image
//	.pdf   vector PDF (see -text)
//	.svg   vector SVG with embedded fonts
//	.json  the display list, for debugging
//
// Use -v to report written files and -vv to also log ignored updates.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"

	"seehuhn.de/go/quadrant"
	"seehuhn.de/go/quadrant/config"
)

// Config holds the command line options.
type Config struct {
	// scene file (.toml, .yaml), empty for the demo scene
	In string

	// output file (.png, .pdf, .svg, .json)
	Out string `default:"graph.png"`

	// pixel density of PNG output
	Scale float64 `default:"1"`

	// write PDF output with tick and layer labels
	Text bool

	// write the effective scene to this file (.toml, .yaml)
	Dump string
}

func main() {
	opts := cli.DefaultOptions("quadplot", "Quadplot renders a single-quadrant graph scene to an image file.")
	opts.DefaultFiles = nil
	opts.PrintSuccess = false
	cli.Run(opts, &Config{}, Render)
}

// Render draws the scene and writes the output file.
func Render(c *Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.UserLevel}))
	opts := options{
		output: c.Out,
		scale:  c.Scale,
		text:   c.Text,
		dump:   c.Dump,
		logger: logger,
	}
	if err := run(c.In, opts); err != nil {
		return err
	}
	logger.Info("graph written", "file", c.Out)
	return nil
}

type options struct {
	output string
	scale  float64
	text   bool
	dump   string
	logger *slog.Logger
}

// run loads the scene, builds the graph and writes the output files.
func run(input string, opts options) error {
	var scene *config.Scene
	if input == "" {
		scene = demoScene()
	} else {
		var err error
		scene, err = config.Load(input)
		if err != nil {
			return err
		}
	}

	if opts.dump != "" {
		if err := scene.Save(opts.dump); err != nil {
			return err
		}
	}

	format, err := outputFormat(opts.output)
	if err != nil {
		return err
	}
	q, err := scene.Build(quadrant.WithLogger(opts.logger))
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return write(q, format, opts)
}
