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

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/quadrant"
	"seehuhn.de/go/quadrant/config"
	"seehuhn.de/go/quadrant/draw"
	"seehuhn.de/go/quadrant/pdfsink"
	"seehuhn.de/go/quadrant/raster"
	"seehuhn.de/go/quadrant/vecsink"
)

type format int

const (
	formatPNG format = iota
	formatPDF
	formatSVG
	formatJSON
)

func outputFormat(fileName string) (format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".png":
		return formatPNG, nil
	case ".pdf":
		return formatPDF, nil
	case ".svg":
		return formatSVG, nil
	case ".json":
		return formatJSON, nil
	default:
		return 0, fmt.Errorf("%s: unsupported output format", fileName)
	}
}

// write paints q in the given format and stores the result in
// opts.output.
func write(q *quadrant.Quadrant, f format, opts options) error {
	width, height := q.Size()
	switch f {
	case formatPNG:
		c := raster.NewCanvas(int(math.Ceil(width)), int(math.Ceil(height)), opts.scale)
		q.Paint(c)
		return writeFile(opts.output, func(w io.Writer) error {
			return png.Encode(w, c.Image())
		})
	case formatPDF:
		if opts.text {
			return writeVector(q, width, height, vecsink.PDF, opts.output)
		}
		page, err := pdfsink.Create(opts.output, width, height)
		if err != nil {
			return fmt.Errorf("failed to create PDF: %w", err)
		}
		q.Paint(page)
		return page.Close()
	case formatSVG:
		return writeVector(q, width, height, vecsink.SVG, opts.output)
	case formatJSON:
		rec := &draw.Recorder{}
		q.Paint(rec)
		return writeFile(opts.output, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(exportOps(width, height, rec.Ops))
		})
	}
	return fmt.Errorf("unknown output format %d", f)
}

func writeVector(q *quadrant.Quadrant, width, height float64, f vecsink.Format, fileName string) error {
	s := vecsink.New(width, height)
	q.Paint(s)
	return writeFile(fileName, func(w io.Writer) error {
		return s.WriteTo(w, f)
	})
}

func writeFile(fileName string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", fileName, err)
	}
	return w.Flush()
}

type jsonDisplayList struct {
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Ops    []jsonOp `json:"ops"`
}

type jsonOp struct {
	Op     string      `json:"op"`
	Args   []float64   `json:"args,omitempty"`
	Pts    [][]float64 `json:"pts,omitempty"`
	Color  string      `json:"color,omitempty"`
	Width  float64     `json:"width,omitempty"`
	Alpha  float64     `json:"alpha,omitempty"`
	Text   string      `json:"text,omitempty"`
	Font   string      `json:"font,omitempty"`
	Size   float64     `json:"size,omitempty"`
	Anchor []float64   `json:"anchor,omitempty"`
}

// exportOps converts a display list into a form which is easy to read
// from other languages.
func exportOps(width, height float64, ops []draw.Op) jsonDisplayList {
	out := jsonDisplayList{Width: width, Height: height, Ops: make([]jsonOp, 0, len(ops))}
	for _, op := range ops {
		j := jsonOp{Op: op.Kind.String()}
		switch op.Kind {
		case draw.OpMoveTo, draw.OpLineTo:
			j.Args = op.Args[:2]
		case draw.OpCurveTo:
			j.Args = op.Args[:4]
		case draw.OpDrawCircle:
			j.Args = op.Args[:3]
		case draw.OpSetStroke:
			j.Color = hexColor(op.Stroke.Color)
			j.Width = op.Stroke.Width
			j.Alpha = op.Stroke.Alpha
		case draw.OpSetFill:
			j.Color = hexColor(op.Fill)
			j.Alpha = op.Alpha
		case draw.OpFillPolygon:
			j.Pts = make([][]float64, len(op.Points))
			for i, pt := range op.Points {
				j.Pts[i] = []float64{pt.X, pt.Y}
			}
		case draw.OpDrawText:
			j.Args = op.Args[:2]
			j.Text = op.Text
			j.Font = op.Style.Font
			j.Size = op.Style.Size
			j.Color = hexColor(op.Style.Color)
			j.Anchor = []float64{op.Anchor.X, op.Anchor.Y}
		}
		out.Ops = append(out.Ops, j)
	}
	return out
}

func hexColor(c color.Color) string {
	n := draw.Fade(c, 1)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// demoScene shows two functions on [0,10]×[0,10].
func demoScene() *config.Scene {
	s := config.Default()
	s.Width, s.Height = 400, 300
	s.Bounds = config.Bounds{Left: 0, Top: 10, Right: 10, Bottom: 0}
	s.X.Major, s.X.Minor = 2, 1
	s.Y.Major, s.Y.Minor = 2, 0.5

	var xs, square, root []float64
	for i := range 21 {
		x := float64(i) / 2
		xs = append(xs, x)
		square = append(square, x*x/10)
		root = append(root, 3*math.Sqrt(x))
	}
	s.Layers = []config.Layer{
		{Name: "square", Color: "#1f77b4", Thickness: 2, X: xs, Y: square},
		{Name: "root", Color: "#d62728", Style: "dashed", Dots: true, X: xs, Y: root},
	}
	s.Labels = []config.LabelLayer{{
		Name:   "notes",
		Color:  "#404040",
		Points: []config.Point{{X: 6.2, Y: 3.5, Text: "x²/10"}, {X: 7, Y: 8.6, Text: "3√x"}},
	}}
	return s
}
