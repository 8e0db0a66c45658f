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

// Package config reads scene descriptions and applies them to a graph.
//
// A scene gives the data bounds and pixel size of the drawing box, the tick
// increments, the frame properties and any number of function and label
// layers together with their data.  Scenes are stored as TOML or YAML
// files; the format is chosen by the file name extension.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tdewolff/canvas"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/quadrant"
	"seehuhn.de/go/quadrant/axis"
	"seehuhn.de/go/quadrant/stroke"
)

// Scene is the description of a graph.
type Scene struct {
	// Width and Height give the size of the drawing box in pixels.
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`

	Bounds Bounds `toml:"bounds" yaml:"bounds"`
	X      Axis   `toml:"x" yaml:"x"`
	Y      Axis   `toml:"y" yaml:"y"`
	Grid   Grid   `toml:"grid" yaml:"grid"`

	TicLabels Text    `toml:"tic_labels" yaml:"tic_labels"`
	Decimals  int     `toml:"decimals" yaml:"decimals"`
	Margins   Margins `toml:"margins" yaml:"margins"`

	Layers []Layer      `toml:"layers" yaml:"layers"`
	Labels []LabelLayer `toml:"labels" yaml:"labels"`
}

// Bounds are the data values at the edges of the drawing box.
type Bounds struct {
	Left   float64 `toml:"left" yaml:"left"`
	Top    float64 `toml:"top" yaml:"top"`
	Right  float64 `toml:"right" yaml:"right"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
}

// Margins are the distances between the drawing box and the edges of the
// output, in pixels.
type Margins struct {
	Left   float64 `toml:"left" yaml:"left"`
	Top    float64 `toml:"top" yaml:"top"`
	Right  float64 `toml:"right" yaml:"right"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
}

// Axis describes the ticks and the appearance of one axis.
type Axis struct {
	Major     float64 `toml:"major" yaml:"major"`
	Minor     float64 `toml:"minor" yaml:"minor"`
	Thickness float64 `toml:"thickness" yaml:"thickness"`
	Color     string  `toml:"color" yaml:"color"`
	Alpha     float64 `toml:"alpha" yaml:"alpha"`
	Arrows    bool    `toml:"arrows" yaml:"arrows"`
	MinorTics bool    `toml:"minor_tics" yaml:"minor_tics"`
}

// Grid describes the grid lines.
type Grid struct {
	Show      bool          `toml:"show" yaml:"show"`
	Thickness float64       `toml:"thickness" yaml:"thickness"`
	Color     string        `toml:"color" yaml:"color"`
	Alpha     float64       `toml:"alpha" yaml:"alpha"`
	Style     string        `toml:"style" yaml:"style"`
	Pattern   stroke.Params `toml:"pattern" yaml:"pattern"`
}

// Text describes a font.
type Text struct {
	Font  string  `toml:"font" yaml:"font"`
	Size  float64 `toml:"size" yaml:"size"`
	Color string  `toml:"color" yaml:"color"`
}

// Layer is a function layer together with its data.
//
// Layers are read from lists, where no defaults can be filled in before
// decoding.  Zero values therefore select the defaults of
// [quadrant.DefaultLayerProps], and the pointer fields distinguish an
// explicit false or zero from a missing value.
type Layer struct {
	Name      string        `toml:"name" yaml:"name"`
	Thickness float64       `toml:"thickness" yaml:"thickness"`
	Color     string        `toml:"color" yaml:"color"`
	Alpha     *float64      `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
	Line      *bool         `toml:"line,omitempty" yaml:"line,omitempty"`
	Dots      bool          `toml:"dots" yaml:"dots"`
	DotRadius float64       `toml:"dot_radius" yaml:"dot_radius"`
	Style     string        `toml:"style" yaml:"style"`
	Pattern   stroke.Params `toml:"pattern" yaml:"pattern"`

	X []float64 `toml:"x" yaml:"x"`
	Y []float64 `toml:"y" yaml:"y"`
}

// LabelLayer is a label layer together with its labels.
type LabelLayer struct {
	Name   string  `toml:"name" yaml:"name"`
	Font   string  `toml:"font" yaml:"font"`
	Size   float64 `toml:"size" yaml:"size"`
	Color  string  `toml:"color" yaml:"color"`
	Points []Point `toml:"points" yaml:"points"`
}

// Point is a label at a data position.
type Point struct {
	X    float64 `toml:"x" yaml:"x"`
	Y    float64 `toml:"y" yaml:"y"`
	Text string  `toml:"text" yaml:"text"`
}

// Format is a scene file format.
type Format int

// These are the supported scene formats.
const (
	TOML Format = iota
	YAML
)

var (
	// ErrFormat indicates an unsupported scene file format.
	ErrFormat = errors.New("unsupported scene format")

	// ErrInvalid indicates a scene which cannot be drawn.
	ErrInvalid = errors.New("invalid scene")
)

// FormatOf returns the scene format implied by the extension of fileName.
func FormatOf(fileName string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%s: %w", fileName, ErrFormat)
	}
}

// Default returns a scene with the frame properties of a new graph, a
// 400×300 pixel box and the unit square as bounds.
func Default() *Scene {
	props := quadrant.DefaultDrawProps()
	axisOf := func(a quadrant.AxisProps) Axis {
		return Axis{
			Thickness: a.Thickness,
			Color:     hexColor(a.Color),
			Alpha:     a.Alpha,
			Arrows:    a.Arrows,
			MinorTics: a.MinorTics,
		}
	}
	return &Scene{
		Width:  400,
		Height: 300,
		Bounds: Bounds{Left: 0, Top: 1, Right: 1, Bottom: 0},
		X:      axisOf(props.XAxis),
		Y:      axisOf(props.YAxis),
		Grid: Grid{
			Show:      props.ShowGrid,
			Thickness: props.GridThickness,
			Color:     hexColor(props.GridColor),
			Alpha:     props.GridAlpha,
			Style:     string(props.GridStyle),
		},
		TicLabels: Text{
			Font:  props.TicLabel.Font,
			Size:  props.TicLabel.Size,
			Color: hexColor(props.TicLabel.Color),
		},
		Decimals: props.Decimals,
		Margins: Margins{
			Left:   props.OffsetLeft,
			Top:    props.OffsetTop,
			Right:  props.OffsetRight,
			Bottom: props.OffsetBottom,
		},
	}
}

// Load reads a scene file.  Values missing from the file keep the values
// of [Default].
func Load(fileName string) (*Scene, error) {
	format, err := FormatOf(fileName)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return s, nil
}

// Decode reads a scene in the given format.  Unknown keys are an error.
func Decode(r io.Reader, format Format) (*Scene, error) {
	s := Default()
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return nil, fmt.Errorf("failed to parse scene: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse scene: %w", err)
		}
	default:
		return nil, ErrFormat
	}
	return s, nil
}

// Encode writes the scene in the given format.
func (s *Scene) Encode(w io.Writer, format Format) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(s)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ErrFormat
	}
}

// Save writes the scene to a file, in the format implied by its name.
func (s *Scene) Save(fileName string) error {
	format, err := FormatOf(fileName)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := s.Encode(&buf, format); err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := os.WriteFile(fileName, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}
	return nil
}

// Validate checks the parts of the scene which the graph would silently
// ignore.
func (s *Scene) Validate() error {
	b := s.Bounds
	if !finite(b.Left, b.Top, b.Right, b.Bottom, s.Width, s.Height) {
		return fmt.Errorf("%w: bounds and size must be finite", ErrInvalid)
	}
	if b.Left < 0 || b.Bottom < 0 || b.Right <= b.Left || b.Top <= b.Bottom {
		return fmt.Errorf("%w: bounds [%g,%g]×[%g,%g] do not span part of the first quadrant",
			ErrInvalid, b.Left, b.Right, b.Bottom, b.Top)
	}
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("%w: box size %g×%g", ErrInvalid, s.Width, s.Height)
	}
	if s.Decimals < 0 {
		return fmt.Errorf("%w: negative number of decimals", ErrInvalid)
	}

	seen := make(map[string]bool)
	for i, l := range s.Layers {
		if l.Name == "" {
			return fmt.Errorf("%w: layer %d has no name", ErrInvalid, i+1)
		}
		if seen[l.Name] {
			return fmt.Errorf("%w: duplicate layer %q", ErrInvalid, l.Name)
		}
		seen[l.Name] = true
		if len(l.X) != len(l.Y) {
			return fmt.Errorf("%w: layer %q has %d x values and %d y values",
				ErrInvalid, l.Name, len(l.X), len(l.Y))
		}
		if !finite(l.X...) || !finite(l.Y...) {
			return fmt.Errorf("%w: layer %q has non-finite data", ErrInvalid, l.Name)
		}
	}
	clear(seen)
	for i, l := range s.Labels {
		if l.Name == "" {
			return fmt.Errorf("%w: label layer %d has no name", ErrInvalid, i+1)
		}
		if seen[l.Name] {
			return fmt.Errorf("%w: duplicate label layer %q", ErrInvalid, l.Name)
		}
		seen[l.Name] = true
		for _, pt := range l.Points {
			if !finite(pt.X, pt.Y) {
				return fmt.Errorf("%w: label %q in layer %q has a non-finite position",
					ErrInvalid, pt.Text, l.Name)
			}
		}
	}
	return nil
}

// Build returns a new graph showing the scene.
func (s *Scene) Build(opts ...quadrant.Option) (*quadrant.Quadrant, error) {
	q := quadrant.New(opts...)
	if err := s.Apply(q); err != nil {
		return nil, err
	}
	return q, nil
}

// Apply validates the scene and transfers it to q.  Layers of q which are
// not mentioned in the scene are left alone.
func (s *Scene) Apply(q *quadrant.Quadrant) error {
	if err := s.Validate(); err != nil {
		return err
	}
	props, err := s.drawProps()
	if err != nil {
		return err
	}

	b := s.Bounds
	q.SetGraphBounds(b.Left, b.Top, b.Right, b.Bottom, s.Width, s.Height)
	q.SetIncrements(axis.Horizontal, s.X.Major, s.X.Minor)
	q.SetIncrements(axis.Vertical, s.Y.Major, s.Y.Minor)
	q.SetDrawProps(props)

	for _, l := range s.Layers {
		lp, err := l.props()
		if err != nil {
			return fmt.Errorf("layer %q: %w", l.Name, err)
		}
		q.AddFunctionLayer(l.Name, lp)
		if len(l.X) > 0 {
			q.GraphLayer(l.Name, l.X, l.Y)
		}
	}

	for _, l := range s.Labels {
		col, err := parseColor(l.Color)
		if err != nil {
			return fmt.Errorf("label layer %q: %w", l.Name, err)
		}
		q.AddLabelLayer(l.Name, quadrant.LabelProps{Font: l.Font, Size: l.Size, Color: col})
		if len(l.Points) == 0 {
			continue
		}
		xs := make([]float64, len(l.Points))
		ys := make([]float64, len(l.Points))
		texts := make([]string, len(l.Points))
		for i, p := range l.Points {
			xs[i], ys[i], texts[i] = p.X, p.Y, p.Text
		}
		q.GraphLabelLayer(l.Name, xs, ys, texts)
	}
	return nil
}

func (s *Scene) drawProps() (quadrant.DrawProps, error) {
	props := quadrant.DefaultDrawProps()

	gridStyle, err := parseStyle(s.Grid.Style)
	if err != nil {
		return props, fmt.Errorf("grid: %w", err)
	}
	gridColor, err := parseColor(s.Grid.Color)
	if err != nil {
		return props, fmt.Errorf("grid: %w", err)
	}
	props.ShowGrid = s.Grid.Show
	props.GridThickness = s.Grid.Thickness
	props.GridColor = gridColor
	props.GridAlpha = s.Grid.Alpha
	props.GridStyle = gridStyle
	props.GridPattern = s.Grid.Pattern

	if props.XAxis, err = s.X.props(); err != nil {
		return props, fmt.Errorf("x axis: %w", err)
	}
	if props.YAxis, err = s.Y.props(); err != nil {
		return props, fmt.Errorf("y axis: %w", err)
	}

	labelColor, err := parseColor(s.TicLabels.Color)
	if err != nil {
		return props, fmt.Errorf("tic labels: %w", err)
	}
	props.TicLabel.Font = s.TicLabels.Font
	props.TicLabel.Size = s.TicLabels.Size
	props.TicLabel.Color = labelColor

	props.Decimals = s.Decimals
	props.OffsetLeft = s.Margins.Left
	props.OffsetTop = s.Margins.Top
	props.OffsetRight = s.Margins.Right
	props.OffsetBottom = s.Margins.Bottom
	return props, nil
}

func (a Axis) props() (quadrant.AxisProps, error) {
	col, err := parseColor(a.Color)
	if err != nil {
		return quadrant.AxisProps{}, err
	}
	return quadrant.AxisProps{
		Thickness: a.Thickness,
		Color:     col,
		Alpha:     a.Alpha,
		Arrows:    a.Arrows,
		MinorTics: a.MinorTics,
	}, nil
}

func (l Layer) props() (quadrant.LayerProps, error) {
	props := quadrant.DefaultLayerProps()
	style, err := parseStyle(l.Style)
	if err != nil {
		return props, err
	}
	if l.Color != "" {
		if props.Color, err = parseColor(l.Color); err != nil {
			return props, err
		}
	}
	if l.Thickness > 0 {
		props.Thickness = l.Thickness
	}
	if l.Alpha != nil {
		props.Alpha = *l.Alpha
	}
	if l.Line != nil {
		props.ShowLine = *l.Line
	}
	if l.DotRadius > 0 {
		props.DotRadius = l.DotRadius
	}
	props.ShowDot = l.Dots
	props.Style = style
	props.Pattern = l.Pattern
	return props, nil
}

// parseStyle is like [stroke.ParseStyle], but rejects unknown names.
// The empty string selects a solid stroke.
func parseStyle(name string) (stroke.Style, error) {
	switch st := stroke.Style(strings.ToLower(name)); st {
	case "":
		return stroke.Solid, nil
	case stroke.Solid, stroke.Dashed, stroke.Dotted:
		return st, nil
	}
	return "", fmt.Errorf("unknown stroke style %q", name)
}

// parseColor parses colors of the form #rrggbb or #rrggbbaa.
// The empty string gives black.
func parseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.Black, nil
	}
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 || strings.Trim(digits, "0123456789abcdefABCDEF") != "" {
		return nil, fmt.Errorf("malformed color %q", s)
	}
	return canvas.Hex("#" + strings.ToLower(digits)), nil
}

func hexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
