// Package render draws chart specifications as PNG images.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/rotisserie/eris"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default image size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 500
)

// Options controls the output image.
type Options struct {
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// palette is the category color cycle.
var palette = []drawing.Color{
	drawing.ColorFromHex("636efa"),
	drawing.ColorFromHex("ef553b"),
	drawing.ColorFromHex("00cc96"),
	drawing.ColorFromHex("ab63fa"),
	drawing.ColorFromHex("ffa15a"),
	drawing.ColorFromHex("19d3f3"),
	drawing.ColorFromHex("ff6692"),
	drawing.ColorFromHex("b6e880"),
	drawing.ColorFromHex("ff97ff"),
	drawing.ColorFromHex("fecb52"),
}

func colorAt(i int) drawing.Color {
	return palette[i%len(palette)]
}

var numbers = message.NewPrinter(language.English)

// formatCount renders a count with thousands separators.
func formatCount(v float64) string {
	return numbers.Sprintf("%d", int64(math.Round(v)))
}

// blank writes a plain white image, used when there is nothing to draw.
func blank(w io.Writer, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	if err := png.Encode(w, img); err != nil {
		return eris.Wrap(err, "render: encode blank png")
	}
	return nil
}
