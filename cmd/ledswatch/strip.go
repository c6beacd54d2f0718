package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ledcolor"
	"github.com/gogpu/ledcolor/budget"
	"github.com/gogpu/ledcolor/cmd/ledswatch/internal/config"
)

// strip is a blended run of pixels with its power estimate.
type strip struct {
	colors []color.Color
	total  uint32 // before limiting
	drawn  uint32 // after limiting
	ratio  uint8
}

// buildStrip blends cfg.From into cfg.To across cfg.Pixels pixels in the
// configured space and applies the current limit, if any. RGBW strips also
// ramp the white channel from 0 up to cfg.White.
func buildStrip(cfg *config.Config) (*strip, error) {
	from, to, err := cfg.Endpoints()
	if err != nil {
		return nil, err
	}

	n := cfg.Pixels
	if cfg.Space == config.SpaceRGBW {
		left, right := ledcolor.RGBWFromRGB(from), ledcolor.RGBWFromRGB(to)
		right.W = cfg.White
		pixels := make([]ledcolor.RGBWColor, n)
		for i := range pixels {
			pixels[i] = ledcolor.LinearBlendRGBW(left, right, progress(i, n))
		}
		return limitStrip(pixels, cfg.RGBWSettings(), cfg.Limit), nil
	}

	pixels := make([]ledcolor.RGBColor, n)
	blend := cfg.HueBlend()
	for i := range pixels {
		t := progress(i, n)
		switch cfg.Space {
		case config.SpaceHSL:
			c := ledcolor.LinearBlendHSL(ledcolor.HSLFromRGB(from), ledcolor.HSLFromRGB(to), t, blend)
			pixels[i] = ledcolor.RGBFromHSL(c)
		case config.SpaceHSB:
			c := ledcolor.LinearBlendHSB(ledcolor.HSBFromRGB(from), ledcolor.HSBFromRGB(to), t, blend)
			pixels[i] = ledcolor.RGBFromHSB(c)
		default:
			pixels[i] = ledcolor.LinearBlendRGB(from, to, t)
		}
	}
	return limitStrip(pixels, cfg.RGBSettings(), cfg.Limit), nil
}

// limitStrip measures pixels and dims them to limit. A limit of 0 means
// unlimited.
func limitStrip[P interface {
	budget.Pixel[S, P]
	color.Color
}, S any](pixels []P, settings S, limit uint32) *strip {
	s := &strip{
		total: budget.Total(pixels, settings),
		ratio: 255,
	}
	if limit > 0 {
		s.ratio, pixels = budget.Limit(pixels, settings, limit)
	}
	s.drawn = budget.Total(pixels, settings)

	s.colors = make([]color.Color, len(pixels))
	for i, p := range pixels {
		s.colors[i] = p
	}
	return s
}

// progress spreads n samples evenly over [0, 1], ending exactly on 1.
func progress(i, n int) float32 {
	if n <= 1 {
		return 0
	}
	return float32(i) / float32(n-1)
}

// render draws the strip as a row of square swatches of the given size.
func (s *strip) render(size int) image.Image {
	src := image.NewRGBA(image.Rect(0, 0, len(s.colors), 1))
	for x, c := range s.colors {
		src.Set(x, 0, c)
	}
	if size <= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, len(s.colors)*size, size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// encode writes img in the format implied by the extension of name.
func encode(w io.Writer, name string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}
