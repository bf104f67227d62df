// Package render rasterizes stroke documents to PNG.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/vector"
)

const (
	// DefaultDPI is the raster resolution used when Options.DPI is unset.
	DefaultDPI = 100
	// DefaultLineWidth is the stroke width in raster pixels.
	DefaultLineWidth = 1.5
	// ThumbnailWidth is the width of Thumbnail output.
	ThumbnailWidth = 200
	// maxSide keeps corrupt page sizes from allocating huge canvases.
	maxSide = 8192
)

var penColors = map[dnt.Pen]color.RGBA{
	dnt.PenBlack: {0, 0, 0, 0xff},
	dnt.PenBlue:  {0, 0, 0xff, 0xff},
	dnt.PenRed:   {0xff, 0, 0, 0xff},
}

type Options struct {
	// DPI is the raster resolution before scaling.
	DPI float64
	// Width scales the result to this many pixels, keeping the aspect ratio.
	Width uint
	// LineWidth is the stroke width in raster pixels.
	LineWidth float64
}

func (o Options) withDefaults() Options {
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultLineWidth
	}
	return o
}

// Image draws the strokes of doc on a white page.
func Image(doc *dnt.Document, opts Options) (image.Image, error) {
	if doc.DPI == 0 {
		return nil, errors.New("can't size page: dpi is zero")
	}
	opts = opts.withDefaults()

	scale := opts.DPI / float64(doc.DPI)
	w := int(math.Ceil(float64(doc.XSize) * scale))
	h := int(math.Ceil(float64(doc.YSize) * scale))
	if w <= 0 || h <= 0 || w > maxSide || h > maxSide {
		return nil, errors.Errorf("can't render a %dx%d page", w, h)
	}

	lines, err := dnt.Polylines(doc)
	if err != nil {
		return nil, errors.Wrap(err, "can't build paths")
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := vector.NewRasterizer(w, h)
	for _, pen := range []dnt.Pen{dnt.PenBlack, dnt.PenBlue, dnt.PenRed} {
		r.Reset(w, h)
		inked := false
		for _, line := range lines {
			if line.Pen != pen {
				continue
			}
			strokeLine(r, line.Points, scale, opts.LineWidth/2)
			inked = true
		}
		if inked {
			r.Draw(img, img.Bounds(), image.NewUniform(penColors[pen]), image.Point{})
		}
	}

	if opts.Width > 0 && int(opts.Width) != w {
		return resize.Resize(opts.Width, 0, img, resize.Lanczos3), nil
	}
	return img, nil
}

// strokeLine adds one quad per segment and a square per point. All shapes
// share the same winding so overlaps never cancel out.
func strokeLine(r *vector.Rasterizer, pts []dnt.Point, scale, hw float64) {
	for i, p := range pts {
		x, y := float64(p.X)*scale, float64(p.Y)*scale
		addQuad(r,
			x-hw, y+hw,
			x+hw, y+hw,
			x+hw, y-hw,
			x-hw, y-hw)

		if i == 0 {
			continue
		}
		px, py := float64(pts[i-1].X)*scale, float64(pts[i-1].Y)*scale
		dx, dy := x-px, y-py
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		addQuad(r,
			px+nx, py+ny,
			x+nx, y+ny,
			x-nx, y-ny,
			px-nx, py-ny)
	}
}

func addQuad(r *vector.Rasterizer, ax, ay, bx, by, cx, cy, dx, dy float64) {
	r.MoveTo(float32(ax), float32(ay))
	r.LineTo(float32(bx), float32(by))
	r.LineTo(float32(cx), float32(cy))
	r.LineTo(float32(dx), float32(dy))
	r.ClosePath()
}

// PNG encodes the rendered page to w. Nothing is written on error.
func PNG(w io.Writer, doc *dnt.Document, opts Options) error {
	img, err := Image(doc, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Thumbnail encodes a small preview of the page.
func Thumbnail(w io.Writer, doc *dnt.Document) error {
	return PNG(w, doc, Options{Width: ThumbnailWidth})
}
