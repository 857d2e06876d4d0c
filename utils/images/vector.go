// Package images draws vector element paths, used to check path data and to
// put previews into debug report.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// supersample is the factor path is drawn with before downscaling to
// requested size.
const supersample = 4

// maxPreviewSize limits preview dimension to keep memory in check.
var maxPreviewSize = 1024

// ErrEmptyPath is returned for path data without drawable points.
var ErrEmptyPath = errors.New("path has no points")

// CompilePath parses SVG path data ("M0 0 L10 10 Z").
func CompilePath(data string) (rasterx.Path, error) {
	c := oksvg.PathCursor{ErrorMode: oksvg.StrictErrorMode}
	if err := c.CompilePath(data); err != nil {
		return nil, fmt.Errorf("malformed path data: %w", err)
	}
	if len(c.Path) == 0 {
		return nil, ErrEmptyPath
	}
	return c.Path, nil
}

// pointCount returns number of points following path command.
func pointCount(cmd rasterx.PathCommand) int {
	switch cmd {
	case rasterx.PathMoveTo, rasterx.PathLineTo:
		return 1
	case rasterx.PathQuadTo:
		return 2
	case rasterx.PathCubicTo:
		return 3
	default:
		return 0
	}
}

// Bounds returns rectangle containing every point of the path, control
// points included.
func Bounds(p rasterx.Path) (fixed.Rectangle26_6, bool) {
	var (
		r     fixed.Rectangle26_6
		found bool
	)
	for i := 0; i < len(p); {
		n := pointCount(rasterx.PathCommand(p[i]))
		for j := range n {
			pt := fixed.Point26_6{X: p[i+1+2*j], Y: p[i+2+2*j]}
			if !found {
				r = fixed.Rectangle26_6{Min: pt, Max: pt}
				found = true
				continue
			}
			r.Min.X, r.Min.Y = min(r.Min.X, pt.X), min(r.Min.Y, pt.Y)
			r.Max.X, r.Max.Y = max(r.Max.X, pt.X), max(r.Max.Y, pt.Y)
		}
		i += 1 + 2*n
	}
	return r, found
}

// fit maps path into size x size square keeping aspect ratio.
func fit(p rasterx.Path, bounds fixed.Rectangle26_6, size int) rasterx.Path {
	w := float64(bounds.Max.X-bounds.Min.X) / 64
	h := float64(bounds.Max.Y-bounds.Min.Y) / 64
	scale := float64(size) / math.Max(math.Max(w, h), 1)
	offX := (float64(size) - w*scale) / 2
	offY := (float64(size) - h*scale) / 2

	out := make(rasterx.Path, 0, len(p))
	for i := 0; i < len(p); {
		n := pointCount(rasterx.PathCommand(p[i]))
		out = append(out, p[i])
		for j := range n {
			x := float64(p[i+1+2*j]-bounds.Min.X)/64*scale + offX
			y := float64(p[i+2+2*j]-bounds.Min.Y)/64*scale + offY
			out = append(out, fixed.Int26_6(x*64), fixed.Int26_6(y*64))
		}
		i += 1 + 2*n
	}
	return out
}

// RasterizePath fills path black on white into square image of requested
// size. Path is scaled to fit keeping aspect ratio.
func RasterizePath(data string, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid preview size %d", size)
	}
	size = min(size, maxPreviewSize)

	p, err := CompilePath(data)
	if err != nil {
		return nil, err
	}
	bounds, ok := Bounds(p)
	if !ok {
		return nil, ErrEmptyPath
	}

	big := size * supersample
	dst := image.NewRGBA(image.Rect(0, 0, big, big))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(big, big, dst, dst.Bounds())
	filler := rasterx.NewFiller(big, big, scanner)
	filler.SetColor(color.Black)
	fit(p, bounds, big).AddTo(filler)
	filler.Draw()

	return imaging.Resize(dst, size, size, imaging.Lanczos), nil
}

// PNG encodes image for storing in report.
func PNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
