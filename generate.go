package dressgen

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"

	"github.com/k1LoW/dressgen/handler/console"
	"github.com/k1LoW/errors"
	"golang.org/x/image/vector"
)

const (
	// DefaultWidth and DefaultHeight are the canvas size of the placeholder batch.
	DefaultWidth  = 200
	DefaultHeight = 400

	fillAlpha     = 180
	necklineAlpha = 100
)

// kappa places cubic Bézier control points for a quarter ellipse.
const kappa = 0.5522847498

type Generator struct {
	logger *slog.Logger
}

type Option func(*Generator) error

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			return fmt.Errorf("logger is nil")
		}
		g.logger = logger
		return nil
	}
}

// New creates a Generator. Without WithLogger, progress lines are printed to stdout.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{
		logger: slog.New(console.New(slog.NewTextHandler(os.Stderr, nil))),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Render draws the silhouette filled with fill, plus the neckline, onto a new transparent canvas.
// An unknown silhouette yields a canvas holding only the neckline.
func (g *Generator) Render(width, height int, s Silhouette, fill RGB) (_ *image.NRGBA, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size: %dx%d", width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	z := vector.NewRasterizer(width, height)

	if outline := s.Outline(width, height); outline != nil {
		polygon(z, outline)
		paint(img, z, color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: fillAlpha})
	} else {
		g.logger.Debug("unknown silhouette, drawing neckline only", slog.String("silhouette", string(s)))
	}

	// The neckline is inscribed in the box [m-25, 45, m+25, 70].
	m := float32(width / 2)
	z.Reset(width, height)
	ellipse(z, m, 57.5, 25, 12.5)
	paint(img, z, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: necklineAlpha})

	return img, nil
}

// Generate renders the silhouette and writes it as PNG to path.
func (g *Generator) Generate(width, height int, s Silhouette, fill RGB, path string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	img, err := g.Render(width, height, s, fill)
	if err != nil {
		return err
	}
	if err := writePNG(path, img); err != nil {
		return err
	}
	g.logger.Info("created image", slog.String("path", path), slog.String("silhouette", string(s)), slog.String("color", fill.Hex()))
	return nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func polygon(z *vector.Rasterizer, pts []image.Point) {
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

func ellipse(z *vector.Rasterizer, cx, cy, rx, ry float32) {
	ox, oy := rx*kappa, ry*kappa
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	z.CubeTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	z.CubeTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	z.CubeTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	z.ClosePath()
}

// paint replaces the pixels covered by the rasterized path with c.
// Partially covered pixels are interpolated between their current value and c.
func paint(dst *image.NRGBA, z *vector.Rasterizer, c color.NRGBA) {
	b := dst.Bounds()
	mask := image.NewAlpha(b)
	z.DrawOp = draw.Src
	z.Draw(mask, b, image.Opaque, image.Point{})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			switch a := mask.AlphaAt(x, y).A; a {
			case 0:
			case 0xff:
				dst.SetNRGBA(x, y, c)
			default:
				dst.SetNRGBA(x, y, mix(dst.NRGBAAt(x, y), c, a))
			}
		}
	}
}

// mix interpolates from under to over by coverage a in premultiplied space.
func mix(under, over color.NRGBA, a uint8) color.NRGBA {
	t := float64(a) / 0xff
	ua := float64(under.A) / 0xff * (1 - t)
	oa := float64(over.A) / 0xff * t
	outA := ua + oa
	if outA == 0 {
		return color.NRGBA{}
	}
	ch := func(u, o uint8) uint8 {
		return uint8((float64(u)*ua+float64(o)*oa)/outA + 0.5)
	}
	return color.NRGBA{
		R: ch(under.R, over.R),
		G: ch(under.G, over.G),
		B: ch(under.B, over.B),
		A: uint8(outA*0xff + 0.5),
	}
}
