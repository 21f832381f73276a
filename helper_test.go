package dressgen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/k1LoW/dressgen/handler/console"
)

// newTestGenerator returns a Generator that prints console lines to the returned buffer.
func newTestGenerator(t *testing.T) (*Generator, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	logger := slog.New(console.New(slog.NewTextHandler(io.Discard, nil), console.WithWriter(buf)))
	g, err := New(WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	return g, buf
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode %s: %v", path, err)
	}
	return img
}

func writePNGFile(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
