package dressgen

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/corona10/goimagehash"
	"github.com/k1LoW/errors"
)

const (
	// pHashThreshold is the maximum perceptual hash distance of equivalent images.
	pHashThreshold = 5
	// pixelTolerance is the maximum per-channel difference of equivalent pixels.
	pixelTolerance = 2
)

// Image is an encoded PNG image.
type Image struct {
	i        image.Image
	b        []byte
	checksum uint32
	pHash    *goimagehash.ImageHash
}

// ReadImage reads and decodes a PNG file.
func ReadImage(path string) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}
	return newImageFromBytes(b)
}

// EncodeImage encodes img as PNG.
func EncodeImage(img image.Image) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &Image{i: img, b: buf.Bytes()}, nil
}

func newImageFromBytes(b []byte) (*Image, error) {
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return &Image{i: img, b: b}, nil
}

func (i *Image) Image() image.Image {
	return i.i
}

func (i *Image) Bytes() []byte {
	if i == nil {
		return nil
	}
	return i.b
}

func (i *Image) Size() (int, int) {
	s := i.i.Bounds().Size()
	return s.X, s.Y
}

// HasAlpha reports whether the decoded image keeps an alpha channel.
// The PNG decoder returns RGBA and RGBA64 only for opaque color types.
func (i *Image) HasAlpha() bool {
	switch i.i.ColorModel() {
	case color.NRGBAModel, color.NRGBA64Model:
		return true
	}
	if p, ok := i.i.(*image.Paletted); ok {
		for _, c := range p.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}

func (i *Image) Checksum() uint32 {
	if i == nil {
		return 0
	}
	if i.checksum == 0 {
		i.checksum = crc32.ChecksumIEEE(i.b)
	}
	return i.checksum
}

func (i *Image) PHash() (_ *goimagehash.ImageHash, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if i == nil {
		return nil, fmt.Errorf("image is nil")
	}
	if i.pHash == nil {
		pHash, err := goimagehash.PerceptionHash(i.i)
		if err != nil {
			return nil, fmt.Errorf("failed to compute perceptual hash: %w", err)
		}
		i.pHash = pHash
	}
	return i.pHash, nil
}

// Equivalent reports whether both images are byte-identical, or perceptually close
// with every pixel within pixelTolerance. pHash alone ignores hue.
func (i *Image) Equivalent(ii *Image) bool {
	if i == nil || ii == nil {
		return false
	}
	if i.Checksum() == ii.Checksum() {
		return true
	}
	aHash, err := i.PHash()
	if err != nil {
		return false
	}
	bHash, err := ii.PHash()
	if err != nil {
		return false
	}
	distance, err := aHash.Distance(bHash)
	if err != nil {
		return false
	}
	if distance >= pHashThreshold {
		return false
	}
	return samePixels(i.i, ii.i)
}

func samePixels(a, b image.Image) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Size() != bb.Size() {
		return false
	}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ac := color.NRGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y)).(color.NRGBA)
			bc := color.NRGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y)).(color.NRGBA)
			if !closeChannel(ac.A, bc.A) {
				return false
			}
			if ac.A == 0 && bc.A == 0 {
				continue
			}
			if !closeChannel(ac.R, bc.R) || !closeChannel(ac.G, bc.G) || !closeChannel(ac.B, bc.B) {
				return false
			}
		}
	}
	return true
}

func closeChannel(a, b uint8) bool {
	if a > b {
		return a-b <= pixelTolerance
	}
	return b-a <= pixelTolerance
}
