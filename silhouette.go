package dressgen

import (
	"fmt"
	"image"
)

// Silhouette is a dress shape category.
type Silhouette string

const (
	SilhouetteALine    Silhouette = "a-line"
	SilhouetteBodycon  Silhouette = "bodycon"
	SilhouetteShift    Silhouette = "shift"
	SilhouetteWrap     Silhouette = "wrap"
	SilhouetteFitFlare Silhouette = "fit-flare"
)

var silhouettes = []Silhouette{
	SilhouetteALine,
	SilhouetteBodycon,
	SilhouetteShift,
	SilhouetteWrap,
	SilhouetteFitFlare,
}

// Silhouettes returns all known silhouettes.
func Silhouettes() []Silhouette {
	return append([]Silhouette(nil), silhouettes...)
}

func (s Silhouette) Valid() bool {
	for _, ss := range silhouettes {
		if s == ss {
			return true
		}
	}
	return false
}

func (s Silhouette) String() string {
	return string(s)
}

// Outline returns the closed polygon of the silhouette on a width x height canvas.
// Points are offsets from the horizontal midline and fixed vertical landmarks.
// It returns nil for an unknown silhouette.
func (s Silhouette) Outline(width, height int) []image.Point {
	m := width / 2
	hem := height - 50
	switch s {
	case SilhouetteALine:
		return []image.Point{
			{m - 50, 50},  // left shoulder
			{m + 50, 50},  // right shoulder
			{m + 40, 200}, // right waist
			{m + 80, hem}, // right hem
			{m - 80, hem}, // left hem
			{m - 40, 200}, // left waist
		}
	case SilhouetteBodycon:
		return []image.Point{
			{m - 45, 50},
			{m + 45, 50},
			{m + 35, 200},
			{m + 40, hem},
			{m - 40, hem},
			{m - 35, 200},
		}
	case SilhouetteShift:
		return []image.Point{
			{m - 50, 50},
			{m + 50, 50},
			{m + 50, hem},
			{m - 50, hem},
		}
	case SilhouetteWrap:
		// asymmetric neckline: the right shoulder sits lower
		return []image.Point{
			{m - 40, 50},
			{m + 50, 80},
			{m + 45, 200},
			{m + 75, hem},
			{m - 75, hem},
			{m - 45, 200},
		}
	case SilhouetteFitFlare:
		return []image.Point{
			{m - 45, 50},
			{m + 45, 50},
			{m + 35, 180}, // fitted waist
			{m + 90, hem}, // flared hem
			{m - 90, hem},
			{m - 35, 180},
		}
	default:
		return nil
	}
}

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
