package dressgen

import (
	"fmt"
	"io"
)

// Entry is one placeholder image of the catalog.
type Entry struct {
	Silhouette Silhouette
	Color      RGB
	Filename   string
}

var catalog = []Entry{
	// A-line (pear, apple)
	{SilhouetteALine, RGB{255, 100, 100}, "a-line-red.png"},
	{SilhouetteALine, RGB{100, 150, 255}, "a-line-blue.png"},
	{SilhouetteALine, RGB{100, 200, 100}, "a-line-green.png"},
	// Bodycon (hourglass)
	{SilhouetteBodycon, RGB{200, 100, 200}, "bodycon-purple.png"},
	{SilhouetteBodycon, RGB{50, 50, 50}, "bodycon-black.png"},
	// Shift (rectangle)
	{SilhouetteShift, RGB{255, 200, 100}, "shift-yellow.png"},
	{SilhouetteShift, RGB{150, 200, 255}, "shift-lightblue.png"},
	// Wrap (apple, pear)
	{SilhouetteWrap, RGB{200, 150, 100}, "wrap-brown.png"},
	{SilhouetteWrap, RGB{150, 100, 150}, "wrap-mauve.png"},
	// Fit and flare (inverted triangle)
	{SilhouetteFitFlare, RGB{255, 150, 150}, "fit-flare-pink.png"},
	{SilhouetteFitFlare, RGB{100, 255, 200}, "fit-flare-mint.png"},
}

// Catalog returns a copy of the placeholder catalog.
func Catalog() []Entry {
	return append([]Entry(nil), catalog...)
}

// WriteCatalog writes one line per entry.
func WriteCatalog(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%-10s %s %s\n", e.Silhouette, e.Color.Hex(), e.Filename); err != nil {
			return err
		}
	}
	return nil
}
