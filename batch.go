package dressgen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/k1LoW/errors"
)

// DefaultDir is the output directory of the placeholder batch.
const DefaultDir = "public/dresses"

// Run generates every catalog entry into dir at the default canvas size.
func Run(dir string, opts ...Option) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g, err := New(opts...)
	if err != nil {
		return err
	}
	return g.Run(dir, DefaultWidth, DefaultHeight)
}

// Run generates every catalog entry into dir, creating dir if needed.
// It stops at the first failure and leaves already written files in place.
func (g *Generator) Run(dir string, width, height int) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	entries := Catalog()
	for _, e := range entries {
		if err := g.Generate(width, height, e.Silhouette, e.Color, filepath.Join(dir, e.Filename)); err != nil {
			return err
		}
	}
	g.logger.Info("generated placeholders", slog.Int("count", len(entries)), slog.String("dir", dir))
	return nil
}
