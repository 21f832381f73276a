package dressgen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	kerrors "github.com/k1LoW/errors"
	"golang.org/x/sync/errgroup"
)

type Status string

const (
	StatusOK      Status = "ok"
	StatusMissing Status = "missing"
	StatusInvalid Status = "invalid"
	StatusStale   Status = "stale"
)

// Result is the verification result of one catalog entry.
type Result struct {
	Entry  Entry
	Path   string
	Status Status
	Reason string
}

const maxVerifyWorkers = 4

// Verify checks that dir holds an up-to-date image for every catalog entry.
func Verify(ctx context.Context, dir string, opts ...Option) (_ []*Result, err error) {
	defer func() {
		err = kerrors.WithStack(err)
	}()
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return g.Verify(ctx, dir, DefaultWidth, DefaultHeight)
}

// Verify checks that dir holds an up-to-date width x height image for every catalog entry.
// Results are in catalog order. It writes nothing.
func (g *Generator) Verify(ctx context.Context, dir string, width, height int) (_ []*Result, err error) {
	defer func() {
		err = kerrors.WithStack(err)
	}()
	entries := Catalog()
	results := make([]*Result, len(entries))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxVerifyWorkers)
	for i, e := range entries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := g.verifyEntry(e, filepath.Join(dir, e.Filename), width, height)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ok := 0
	for _, r := range results {
		if r.Status == StatusOK {
			ok++
		}
		g.logger.Info("verified image", slog.String("path", r.Path), slog.String("status", string(r.Status)), slog.String("reason", r.Reason))
	}
	g.logger.Info("verify completed", slog.Int("ok", ok), slog.Int("count", len(results)))
	return results, nil
}

func (g *Generator) verifyEntry(e Entry, path string, width, height int) (*Result, error) {
	r := &Result{Entry: e, Path: path}
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.Status = StatusMissing
			r.Reason = "no such file"
			return r, nil
		}
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		r.Status = StatusInvalid
		r.Reason = "not a regular file"
		return r, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	got, err := newImageFromBytes(b)
	if err != nil {
		r.Status = StatusInvalid
		r.Reason = err.Error()
		return r, nil
	}
	if w, h := got.Size(); w != width || h != height {
		r.Status = StatusInvalid
		r.Reason = fmt.Sprintf("size is %dx%d, want %dx%d", w, h, width, height)
		return r, nil
	}
	if !got.HasAlpha() {
		r.Status = StatusInvalid
		r.Reason = "no alpha channel"
		return r, nil
	}

	img, err := g.Render(width, height, e.Silhouette, e.Color)
	if err != nil {
		return nil, err
	}
	want, err := EncodeImage(img)
	if err != nil {
		return nil, err
	}
	if !got.Equivalent(want) {
		r.Status = StatusStale
		r.Reason = "differs from a fresh render"
		return r, nil
	}
	r.Status = StatusOK
	return r, nil
}
