package dressgen

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func catalogFilenames() []string {
	var names []string
	for _, e := range Catalog() {
		names = append(names, e.Filename)
	}
	slices.Sort(names)
	return names
}

func readDirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names
}

func TestRun(t *testing.T) {
	g, buf := newTestGenerator(t)
	dir := filepath.Join(t.TempDir(), "public", "dresses")
	if err := g.Run(dir, DefaultWidth, DefaultHeight); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(catalogFilenames(), readDirNames(t, dir)); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	for _, e := range Catalog() {
		i, err := ReadImage(filepath.Join(dir, e.Filename))
		if err != nil {
			t.Fatal(err)
		}
		if w, h := i.Size(); w != DefaultWidth || h != DefaultHeight {
			t.Errorf("%s: got %dx%d", e.Filename, w, h)
		}
		if !i.HasAlpha() {
			t.Errorf("%s: no alpha channel", e.Filename)
		}
	}

	var want strings.Builder
	for _, e := range Catalog() {
		fmt.Fprintf(&want, "Created %s\n", filepath.Join(dir, e.Filename))
	}
	fmt.Fprintf(&want, "\nCreated 11 placeholder dress images in %s/\n", dir)
	if diff := cmp.Diff(want.String(), buf.String()); diff != "" {
		t.Errorf("console output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunTwice(t *testing.T) {
	g, _ := newTestGenerator(t)
	dir := t.TempDir()
	if err := g.Run(dir, DefaultWidth, DefaultHeight); err != nil {
		t.Fatal(err)
	}
	first := readDirNames(t, dir)
	before, err := os.ReadFile(filepath.Join(dir, "shift-yellow.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Run(dir, DefaultWidth, DefaultHeight); err != nil {
		t.Fatal(err)
	}
	second := readDirNames(t, dir)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("files mismatch (-first +second):\n%s", diff)
	}
	if len(second) != 11 {
		t.Errorf("got %d files, want 11", len(second))
	}
	after, err := os.ReadFile(filepath.Join(dir, "shift-yellow.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(before, after) {
		t.Error("regenerated image differs")
	}
}

func TestRunPackageLevel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dresses")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := Run(dir, WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	if got := len(readDirNames(t, dir)); got != 11 {
		t.Errorf("got %d files, want 11", got)
	}
	img := decodePNG(t, filepath.Join(dir, "a-line-red.png"))
	if got := img.Bounds(); got != image.Rect(0, 0, DefaultWidth, DefaultHeight) {
		t.Errorf("got bounds %v", got)
	}
}

func TestRunDirectoryIsFile(t *testing.T) {
	g, _ := newTestGenerator(t)
	dir := filepath.Join(t.TempDir(), "dresses")
	if err := os.WriteFile(dir, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := g.Run(dir, DefaultWidth, DefaultHeight); err == nil {
		t.Fatal("want error")
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	g, buf := newTestGenerator(t)
	dir := t.TempDir()
	// a directory in place of the fourth catalog file makes its write fail
	if err := os.Mkdir(filepath.Join(dir, "bodycon-purple.png"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := g.Run(dir, DefaultWidth, DefaultHeight); err == nil {
		t.Fatal("want error")
	}
	want := []string{"a-line-blue.png", "a-line-green.png", "a-line-red.png", "bodycon-purple.png"}
	if diff := cmp.Diff(want, readDirNames(t, dir)); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(buf.String(), "placeholder dress images") {
		t.Errorf("summary should not be printed: %q", buf.String())
	}
}
