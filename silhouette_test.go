package dressgen

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOutline(t *testing.T) {
	tests := []struct {
		silhouette Silhouette
		want       []image.Point
	}{
		{SilhouetteALine, []image.Point{{50, 50}, {150, 50}, {140, 200}, {180, 350}, {20, 350}, {60, 200}}},
		{SilhouetteBodycon, []image.Point{{55, 50}, {145, 50}, {135, 200}, {140, 350}, {60, 350}, {65, 200}}},
		{SilhouetteShift, []image.Point{{50, 50}, {150, 50}, {150, 350}, {50, 350}}},
		{SilhouetteWrap, []image.Point{{60, 50}, {150, 80}, {145, 200}, {175, 350}, {25, 350}, {55, 200}}},
		{SilhouetteFitFlare, []image.Point{{55, 50}, {145, 50}, {135, 180}, {190, 350}, {10, 350}, {65, 180}}},
		{Silhouette("empire"), nil},
		{Silhouette(""), nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.silhouette), func(t *testing.T) {
			got := tt.silhouette.Outline(200, 400)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Outline() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOutlineOddWidth(t *testing.T) {
	// the midline uses integer division
	got := SilhouetteShift.Outline(201, 101)
	want := []image.Point{{50, 50}, {150, 50}, {150, 51}, {50, 51}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Outline() mismatch (-want +got):\n%s", diff)
	}
}

func TestValid(t *testing.T) {
	for _, s := range Silhouettes() {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []Silhouette{"", "empire", "A-LINE", "fit_flare"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{255, 100, 100}, "#ff6464"},
		{RGB{0, 0, 0}, "#000000"},
		{RGB{50, 50, 50}, "#323232"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}
