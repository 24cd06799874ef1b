package render

import (
	"image/color"
	"testing"

	"github.com/tomz197/shmup/internal/object"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0080", color.RGBA{255, 0, 128, 255}},
		{"#10203040", color.RGBA{16, 32, 48, 64}},
		{"bogus", color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := ParseHexColor(tt.in); got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStarfield_Deterministic(t *testing.T) {
	a := Starfield(object.SpriteStarsFar, 1000, 600)
	b := Starfield(object.SpriteStarsFar, 1000, 600)
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("starfield sizes = %d/%d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("star %d differs between calls", i)
		}
		if a[i].X < 0 || a[i].X >= 1000 || a[i].Y < 0 || a[i].Y >= 600 {
			t.Errorf("star %d at (%f, %f) outside the arena", i, a[i].X, a[i].Y)
		}
	}
	if Starfield(object.SpritePlayer, 1000, 600) != nil {
		t.Error("non-star sprites should have no starfield")
	}
}

func TestShape_UnitSquare(t *testing.T) {
	for _, id := range []object.Sprite{object.SpritePlayer, object.SpriteEnemy, object.SpriteHeart} {
		shape := Shape(id)
		if len(shape) < 3 {
			t.Errorf("%v: shape has %d points", id, len(shape))
		}
		for _, p := range shape {
			if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
				t.Errorf("%v: point %+v outside the unit square", id, p)
			}
		}
	}
	if Shape(object.SpritePlayerProjectile) != nil {
		t.Error("projectiles are drawn as bolts, not shapes")
	}
}

func TestBannerLineY(t *testing.T) {
	tests := []struct {
		name string
		n, i int
		want float64
	}{
		{"single line sits on the midline", 1, 0, 300},
		{"two lines straddle it", 2, 0, 290},
		{"second of two", 2, 1, 310},
		{"middle of three", 3, 1, 300},
		{"last of four", 4, 3, 330},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BannerLineY(600, tt.n, tt.i); got != tt.want {
				t.Errorf("BannerLineY(600, %d, %d) = %g, want %g", tt.n, tt.i, got, tt.want)
			}
		})
	}
}
