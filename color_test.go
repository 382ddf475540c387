package ggmap

import (
	"image/color"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"00ff00", color.NRGBA{G: 255, A: 255}},
		{"#00f", color.NRGBA{B: 255, A: 255}},
		{"#fff8", color.NRGBA{R: 255, G: 255, B: 255, A: 0x88}},
		{"#ffffff88", color.NRGBA{R: 255, G: 255, B: 255, A: 0x88}},
		{" #1a9850 ", color.NRGBA{R: 0x1a, G: 0x98, B: 0x50, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if got := c.NRGBA(); got != tt.want {
				t.Errorf("ParseHex(%q).NRGBA() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "#ffffffzz", "#1234567"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) should fail", in)
		}
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex should panic on bad input")
		}
	}()
	MustParseHex("nope")
}

func TestRGBAString(t *testing.T) {
	if got := RGB(1, 0.5, 0).String(); got != "#ff8000ff" {
		t.Errorf("String() = %q, want #ff8000ff", got)
	}
	if got := Transparent.String(); got != "#00000000" {
		t.Errorf("String() = %q, want #00000000", got)
	}
}

func TestRGBAPremultiplied(t *testing.T) {
	r, g, b, a := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	if a != 0x7fff {
		t.Errorf("a = %#x, want 0x7fff", a)
	}
	if r != 0x7fff {
		t.Errorf("r = %#x, want 0x7fff", r)
	}
	if g > a || b != 0 {
		t.Errorf("g, b = %#x, %#x: channels must not exceed alpha", g, b)
	}
}

func TestRGBAClamp(t *testing.T) {
	got := RGBA{R: 2, G: -1, B: 0.5, A: 1.5}.NRGBA()
	want := color.NRGBA{R: 255, G: 0, B: 128, A: 255}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	in := color.NRGBA{R: 10, G: 200, B: 30, A: 128}
	if got := FromColor(in).NRGBA(); got != in {
		t.Errorf("FromColor round trip = %v, want %v", got, in)
	}
}

func TestRGBALerp(t *testing.T) {
	mid := Black.Lerp(White.WithAlpha(0), 0.5)
	for name, v := range map[string]float64{"R": mid.R, "G": mid.G, "B": mid.B, "A": mid.A} {
		if math.Abs(v-0.5) > 1e-12 {
			t.Errorf("%s = %v, want 0.5", name, v)
		}
	}
}
