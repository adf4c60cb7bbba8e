package colormix

import (
	"math"

	"github.com/sgtpuzzles/puzzlecore/prng"
)

// Colour is an 8-bit-per-channel sRGB colour.
type Colour struct {
	R, G, B uint8
}

// srgbToLinear converts an 8-bit sRGB channel to linear-light [0,1].
func srgbToLinear(c uint8) float64 {
	x := float64(c) / 255
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// linearToSRGB converts a linear-light [0,1] channel back to 8-bit sRGB.
func linearToSRGB(x float64) uint8 {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	var y float64
	if x <= 0.0031308 {
		y = x * 12.92
	} else {
		y = 1.055*math.Pow(x, 1/2.4) - 0.055
	}
	return uint8(math.Round(y * 255))
}

// Mix linearly interpolates a and b in linear-light space at t∈[0,1]
// (t=0 returns a, t=1 returns b). t outside [0,1] is clamped.
func Mix(a, b Colour, t float64) Colour {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	blend := func(ca, cb uint8) uint8 {
		la, lb := srgbToLinear(ca), srgbToLinear(cb)
		return linearToSRGB(la + (lb-la)*t)
	}
	return Colour{
		R: blend(a.R, b.R),
		G: blend(a.G, b.G),
		B: blend(a.B, b.B),
	}
}

// Palette generates n visually distinguishable colours by spacing hues
// evenly around the colour wheel and jittering each one's hue slightly
// using rs, at a fixed saturation and lightness chosen for good contrast
// against a light background. Palette panics if n<=0.
func Palette(n int, rs *prng.Source) []Colour {
	if n <= 0 {
		panic("colormix: Palette: n must be > 0")
	}
	const (
		saturation = 0.55
		lightness  = 0.55
		jitterDeg  = 12.0
	)
	out := make([]Colour, n)
	step := 360.0 / float64(n)
	for i := 0; i < n; i++ {
		hue := step * float64(i)
		if rs != nil {
			jitter := (float64(rs.Bits(16))/float64(1<<16) - 0.5) * 2 * jitterDeg
			hue += jitter
		}
		hue = math.Mod(hue+360, 360)
		out[i] = hslToColour(hue, saturation, lightness)
	}
	return out
}

func hslToColour(h, s, l float64) Colour {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = c, x, 0
	case hp < 2:
		r1, g1, b1 = x, c, 0
	case hp < 3:
		r1, g1, b1 = 0, c, x
	case hp < 4:
		r1, g1, b1 = 0, x, c
	case hp < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}
	m := l - c/2
	to8 := func(v float64) uint8 {
		return uint8(math.Round((v + m) * 255))
	}
	return Colour{R: to8(r1), G: to8(g1), B: to8(b1)}
}
