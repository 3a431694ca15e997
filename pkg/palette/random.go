package palette

import (
	"fmt"
	"math/rand/v2"
)

const (
	// MinLightness is the minimum r+g+b of a random accent.
	MinLightness = 384
	// MinDistance is the minimum RGB distance between two random accents.
	MinDistance = 100

	plMaxDraws = 10000
)

// Source is the random number source used by Random.
type Source interface {
	IntN(n int) int
}

// Random draws six light accents that are pairwise at least MinDistance
// apart. A nil src uses the global generator.
func Random(src Source) Palette {
	if src == nil {
		src = plGlobal{}
	}
	var picked [][3]uint8
	hexes := make([]string, 0, 6)
	for len(hexes) < 6 {
		c := plDrawColor(src, picked)
		picked = append(picked, c)
		hexes = append(hexes, fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
	}
	return plFromAccents(ModeRandom, hexes)
}

// plDrawColor draws until a light color far enough from picked comes up. It
// gives up on distance after plMaxDraws and returns the last light color.
func plDrawColor(src Source, picked [][3]uint8) [3]uint8 {
	var c [3]uint8
	for range plMaxDraws {
		c = plDrawLight(src)
		if plFarFromAll(c, picked) {
			return c
		}
	}
	return c
}

func plDrawLight(src Source) [3]uint8 {
	for {
		r, g, b := src.IntN(256), src.IntN(256), src.IntN(256)
		if r+g+b >= MinLightness {
			return [3]uint8{uint8(r), uint8(g), uint8(b)}
		}
	}
}

func plFarFromAll(c [3]uint8, picked [][3]uint8) bool {
	for _, p := range picked {
		if plColorDistance(c[0], c[1], c[2], p[0], p[1], p[2]) < MinDistance {
			return false
		}
	}
	return true
}

type plGlobal struct{}

func (plGlobal) IntN(n int) int { return rand.IntN(n) }
