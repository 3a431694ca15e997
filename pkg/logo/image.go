package logo

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/muesli/termenv"
	xdraw "golang.org/x/image/draw"
)

const (
	// ImageSharpen is the sharpening sigma applied after downscaling;
	// half blocks halve the vertical resolution and need more edge detail.
	ImageSharpen = 0.5

	// DefaultImageRows is the logo height in cells when none is given.
	DefaultImageRows = 12
)

// ErrImageEmpty is returned for images with no pixels.
var ErrImageEmpty = errors.New("image has no pixels")

// ImageFile loads an image logo and renders it in at most cols x rows cells.
// EXIF orientation is honored.
func ImageFile(path string, cols, rows int, profile termenv.Profile) ([]string, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open logo image: %w", err)
	}
	return Image(img, cols, rows, profile)
}

// Image renders img as half-block lines: each cell shows two vertical
// pixels, the top one as foreground of U+2580 and the bottom one as
// background. Lines all have the same cell width.
func Image(img image.Image, cols, rows int, profile termenv.Profile) ([]string, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrImageEmpty
	}
	fitted := imaging.Sharpen(logoFit(img, cols, rows*2), ImageSharpen)
	return logoHalfblocks(fitted, profile), nil
}

// logoFit scales img to fit maxW x maxH pixels keeping its aspect ratio.
// Images that already fit are only converted, never upscaled.
func logoFit(img image.Image, maxW, maxH int) *image.NRGBA {
	maxW = max(maxW, 1)
	maxH = max(maxH, 1)
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	if srcW <= maxW && srcH <= maxH {
		return imaging.Clone(img)
	}

	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	dstW := max(int(math.Round(float64(srcW)*scale)), 1)
	dstH := max(int(math.Round(float64(srcH)*scale)), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}

// logoHalfblocks draws an NRGBA image two pixel rows per line. Fully
// transparent pixels leave the terminal background showing.
func logoHalfblocks(img *image.NRGBA, profile termenv.Profile) []string {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	lines := make([]string, 0, (h+1)/2)
	for y := 0; y < h; y += 2 {
		var b strings.Builder
		for x := 0; x < w; x++ {
			top := img.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			var bot color.NRGBA
			if y+1 < h {
				bot = img.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y+1)
			}

			switch {
			case top.A == 0 && bot.A == 0:
				b.WriteString(" ")
			case top.A == 0:
				b.WriteString(profile.String("▄").Foreground(profile.FromColor(bot)).String())
			case bot.A == 0:
				b.WriteString(profile.String("▀").Foreground(profile.FromColor(top)).String())
			default:
				b.WriteString(profile.String("▀").
					Foreground(profile.FromColor(top)).
					Background(profile.FromColor(bot)).
					String())
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
