package preprocess

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Apply runs a recipe's steps in order and returns the filtered image.
// The input image is never modified; each step produces a new buffer.
func Apply(img image.Image, recipe Recipe) (image.Image, error) {
	out := img
	for _, step := range recipe.Steps {
		switch step.Op {
		case OpDenoise:
			out = imaging.Blur(out, step.Amount)
		case OpContrast:
			out = imaging.AdjustContrast(out, step.Amount)
		case OpSharpen:
			out = imaging.Sharpen(out, step.Amount)
		case OpThreshold:
			out = binarize(out, clampLevel(step.Amount))
		default:
			return nil, fmt.Errorf("preprocess: unknown op %q in recipe %q", step.Op, recipe.Name)
		}
	}
	return out, nil
}

// Rotate returns the image rotated clockwise by the given angle.
// Only the right angles used by the decode strategies are accepted;
// any other angle returns the image unchanged.
func Rotate(img image.Image, angle int) image.Image {
	switch angle {
	case 90:
		return imaging.Rotate270(img) // imaging rotates counter-clockwise
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func clampLevel(amount float64) uint8 {
	if amount < 0 {
		return 0
	}
	if amount > 255 {
		return 255
	}
	return uint8(amount)
}

// binarize converts to grayscale and maps every pixel to pure black or
// white around the cutoff level.
func binarize(img image.Image, level uint8) *image.Gray {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			// NRGBA grayscale: all channels equal, take R.
			v := gray.NRGBAAt(b.Min.X+x, b.Min.Y+y).R
			if v >= level {
				out.Pix[y*out.Stride+x] = 255
			} else {
				out.Pix[y*out.Stride+x] = 0
			}
		}
	}
	return out
}
