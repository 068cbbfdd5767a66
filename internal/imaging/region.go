package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ClipRect intersects a rectangle with image bounds.
//
// Returns the intersection and whether any part of r lay outside bounds.
// The intersection is empty when r does not overlap bounds at all.
func ClipRect(r, bounds image.Rectangle) (image.Rectangle, bool) {
	clipped := r.Intersect(bounds)
	return clipped, clipped != r
}

// CountForeground counts the non-zero pixels of mask inside r.
//
// The rectangle is clipped to the mask bounds first; pixels outside the mask
// are never counted.
func CountForeground(mask *image.Gray, r image.Rectangle) int {
	r, _ = ClipRect(r, mask.Bounds())
	if r.Empty() {
		return 0
	}

	count := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := mask.Pix[mask.PixOffset(r.Min.X, y):mask.PixOffset(r.Max.X, y)]
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	return count
}

// CropMask extracts a rectangular region of a mask as a new image with
// origin (0,0).
//
// The rectangle is clipped to the mask bounds. It is an error for the
// rectangle to fall entirely outside the mask.
func CropMask(mask *image.Gray, r image.Rectangle) (*image.NRGBA, error) {
	clipped, _ := ClipRect(r, mask.Bounds())
	if clipped.Empty() {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside mask bounds (%d,%d)-(%d,%d)",
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y,
			mask.Bounds().Min.X, mask.Bounds().Min.Y, mask.Bounds().Max.X, mask.Bounds().Max.Y)
	}
	return imaging.Crop(mask, clipped), nil
}
