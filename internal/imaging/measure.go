package imaging

import (
	"image"
	"math"
)

// MaskStats describes the foreground coverage of a region of a mask.
type MaskStats struct {
	Foreground    int     `json:"foreground"`
	TotalPixels   int     `json:"total_pixels"`
	PercentFilled float64 `json:"percent_filled"`
}

// MeasureMask counts foreground coverage of a mask region.
//
// The region is clipped to the mask first, so TotalPixels is the clipped
// area. An empty intersection yields zero stats.
func MeasureMask(mask *image.Gray, r image.Rectangle) MaskStats {
	clipped, _ := ClipRect(r, mask.Bounds())
	total := clipped.Dx() * clipped.Dy()
	if total == 0 {
		return MaskStats{}
	}

	fg := CountForeground(mask, clipped)
	return MaskStats{
		Foreground:    fg,
		TotalPixels:   total,
		PercentFilled: math.Round(float64(fg)/float64(total)*1000) / 10,
	}
}
