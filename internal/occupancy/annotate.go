package occupancy

import (
	"image"
	"image/color"

	"github.com/ironsheep/parkspot/internal/imaging"
)

// Style configures the debug overlay drawn by Annotate.
type Style struct {
	FreeColor         color.Color
	OccupiedColor     color.Color
	FreeThickness     int
	OccupiedThickness int

	// FillAlpha tints each spot with its state color (0 disables).
	FillAlpha float64

	// Labels draws the 1-based spot number in each rectangle.
	Labels bool
}

// DefaultStyle outlines free spots in thick green and occupied spots in thin
// red, without fill or labels.
func DefaultStyle() Style {
	return Style{
		FreeColor:         color.NRGBA{0, 255, 0, 255},
		OccupiedColor:     color.NRGBA{255, 0, 0, 255},
		FreeThickness:     5,
		OccupiedThickness: 2,
	}
}

// Annotate draws every spot onto a copy of frame, colored by its state in
// result. The frame and result are not modified.
//
// Spots without a matching entry in result.Spots are skipped.
func Annotate(frame image.Image, spots []Spot, result *Result, style Style) *image.NRGBA {
	// Spot coordinates are relative to the frame's top-left pixel, which is
	// also the origin of the annotated copy.
	boxes := make([]imaging.Box, 0, len(spots))

	for _, r := range result.Spots {
		if r.Index < 0 || r.Index >= len(spots) {
			continue
		}
		box := imaging.Box{
			Rect:      spots[r.Index].Rect(),
			Color:     style.FreeColor,
			Thickness: style.FreeThickness,
			FillAlpha: style.FillAlpha,
		}
		if r.Occupied {
			box.Color = style.OccupiedColor
			box.Thickness = style.OccupiedThickness
		}
		if style.Labels {
			box.Label = imaging.SpotLabel(r.Index)
		}
		boxes = append(boxes, box)
	}

	return imaging.Annotate(frame, boxes)
}
