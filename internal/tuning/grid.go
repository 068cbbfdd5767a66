package tuning

import (
	"github.com/ironsheep/parkspot/internal/occupancy"
	"github.com/pkg/errors"
)

// ErrInvalidGrid is returned for a grid that cannot produce regions.
var ErrInvalidGrid = errors.New("invalid tuning grid")

// Grid is a horizontal band of a frame divided into equal columns.
type Grid struct {
	// Width is the total width split into columns, starting at x = 0.
	Width int `json:"width"`

	// Columns is the number of regions.
	Columns int `json:"columns"`

	// Y and Height locate the band vertically.
	Y      int `json:"y"`
	Height int `json:"height"`
}

// DefaultGrid is the reference layout: seven 87 pixel columns across a 612
// pixel wide frame, 160 pixels high starting at y = 60.
func DefaultGrid() Grid {
	return Grid{Width: 612, Columns: 7, Y: 60, Height: 160}
}

// Validate checks that the grid yields at least one non-empty region.
func (g Grid) Validate() error {
	if g.Columns <= 0 {
		return errors.Wrapf(ErrInvalidGrid, "columns must be positive, got %d", g.Columns)
	}
	if g.Width < g.Columns {
		return errors.Wrapf(ErrInvalidGrid, "width %d is too small for %d columns", g.Width, g.Columns)
	}
	if g.Y < 0 || g.Height <= 0 {
		return errors.Wrapf(ErrInvalidGrid, "band y=%d h=%d is invalid", g.Y, g.Height)
	}
	return nil
}

// Regions returns the column rectangles from left to right.
//
// Every column is Width/Columns wide (integer division), so any remainder on
// the right edge is not covered.
func (g Grid) Regions() ([]occupancy.Spot, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	w := g.Width / g.Columns
	regions := make([]occupancy.Spot, g.Columns)
	for i := range regions {
		regions[i] = occupancy.Spot{X: i * w, Y: g.Y, Width: w, Height: g.Height}
	}
	return regions, nil
}
