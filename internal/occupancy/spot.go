package occupancy

import (
	"fmt"
	"image"

	"github.com/pkg/errors"
)

// ErrInvalidSpot is returned for spots with a negative origin, a
// non-positive size, or (with BoundsReject) a rectangle outside the frame.
var ErrInvalidSpot = errors.New("invalid spot")

// Spot is a rectangular parking space in frame pixel coordinates.
//
// (X, Y) is the top-left corner (inclusive); the rectangle covers Width
// columns and Height rows.
type Spot struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect returns the spot as an image.Rectangle.
func (s Spot) Rect() image.Rectangle {
	return image.Rect(s.X, s.Y, s.X+s.Width, s.Y+s.Height)
}

// Area returns the number of pixels covered by the spot.
func (s Spot) Area() int {
	return s.Width * s.Height
}

func (s Spot) String() string {
	return fmt.Sprintf("(x=%d, y=%d, w=%d, h=%d)", s.X, s.Y, s.Width, s.Height)
}

// Validate checks the frame-independent invariants of a spot.
func (s Spot) Validate() error {
	if s.X < 0 || s.Y < 0 {
		return errors.Wrapf(ErrInvalidSpot, "spot %s has a negative origin", s)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Wrapf(ErrInvalidSpot, "spot %s must have a positive size", s)
	}
	return nil
}

// ValidateSpots validates every spot of a lot, reporting the first failure
// with its 1-based position.
func ValidateSpots(spots []Spot) error {
	for i, s := range spots {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "spot %d", i+1)
		}
	}
	return nil
}

// BoundsPolicy decides what happens to a spot that is not fully inside the
// frame.
type BoundsPolicy string

const (
	// BoundsClip counts only the part of the spot inside the frame.
	BoundsClip BoundsPolicy = "clip"

	// BoundsReject fails the classification with ErrInvalidSpot.
	BoundsReject BoundsPolicy = "reject"
)

// ParseBoundsPolicy converts a configuration string to a BoundsPolicy.
// The empty string selects BoundsClip.
func ParseBoundsPolicy(s string) (BoundsPolicy, error) {
	switch BoundsPolicy(s) {
	case "", BoundsClip:
		return BoundsClip, nil
	case BoundsReject:
		return BoundsReject, nil
	default:
		return "", errors.Errorf("unknown spot bounds policy %q (want clip or reject)", s)
	}
}
