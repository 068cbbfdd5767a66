package config

import (
	"os"

	"github.com/ironsheep/parkspot/internal/imaging"
	"github.com/ironsheep/parkspot/internal/occupancy"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ErrInvalidLot is returned for a lot description that cannot be used.
var ErrInvalidLot = errors.New("invalid lot configuration")

// Lot is the static description of a monitored parking lot.
type Lot struct {
	// Spots are the parking spaces in frame pixel coordinates, in report order.
	Spots []occupancy.Spot `json:"spots"`

	// Threshold is the foreground count at which a spot is occupied.
	Threshold int `json:"threshold"`

	// Params are the mask pipeline parameters.
	Params imaging.MaskParams `json:"pipeline"`
}

// DefaultLot returns the reference lot: seven 87x160 spots side by side at
// y = 60 on a 612 pixel wide frame, threshold 900, reference pipeline.
func DefaultLot() *Lot {
	spots := make([]occupancy.Spot, 7)
	for i := range spots {
		spots[i] = occupancy.Spot{X: i * 87, Y: 60, Width: 87, Height: 160}
	}
	return &Lot{
		Spots:     spots,
		Threshold: occupancy.DefaultThreshold,
		Params:    imaging.DefaultMaskParams(),
	}
}

// Validate checks the lot once, at load time.
func (l *Lot) Validate() error {
	if l.Threshold < 0 {
		return errors.Wrapf(ErrInvalidLot, "threshold %d must not be negative", l.Threshold)
	}
	if err := occupancy.ValidateSpots(l.Spots); err != nil {
		return errors.Wrapf(ErrInvalidLot, "%v", err)
	}
	if err := l.Params.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidLot, "%v", err)
	}
	return nil
}

// LoadLot reads a lot description from a JSON file. See ParseLot.
func LoadLot(path string) (*Lot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read lot file %s", path)
	}
	lot, err := ParseLot(data)
	if err != nil {
		return nil, errors.Wrapf(err, "lot file %s", path)
	}
	return lot, nil
}

// ParseLot parses a lot description:
//
//	{
//	  "threshold": 900,
//	  "spots": [{"x": 0, "y": 60, "width": 87, "height": 160}, [87, 60, 87, 160]],
//	  "pipeline": {"block_size": 25, "bias": 16}
//	}
//
// Spots are objects or [x, y, width, height] tuples. Missing keys keep the
// values of DefaultLot, so an empty object yields the reference lot. The
// result is validated.
func ParseLot(data []byte) (*Lot, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Wrap(ErrInvalidLot, "malformed JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.Wrap(ErrInvalidLot, "lot must be a JSON object")
	}

	lot := DefaultLot()

	if v := root.Get("threshold"); v.Exists() {
		lot.Threshold = int(v.Int())
	}

	if v := root.Get("spots"); v.Exists() {
		spots, err := parseSpots(v)
		if err != nil {
			return nil, err
		}
		lot.Spots = spots
	}

	if v := root.Get("pipeline"); v.Exists() {
		parsePipeline(v, &lot.Params)
	}

	if err := lot.Validate(); err != nil {
		return nil, err
	}
	return lot, nil
}

func parseSpots(v gjson.Result) ([]occupancy.Spot, error) {
	if !v.IsArray() {
		return nil, errors.Wrap(ErrInvalidLot, "spots must be an array")
	}

	var spots []occupancy.Spot
	var parseErr error

	v.ForEach(func(_, s gjson.Result) bool {
		n := len(spots) + 1
		switch {
		case s.IsObject():
			for _, key := range []string{"x", "y", "width", "height"} {
				if !s.Get(key).Exists() {
					parseErr = errors.Wrapf(ErrInvalidLot, "spot %d is missing %q", n, key)
					return false
				}
			}
			spots = append(spots, occupancy.Spot{
				X:      int(s.Get("x").Int()),
				Y:      int(s.Get("y").Int()),
				Width:  int(s.Get("width").Int()),
				Height: int(s.Get("height").Int()),
			})
		case s.IsArray():
			t := s.Array()
			if len(t) != 4 {
				parseErr = errors.Wrapf(ErrInvalidLot, "spot %d must have 4 values, got %d", n, len(t))
				return false
			}
			spots = append(spots, occupancy.Spot{
				X:      int(t[0].Int()),
				Y:      int(t[1].Int()),
				Width:  int(t[2].Int()),
				Height: int(t[3].Int()),
			})
		default:
			parseErr = errors.Wrapf(ErrInvalidLot, "spot %d must be an object or an array", n)
			return false
		}
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return spots, nil
}

func parsePipeline(v gjson.Result, p *imaging.MaskParams) {
	ints := map[string]*int{
		"blur_kernel":       &p.BlurKernel,
		"block_size":        &p.BlockSize,
		"bias":              &p.Bias,
		"median_kernel":     &p.MedianKernel,
		"dilate_kernel":     &p.DilateKernel,
		"dilate_iterations": &p.DilateIterations,
	}
	for key, dst := range ints {
		if f := v.Get(key); f.Exists() {
			*dst = int(f.Int())
		}
	}
	if f := v.Get("blur_sigma"); f.Exists() {
		p.BlurSigma = f.Float()
	}
	if f := v.Get("adaptive_method"); f.Exists() {
		p.AdaptiveMethod = imaging.AdaptiveMethod(f.String())
	}
}

// ResolveLot returns the lot for cfg: the file named by LotFile or the
// built-in lot, with the PARKSPOT_THRESHOLD and PARKSPOT_ADAPTIVE_METHOD
// overrides applied and the result validated.
func (c *Config) ResolveLot() (*Lot, error) {
	lot := DefaultLot()
	if c.LotFile != "" {
		var err error
		if lot, err = LoadLot(c.LotFile); err != nil {
			return nil, err
		}
	}

	if c.Threshold > 0 {
		lot.Threshold = c.Threshold
	}
	if c.AdaptiveMethod != "" {
		lot.Params.AdaptiveMethod = imaging.AdaptiveMethod(c.AdaptiveMethod)
	}

	if err := lot.Validate(); err != nil {
		return nil, err
	}
	return lot, nil
}

// BoundsPolicy parses SpotBounds.
func (c *Config) BoundsPolicy() (occupancy.BoundsPolicy, error) {
	return occupancy.ParseBoundsPolicy(c.SpotBounds)
}
