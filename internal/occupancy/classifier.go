package occupancy

import (
	"image"

	"github.com/ironsheep/parkspot/internal/imaging"
	"github.com/ironsheep/parkspot/internal/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultThreshold is the reference foreground count at which a spot is
// considered occupied.
const DefaultThreshold = 900

// ErrInvalidThreshold is returned for a negative occupancy threshold.
var ErrInvalidThreshold = errors.New("invalid occupancy threshold")

// SpotResult is the classification of a single spot.
type SpotResult struct {
	// Index is the 0-based position of the spot in the input list.
	Index int `json:"index"`

	// Occupied is true when Count >= threshold.
	Occupied bool `json:"occupied"`

	// Count is the number of foreground mask pixels inside the spot.
	Count int `json:"count"`

	// Clipped is true when the spot extended past the frame and only the
	// part inside the frame was counted.
	Clipped bool `json:"clipped,omitempty"`
}

// Summary aggregates the classification of all spots.
//
// Free + Occupied == Total always holds.
type Summary struct {
	Total    int `json:"total_slots"`
	Free     int `json:"free_slots"`
	Occupied int `json:"occupied_slots"`
}

// Result contains the summary and the per-spot details of a classification.
type Result struct {
	// Summary is the externally visible result.
	Summary Summary `json:"summary"`

	// Spots holds one entry per input spot, in input order.
	Spots []SpotResult `json:"spots"`

	// Mask is the processed mask the counts were taken from. It is nil when
	// the result was produced by ClassifyMask.
	Mask *image.Gray `json:"-"`
}

// Classifier turns frames into occupancy results.
//
// A Classifier holds only immutable configuration and may be reused for any
// number of frames.
type Classifier struct {
	params imaging.MaskParams
	policy BoundsPolicy
	log    logrus.FieldLogger
}

// NewClassifier creates a classifier with the given pipeline parameters and
// out-of-bounds policy. A nil logger discards log output.
func NewClassifier(params imaging.MaskParams, policy BoundsPolicy, log logrus.FieldLogger) *Classifier {
	if log == nil {
		log = logging.Discard()
	}
	if policy == "" {
		policy = BoundsClip
	}
	return &Classifier{params: params, policy: policy, log: log}
}

// Params returns the pipeline parameters of the classifier.
func (c *Classifier) Params() imaging.MaskParams {
	return c.params
}

// Classify builds the processed mask of frame and classifies every spot.
//
// Parameters:
//   - frame: A successfully decoded frame. It is never modified.
//   - spots: Spot rectangles in frame pixel coordinates.
//   - threshold: Foreground count at which a spot is occupied. Must be >= 0.
//
// Returns:
//   - *Result: Summary, per-spot results in input order, and the mask.
//   - error: ErrInvalidThreshold, ErrInvalidSpot, or imaging.ErrInvalidParams.
func (c *Classifier) Classify(frame image.Image, spots []Spot, threshold int) (*Result, error) {
	if err := checkInputs(spots, threshold); err != nil {
		return nil, err
	}

	mask, err := imaging.BuildMask(frame, c.params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build mask")
	}

	result, err := c.ClassifyMask(mask, spots, threshold)
	if err != nil {
		return nil, err
	}
	result.Mask = mask
	return result, nil
}

// ClassifyMask classifies spots against an already processed mask.
//
// This is the counting half of Classify; it is useful when the mask is
// produced elsewhere or reused across thresholds.
func (c *Classifier) ClassifyMask(mask *image.Gray, spots []Spot, threshold int) (*Result, error) {
	if err := checkInputs(spots, threshold); err != nil {
		return nil, err
	}

	bounds := mask.Bounds()
	results := make([]SpotResult, len(spots))

	for i, s := range spots {
		rect, clipped := imaging.ClipRect(s.Rect(), bounds)
		if clipped {
			if c.policy == BoundsReject {
				return nil, errors.Wrapf(ErrInvalidSpot, "spot %d %s is outside the %dx%d frame",
					i+1, s, bounds.Dx(), bounds.Dy())
			}
			c.log.WithFields(logrus.Fields{
				"spot":    i + 1,
				"counted": rect.Dx() * rect.Dy(),
				"area":    s.Area(),
			}).Warn("spot extends past the frame, counting the visible part only")
		}

		count := imaging.CountForeground(mask, rect)
		results[i] = SpotResult{
			Index:    i,
			Occupied: count >= threshold,
			Count:    count,
			Clipped:  clipped,
		}

		c.log.WithFields(logrus.Fields{
			"spot":     i + 1,
			"count":    count,
			"occupied": results[i].Occupied,
		}).Debug("classified spot")
	}

	return &Result{
		Summary: Summarize(results),
		Spots:   results,
	}, nil
}

// Summarize aggregates spot results into free and occupied totals.
func Summarize(results []SpotResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Occupied {
			s.Occupied++
		}
	}
	s.Free = s.Total - s.Occupied
	return s
}

func checkInputs(spots []Spot, threshold int) error {
	if threshold < 0 {
		return errors.Wrapf(ErrInvalidThreshold, "threshold %d must not be negative", threshold)
	}
	return ValidateSpots(spots)
}
