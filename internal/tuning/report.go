package tuning

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/ironsheep/parkspot/internal/imaging"
	"github.com/ironsheep/parkspot/internal/logging"
	"github.com/ironsheep/parkspot/internal/occupancy"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultReportFile is the report written when no path is given.
const DefaultReportFile = "out2.txt"

// RegionCount is the measurement of one grid region.
type RegionCount struct {
	Region occupancy.Spot `json:"region"`
	Count  int            `json:"count"`

	// PercentFilled is the share of the region covered by foreground.
	PercentFilled float64 `json:"percent_filled"`
}

// Report holds the per-region counts of a tuning run.
type Report struct {
	Regions []RegionCount `json:"regions"`
	Stats   Stats         `json:"stats"`

	// SuggestedThreshold is only meaningful when HasSuggestion is true.
	SuggestedThreshold int  `json:"suggested_threshold,omitempty"`
	HasSuggestion      bool `json:"has_suggestion"`

	// Mask is the processed mask the counts were taken from.
	Mask *image.Gray `json:"-"`
}

// Run builds the processed mask of frame and measures every grid region.
func Run(frame image.Image, grid Grid, params imaging.MaskParams, log logrus.FieldLogger) (*Report, error) {
	regions, err := grid.Regions()
	if err != nil {
		return nil, err
	}

	mask, err := imaging.BuildMask(frame, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build mask")
	}

	report := Measure(mask, regions, log)
	report.Mask = mask
	return report, nil
}

// Measure counts foreground pixels of mask inside every region. Regions are
// clipped to the mask. A nil logger discards log output.
func Measure(mask *image.Gray, regions []occupancy.Spot, log logrus.FieldLogger) *Report {
	if log == nil {
		log = logging.Discard()
	}
	report := &Report{Regions: make([]RegionCount, len(regions))}
	counts := make([]int, len(regions))

	for i, r := range regions {
		if _, clipped := imaging.ClipRect(r.Rect(), mask.Bounds()); clipped {
			log.WithField("region", i+1).Warn("tuning region extends past the frame")
		}
		m := imaging.MeasureMask(mask, r.Rect())
		report.Regions[i] = RegionCount{Region: r, Count: m.Foreground, PercentFilled: m.PercentFilled}
		counts[i] = m.Foreground
	}

	report.Stats = ComputeStats(counts)
	report.SuggestedThreshold, report.HasSuggestion = SuggestThreshold(counts)
	return report
}

// Counts returns the foreground count of every region in order.
func (r *Report) Counts() []int {
	counts := make([]int, len(r.Regions))
	for i, rc := range r.Regions {
		counts[i] = rc.Count
	}
	return counts
}

// WriteText writes one line per region followed by a statistics footer:
//
//	Spot 1 (x=0, y=60, w=87, h=160): 1234 pixels
//	...
//	# min=... max=... mean=... stddev=... median=...
//	# suggested threshold: 900
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for i, rc := range r.Regions {
		fmt.Fprintf(bw, "Spot %d (x=%d, y=%d, w=%d, h=%d): %d pixels\n",
			i+1, rc.Region.X, rc.Region.Y, rc.Region.Width, rc.Region.Height, rc.Count)
	}

	s := r.Stats
	fmt.Fprintf(bw, "# min=%.0f max=%.0f mean=%.1f stddev=%.1f median=%.0f\n",
		s.Min, s.Max, s.Mean, s.StdDev, s.Median)
	if r.HasSuggestion {
		fmt.Fprintf(bw, "# suggested threshold: %d\n", r.SuggestedThreshold)
	} else {
		fmt.Fprintln(bw, "# suggested threshold: none (counts do not separate)")
	}

	return bw.Flush()
}

// WriteFile writes the text report to path, replacing any existing file.
func (r *Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create report %s", path)
	}

	if err := r.WriteText(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write report %s", path)
	}
	return f.Close()
}
