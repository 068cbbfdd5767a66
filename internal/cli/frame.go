package cli

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/ironsheep/parkspot/internal/config"
	"github.com/ironsheep/parkspot/internal/imaging"
	"github.com/ironsheep/parkspot/internal/occupancy"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// errorMessage returns the text of the error payload. Image load failures
// keep their fixed message; anything else reports the full chain.
func errorMessage(err error) string {
	var loadErr *imaging.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Error()
	}
	return err.Error()
}

// classifyFrame loads the lot and the frame at path and classifies it.
func (r *Runner) classifyFrame(path string) (*config.Lot, *occupancy.Result, error) {
	lot, err := r.cfg.ResolveLot()
	if err != nil {
		return nil, nil, err
	}
	policy, err := r.cfg.BoundsPolicy()
	if err != nil {
		return nil, nil, err
	}

	frame, format, err := imaging.Load(path)
	if err != nil {
		return nil, nil, err
	}
	info := imaging.Describe(path, frame, format)
	r.log.WithFields(logrus.Fields{
		"path":   info.Path,
		"format": info.Format,
		"width":  info.Width,
		"height": info.Height,
		"bytes":  info.FileSizeBytes,
	}).Debug("frame loaded")

	classifier := occupancy.NewClassifier(lot.Params, policy, r.log)
	result, err := classifier.Classify(frame, lot.Spots, lot.Threshold)
	if err != nil {
		return nil, nil, err
	}

	r.saveDebugOutput(frame, lot.Spots, result)
	return lot, result, nil
}

// saveDebugOutput writes the annotated overlay and the per-spot mask crops
// when they are configured. Errors are logged only.
func (r *Runner) saveDebugOutput(frame image.Image, spots []occupancy.Spot, result *occupancy.Result) {
	if r.cfg.DebugImage != "" {
		if err := r.saveOverlay(frame, spots, result); err != nil {
			r.log.WithError(err).WithField("path", r.cfg.DebugImage).Warn("failed to save debug image")
		}
	}

	if r.cfg.DebugSpots != "" && result.Mask != nil {
		for i, s := range spots {
			path := filepath.Join(r.cfg.DebugSpots, fmt.Sprintf("spot_%d.png", i+1))
			crop, err := imaging.CropMask(result.Mask, s.Rect())
			if err == nil {
				err = imaging.Save(path, crop)
			}
			if err != nil {
				r.log.WithError(err).WithField("spot", i+1).Warn("failed to save spot mask")
			}
		}
	}
}

func (r *Runner) saveOverlay(frame image.Image, spots []occupancy.Spot, result *occupancy.Result) error {
	style := occupancy.DefaultStyle()

	free, err := imaging.ParseColor(r.cfg.FreeColor)
	if err != nil {
		return errors.Wrap(err, "free spot color")
	}
	occupied, err := imaging.ParseColor(r.cfg.OccupiedColor)
	if err != nil {
		return errors.Wrap(err, "occupied spot color")
	}
	style.FreeColor = free
	style.OccupiedColor = occupied
	style.Labels = true

	return imaging.Save(r.cfg.DebugImage, occupancy.Annotate(frame, spots, result, style))
}
