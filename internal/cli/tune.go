package cli

import (
	"encoding/json"

	"github.com/ironsheep/parkspot/internal/imaging"
	"github.com/ironsheep/parkspot/internal/tuning"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// tunePayload is the JSON summary of a tuning run.
type tunePayload struct {
	ReportFile string `json:"report_file"`
	*tuning.Report
}

// handleTune measures the tuning grid on args[0] (or the configured frame)
// and writes the text report to args[1] (or the configured report file).
func (r *Runner) handleTune(args []string) ([]byte, error) {
	imagePath, reportPath := r.cfg.TuneImage, r.cfg.TuneReport
	if len(args) > 0 && args[0] != "" {
		imagePath = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		reportPath = args[1]
	}

	lot, err := r.cfg.ResolveLot()
	if err != nil {
		return nil, err
	}

	frame, _, err := imaging.Load(imagePath)
	if err != nil {
		return nil, err
	}

	report, err := tuning.Run(frame, r.cfg.TuneGrid, lot.Params, r.log)
	if err != nil {
		return nil, err
	}
	if err := report.WriteFile(reportPath); err != nil {
		return nil, err
	}
	r.log.WithFields(logrus.Fields{
		"report":  reportPath,
		"regions": len(report.Regions),
	}).Info("tuning report written")

	if r.cfg.TuneMask != "" {
		if err := imaging.Save(r.cfg.TuneMask, report.Mask); err != nil {
			r.log.WithError(err).WithField("path", r.cfg.TuneMask).Warn("failed to save tuning mask")
		}
	}

	b, err := json.Marshal(tunePayload{ReportFile: reportPath, Report: report})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode tuning report")
	}
	return indented(b), nil
}
