package cli

import (
	"encoding/json"

	"github.com/ironsheep/parkspot/internal/simulation"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/sjson"
)

// handleSimulate applies the command in args[0] (default status) to the
// offset store, then reports the configured frame with the offset applied.
func (r *Runner) handleSimulate(args []string) ([]byte, error) {
	keyword := ""
	if len(args) > 0 {
		keyword = args[0]
	}
	cmd, known := simulation.ParseCommand(keyword)
	if !known {
		r.log.WithField("command", keyword).Warn("unknown simulation command, reporting status")
	}

	lot, err := r.cfg.ResolveLot()
	if err != nil {
		return nil, err
	}

	backend, closeBackend, err := r.openBackend()
	if err != nil {
		return nil, err
	}
	defer closeBackend()

	store := simulation.NewOffsetStore(backend, len(lot.Spots), r.log)
	offset, err := simulation.Execute(store, cmd)
	if err != nil {
		return nil, err
	}
	r.log.WithFields(logrus.Fields{"command": cmd, "offset": offset}).Info("simulation offset updated")
	r.logLastEvent(backend)

	_, result, err := r.classifyFrame(r.cfg.SimImage)
	if err != nil {
		return nil, err
	}

	return simulatedJSON(simulation.Apply(result.Summary, store.Read()))
}

// simulatedJSON renders the simulated summary followed by the debug fields.
func simulatedJSON(sim simulation.Simulated) ([]byte, error) {
	b, err := json.Marshal(sim.Summary)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode summary")
	}
	if b, err = sjson.SetBytes(b, "_debug_physical", sim.Physical); err != nil {
		return nil, errors.Wrap(err, "failed to add physical count")
	}
	if b, err = sjson.SetBytes(b, "_debug_simulated_arriving", sim.Arriving); err != nil {
		return nil, errors.Wrap(err, "failed to add simulated arrivals")
	}
	return indented(b), nil
}

// openBackend returns the configured offset backend and its cleanup func.
func (r *Runner) openBackend() (simulation.Backend, func(), error) {
	switch r.cfg.SimStore {
	case "", "file":
		return simulation.NewFileBackend(r.cfg.SimIndex), func() {}, nil
	case "sqlite":
		b, err := simulation.NewSQLiteBackend(r.cfg.SimDatabase)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to open offset database %s", r.cfg.SimDatabase)
		}
		return b, func() { b.Close() }, nil
	default:
		return nil, nil, errors.Errorf("unknown simulation store %q (want file or sqlite)", r.cfg.SimStore)
	}
}

func (r *Runner) logLastEvent(backend simulation.Backend) {
	db, ok := backend.(*simulation.SQLiteBackend)
	if !ok {
		return
	}
	events, err := db.Events(1)
	if err != nil || len(events) == 0 {
		return
	}
	r.log.WithFields(logrus.Fields{
		"value": events[0].Value,
		"at":    events[0].CreatedAt,
	}).Debug("last offset change")
}
