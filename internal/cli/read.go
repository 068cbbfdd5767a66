package cli

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// handleRead classifies one frame: args[0] or the configured image.
func (r *Runner) handleRead(args []string) ([]byte, error) {
	path := r.cfg.Image
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}

	_, result, err := r.classifyFrame(path)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(result.Summary)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode summary")
	}
	return b, nil
}
