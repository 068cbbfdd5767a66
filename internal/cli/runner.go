package cli

import (
	"encoding/json"
	"io"

	"github.com/ironsheep/parkspot/internal/config"
	"github.com/ironsheep/parkspot/internal/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/pretty"
)

// Command names accepted by Run.
const (
	CommandRead     = "read"
	CommandSimulate = "simulate"
	CommandTune     = "tune"
)

// Runner executes commands against one configuration.
type Runner struct {
	cfg *config.Config
	log logrus.FieldLogger
	out io.Writer
}

// errorPayload is the only shape written on failure.
type errorPayload struct {
	Error string `json:"error"`
}

// New creates a Runner that writes payloads to out. A nil logger discards
// log output.
func New(cfg *config.Config, log logrus.FieldLogger, out io.Writer) *Runner {
	if log == nil {
		log = logging.Discard()
	}
	return &Runner{cfg: cfg, log: log, out: out}
}

// Run executes the named command with its positional arguments and writes
// the resulting payload.
func (r *Runner) Run(command string, args []string) error {
	payload, err := r.execute(command, args)
	if err != nil {
		r.log.WithError(err).WithField("command", command).Warn("command failed")
		payload = errorJSON(err)
	}
	return r.write(payload)
}

// execute dispatches to the command handler. Each handler returns the
// finished JSON payload.
func (r *Runner) execute(command string, args []string) ([]byte, error) {
	switch command {
	case CommandRead:
		return r.handleRead(args)
	case CommandSimulate:
		return r.handleSimulate(args)
	case CommandTune:
		return r.handleTune(args)
	default:
		return nil, errors.Errorf("unknown command: %s", command)
	}
}

func (r *Runner) write(payload []byte) error {
	if len(payload) == 0 || payload[len(payload)-1] != '\n' {
		payload = append(payload, '\n')
	}
	if _, err := r.out.Write(payload); err != nil {
		return errors.Wrap(err, "failed to write payload")
	}
	return nil
}

// errorJSON renders err as {"error": "..."}. The message is the outermost
// description for image load failures, so consumers see
// "Could not read image at <path>" rather than the wrapped I/O detail.
func errorJSON(err error) []byte {
	b, _ := json.Marshal(errorPayload{Error: errorMessage(err)})
	return b
}

// indented re-renders a compact JSON document with two-space indentation.
func indented(compact []byte) []byte {
	return pretty.PrettyOptions(compact, &pretty.Options{Width: 80, Indent: "  "})
}

// Execute loads the configuration from the environment, runs command and
// returns the process exit status. Domain errors still exit 0; only a payload
// that could not be written yields 1.
func Execute(command string, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		if _, werr := stdout.Write(append(errorJSON(err), '\n')); werr != nil {
			return 1
		}
		return 0
	}

	log := logging.New(cfg.LogLevel, stderr)
	if err := New(cfg, log, stdout).Run(command, args); err != nil {
		log.WithError(err).Error("failed to write result")
		return 1
	}
	return 0
}
