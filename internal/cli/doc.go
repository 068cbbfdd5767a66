// Package cli implements the parkspot commands on top of the occupancy,
// simulation and tuning packages.
//
// # Output Contract
//
// Every command writes exactly one JSON object to its output, followed by a
// newline, and nothing else:
//
//   - read:     {"total_slots":7,"free_slots":5,"occupied_slots":2}
//   - simulate: the same three keys plus _debug_physical and
//     _debug_simulated_arriving, indented by two spaces
//   - tune:     the report file name, per-region counts, statistics and the
//     suggested threshold
//
// Any failure (unreadable frame, bad lot file, unusable offset database) is
// reported as {"error": "<message>"} with no other keys. Commands never
// signal domain errors through the process exit status; Run only returns an
// error when the payload itself could not be written.
//
// # Debug Output
//
// When configured, the read and simulate commands also save an annotated copy
// of the frame and per-spot crops of the processed mask. Failures there are
// logged and never change the payload.
package cli
