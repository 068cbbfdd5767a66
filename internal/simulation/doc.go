// Package simulation layers an artificial count of arriving cars on top of the
// physically detected occupancy of a lot.
//
// The demo setup has a single fixed camera frame, so a booking flow cannot be
// shown by changing the picture. Instead a persisted offset records how many
// extra cars have "arrived" and is added to the physical occupied count.
//
// # Offset Store
//
// OffsetStore owns the offset and enforces its bounds: every value written is
// clamped to [0, capacity], where capacity is the number of spots in the lot.
// Reads never fail; missing or corrupt storage reads as zero.
//
// Storage is pluggable through the Backend interface:
//   - FileBackend keeps one integer in a plain text file
//   - SQLiteBackend keeps the value in a SQLite table and records every write
//     in an event history
//
// # Commands
//
// The simulate command accepts arrival, depart (or departure), reset and
// status. Unknown keywords fall back to status.
//
// Access is assumed to come from one process at a time; two concurrent
// writers race on the read-modify-write cycle.
package simulation
