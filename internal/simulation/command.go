package simulation

import (
	"strings"
)

// Command is a simulation action.
type Command string

const (
	CommandArrival Command = "arrival"
	CommandDepart  Command = "depart"
	CommandReset   Command = "reset"
	CommandStatus  Command = "status"
)

// ParseCommand maps a command-line keyword to a Command, ignoring case and
// surrounding whitespace. "departure" is an alias of depart. The boolean is
// false for unknown keywords, which map to CommandStatus.
func ParseCommand(s string) (Command, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arrival":
		return CommandArrival, true
	case "depart", "departure":
		return CommandDepart, true
	case "reset":
		return CommandReset, true
	case "status", "":
		return CommandStatus, true
	default:
		return CommandStatus, false
	}
}

// Execute applies cmd to the store and returns the resulting offset.
// CommandStatus only reads.
func Execute(store *OffsetStore, cmd Command) (int, error) {
	switch cmd {
	case CommandArrival:
		return store.Increment()
	case CommandDepart:
		return store.Decrement()
	case CommandReset:
		return store.Reset()
	default:
		return store.Read(), nil
	}
}
