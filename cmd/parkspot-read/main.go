package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/parkspot/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and --help flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v":
			fmt.Printf("parkspot-read %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h":
			fmt.Println("parkspot-read - count free and occupied parking spots in a camera frame")
			fmt.Println()
			fmt.Println("Usage: parkspot-read [image]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PARKSPOT_IMAGE=image.png          Frame read when no argument is given")
			fmt.Println("  PARKSPOT_LOT_FILE=lot.json        Spots, threshold and pipeline parameters")
			fmt.Println("  PARKSPOT_THRESHOLD=900            Override the occupancy threshold")
			fmt.Println("  PARKSPOT_SPOT_BOUNDS=clip|reject  Spots past the frame edge")
			fmt.Println("  PARKSPOT_DEBUG_IMAGE=out.jpg      Save an annotated copy of the frame")
			fmt.Println("  PARKSPOT_DEBUG_SPOTS=dir          Save each spot's mask as spot_<n>.png")
			fmt.Println("  PARKSPOT_LOG_LEVEL=debug          Log level on stderr (default warn)")
			fmt.Println()
			fmt.Println("Prints one JSON object: {\"total_slots\", \"free_slots\", \"occupied_slots\"}")
			fmt.Println("or {\"error\"} when the frame cannot be read.")
			return
		}
	}

	os.Exit(cli.Execute(cli.CommandRead, os.Args[1:], os.Stdout, os.Stderr))
}
