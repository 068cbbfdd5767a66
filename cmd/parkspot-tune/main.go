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
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v":
			fmt.Printf("parkspot-tune %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h":
			fmt.Println("parkspot-tune - raw foreground counts for choosing the occupancy threshold")
			fmt.Println()
			fmt.Println("Usage: parkspot-tune [image [report]]")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PARKSPOT_TUNE_IMAGE=parkLot.jpg  Reference frame")
			fmt.Println("  PARKSPOT_TUNE_REPORT=out2.txt    Text report")
			fmt.Println("  PARKSPOT_TUNE_WIDTH=612          Width split into columns")
			fmt.Println("  PARKSPOT_TUNE_COLUMNS=7          Number of regions")
			fmt.Println("  PARKSPOT_TUNE_Y=60               Top of the region band")
			fmt.Println("  PARKSPOT_TUNE_HEIGHT=160         Height of the region band")
			fmt.Println("  PARKSPOT_TUNE_MASK=mask.png      Save the processed mask")
			return
		}
	}

	os.Exit(cli.Execute(cli.CommandTune, os.Args[1:], os.Stdout, os.Stderr))
}
