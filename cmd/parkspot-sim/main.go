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
			fmt.Printf("parkspot-sim %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h":
			fmt.Println("parkspot-sim - occupancy of a fixed frame plus simulated arrivals")
			fmt.Println()
			fmt.Println("Usage: parkspot-sim [arrival|depart|departure|reset|status]")
			fmt.Println()
			fmt.Println("Commands:")
			fmt.Println("  arrival      One more car has arrived")
			fmt.Println("  depart       One car has left (alias: departure)")
			fmt.Println("  reset        Clear all simulated arrivals")
			fmt.Println("  status       Report without changing anything (default)")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PARKSPOT_SIM_IMAGE=parkLot.jpg     Frame to classify")
			fmt.Println("  PARKSPOT_SIM_STORE=file|sqlite     Offset storage")
			fmt.Println("  PARKSPOT_SIM_INDEX=sim_index.txt   Offset file (file store)")
			fmt.Println("  PARKSPOT_SIM_DB=sim_index.db       Offset database (sqlite store)")
			fmt.Println("  PARKSPOT_LOG_LEVEL=debug           Log level on stderr (default warn)")
			return
		}
	}

	os.Exit(cli.Execute(cli.CommandSimulate, os.Args[1:], os.Stdout, os.Stderr))
}
