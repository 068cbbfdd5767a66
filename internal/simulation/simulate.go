package simulation

import (
	"github.com/ironsheep/parkspot/internal/occupancy"
)

// Simulated is the occupancy summary with the offset applied.
type Simulated struct {
	occupancy.Summary

	// Physical is the occupied count detected in the frame.
	Physical int

	// Arriving is the offset that was added.
	Arriving int
}

// Apply adds offset arriving cars to the physical summary. The occupied count
// saturates at the lot size.
func Apply(physical occupancy.Summary, offset int) Simulated {
	if offset < 0 {
		offset = 0
	}

	occupied := physical.Occupied + offset
	if occupied > physical.Total {
		occupied = physical.Total
	}

	return Simulated{
		Summary: occupancy.Summary{
			Total:    physical.Total,
			Free:     physical.Total - occupied,
			Occupied: occupied,
		},
		Physical: physical.Occupied,
		Arriving: offset,
	}
}
