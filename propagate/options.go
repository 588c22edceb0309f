package propagate

import "errors"

// Sentinel errors for propagation failures (§7 "Input validation").
var (
	ErrEmptyCrew          = errors.New("propagate: ignition crew must have at least one igniter")
	ErrIgniterOutOfRange  = errors.New("propagate: path references an igniter index outside the crew")
	ErrNonPositiveVelocity = errors.New("propagate: igniter velocity must be > 0")
)

// Options configures one Forward call (§6 configuration surface: spacing,
// heat_delay, sync_end_time, return_trip).
type Options struct {
	// Spacing is the igniter stagger distance in meters, used by the
	// k=0,j>0 start-time rule.
	Spacing float64
	// HeatDelay is the extra seconds added once at the start of each
	// non-first heat.
	HeatDelay float64
	// SyncEndTime aligns every path's end time within a heat to the
	// heat's latest end time (e.g. ring ignition closing the loop).
	SyncEndTime bool
	// ReturnTrip accounts for travel back to the starting side between
	// heats by adding L_p/v to the first igniter's start time in each
	// non-first heat.
	ReturnTrip bool
}
