// Package crew models the people and machines that lay fire on the ground:
// igniters characterized by walking speed and line style, and the ordered
// crew that works a burn unit together.
package crew

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// FastVelocityThreshold is the walking speed, in m/s, at or above which
// Validate logs a warning — roughly a brisk jog, fast enough that real
// crews rarely sustain it while dripping fire.
const FastVelocityThreshold = 2.5

// Kind classifies how an Igniter lays fire along its path.
type Kind int

const (
	// Continuous lays an unbroken line of fire.
	Continuous Kind = iota
	// Dashed lays alternating dash/gap segments.
	Dashed
	// Dotted drops fire at regular point intervals with no line between.
	Dotted
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	default:
		return "unknown"
	}
}

var (
	// ErrNonPositiveVelocity is returned when an Igniter's velocity is not
	// strictly positive.
	ErrNonPositiveVelocity = errors.New("crew: igniter velocity must be > 0")
	// ErrEmptyCrew is returned when an IgnitionCrew has no igniters.
	ErrEmptyCrew = errors.New("crew: ignition crew must have at least one igniter")
	// ErrMixedVelocity is returned when SameVelocity is set but the
	// igniters' velocities disagree.
	ErrMixedVelocity = errors.New("crew: crew is marked same-velocity but igniters disagree")
)

// Igniter is a single walking or flying ignition source: a velocity in m/s
// and, optionally, the dash/gap lengths (in meters) that determine whether
// it lays a continuous, dashed, or dotted line (§3 Data Model).
type Igniter struct {
	Velocity float64
	// GapLength is the gap between dashes (dashed) or between points
	// (dotted), in meters. Zero means unset.
	GapLength float64
	// DashLength is the length of each dash, in meters. Zero means unset.
	DashLength float64
}

// NewIgniter builds a continuous-line Igniter at the given velocity.
func NewIgniter(velocity float64) Igniter {
	return Igniter{Velocity: velocity}
}

// WithDash returns a copy of ig configured to lay dashes of length dash,
// separated by gap. If gap is 0 the gap equals dash, per §4.6.
func (ig Igniter) WithDash(dash, gap float64) Igniter {
	ig.DashLength = dash
	ig.GapLength = gap
	return ig
}

// WithDots returns a copy of ig configured to drop fire every gap meters
// with no line between drops.
func (ig Igniter) WithDots(gap float64) Igniter {
	ig.DashLength = 0
	ig.GapLength = gap
	return ig
}

// Kind reports how ig lays fire, per the dispatch rule in §4.6: dash_length
// set means dashed (gap defaults to dash if unset); only gap_length set
// means dotted; neither set means continuous.
func (ig Igniter) Kind() Kind {
	switch {
	case ig.DashLength > 0:
		return Dashed
	case ig.GapLength > 0:
		return Dotted
	default:
		return Continuous
	}
}

// effectiveGap returns the gap to use between dashes, defaulting to the
// dash length itself when GapLength is unset.
func (ig Igniter) effectiveGap() float64 {
	if ig.GapLength > 0 {
		return ig.GapLength
	}
	return ig.DashLength
}

// Validate checks ig's invariants, logging a warning (not an error) for an
// unusually fast velocity.
func (ig Igniter) Validate() error {
	if ig.Velocity <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveVelocity, ig.Velocity)
	}
	if ig.Velocity >= FastVelocityThreshold {
		logrus.WithField("velocity", ig.Velocity).Warn("crew: igniter velocity is unusually fast")
	}
	return nil
}

// IgnitionCrew is the ordered set of igniters working a burn unit together.
// Order matters: igniter index j is used directly as the stagger index in
// the temporal propagator (§4.6).
type IgnitionCrew struct {
	Igniters []Igniter
	// SameVelocity records that every member is expected to share one
	// velocity; Validate enforces it when set.
	SameVelocity bool
}

// NewCrew builds an IgnitionCrew from igniters in walking order.
func NewCrew(igniters ...Igniter) IgnitionCrew {
	return IgnitionCrew{Igniters: igniters}
}

// Size returns the number of igniters in the crew.
func (c IgnitionCrew) Size() int { return len(c.Igniters) }

// Validate checks every igniter and the crew-level invariants.
func (c IgnitionCrew) Validate() error {
	if len(c.Igniters) == 0 {
		return ErrEmptyCrew
	}
	for i, ig := range c.Igniters {
		if err := ig.Validate(); err != nil {
			return fmt.Errorf("crew: igniter %d: %w", i, err)
		}
	}
	if c.SameVelocity {
		v := c.Igniters[0].Velocity
		for i, ig := range c.Igniters[1:] {
			if ig.Velocity != v {
				return fmt.Errorf("%w: igniter 0 has %v, igniter %d has %v", ErrMixedVelocity, v, i+1, ig.Velocity)
			}
		}
	}
	return nil
}
