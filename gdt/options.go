package gdt

import "errors"

// Sentinel errors for input validation failures (§7 "Errors").
var (
	ErrEmptySource   = errors.New("gdt: source polyline has no vertices")
	ErrNilDEM        = errors.New("gdt: DEM grid is nil")
	ErrBadNeighborhood = errors.New("gdt: neighborhood size must be >= 1")
	ErrNegativeZMultiplier = errors.New("gdt: z_multiplier must be >= 0")
)

// Options configures one GDT invocation (§6 configuration surface:
// neighborhood_size, z_multiplier, padding).
type Options struct {
	// NeighborhoodSize is k in §4.3; k=1 gives the 8-connected neighborhood.
	NeighborhoodSize int
	// ZMultiplier is the vertical exaggeration applied to elevation before
	// computing 3D edge lengths.
	ZMultiplier float64
	// Padding is the number of +∞-filled cells added around the DEM so every
	// interior cell has a full k-neighborhood.
	Padding int
	// Traceback additionally computes, per reachable cell, the flat index of
	// its parent cell in the Dijkstra tree and the index of the source
	// segment it traces back to — the "historical allocation-style
	// variant" of §4.3. Unused by the strip-contour path generator.
	Traceback bool
}

// Option is a functional option for Compute.
type Option func(*Options)

// DefaultOptions returns the conventional configuration: 8-connected
// (k=1), no vertical exaggeration, 10 cells of padding.
func DefaultOptions() Options {
	return Options{NeighborhoodSize: 1, ZMultiplier: 1, Padding: 10}
}

// WithNeighborhoodSize sets k; k=1 is the 8-connected neighborhood.
func WithNeighborhoodSize(k int) Option {
	return func(o *Options) { o.NeighborhoodSize = k }
}

// WithZMultiplier sets the vertical exaggeration applied before computing
// 3D edge costs. 0 degenerates GDT to 2D weighted grid distance.
func WithZMultiplier(z float64) Option {
	return func(o *Options) { o.ZMultiplier = z }
}

// WithPadding sets the number of cells of +∞ padding added around the DEM.
func WithPadding(p int) Option {
	return func(o *Options) { o.Padding = p }
}

// WithTraceback enables the optional per-cell predecessor-index and
// source-allocation output.
func WithTraceback() Option {
	return func(o *Options) { o.Traceback = true }
}

func (o Options) validate() error {
	if o.NeighborhoodSize < 1 {
		return ErrBadNeighborhood
	}
	if o.ZMultiplier < 0 {
		return ErrNegativeZMultiplier
	}
	return nil
}
