package firing

import "fmt"

// Config holds every technique-specific parameter (§6 external interfaces:
// igniter_depth, heat_depth, num_igniters, side, z_multiplier) in one place, so
// the factory can build any Generator from a flat configuration record
// without the caller knowing which fields a given technique reads.
type Config struct {
	NumIgniters             int
	IgniterDepth, HeatDepth float64
	Side                    Side
	ZMultiplier             float64
}

// New returns the Generator named by technique, one of "ring", "head",
// "back", "flank", "strip", "strip_contour", or "inferno".
func New(technique string, cfg Config) (Generator, error) {
	switch technique {
	case "ring":
		return Ring{}, nil
	case "head":
		return Head{}, nil
	case "back":
		return Back{}, nil
	case "flank":
		return Flank{}, nil
	case "strip":
		return Strip{NumIgniters: cfg.NumIgniters, IgniterDepth: cfg.IgniterDepth, HeatDepth: cfg.HeatDepth}, nil
	case "strip_contour":
		return StripContour{
			NumIgniters:  cfg.NumIgniters,
			IgniterDepth: cfg.IgniterDepth,
			HeatDepth:    cfg.HeatDepth,
			Side:         cfg.Side,
			ZMultiplier:  cfg.ZMultiplier,
		}, nil
	case "inferno":
		return Inferno{}, nil
	default:
		return nil, fmt.Errorf("firing: unknown technique %q", technique)
	}
}

// SyncEndTimeDefault reports whether technique conventionally synchronizes
// in-heat end times when no explicit override is given — true for ring
// firing, where every igniter is expected to close the loop together.
func SyncEndTimeDefault(technique string) bool {
	return technique == "ring"
}
