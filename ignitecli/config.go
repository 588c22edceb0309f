// Package ignitecli wires the ignite packages into a cobra command tree:
// configuration loading, subcommands for the pattern/gdt/contour/plot
// workflows, and the logging/output conventions shared across all of them.
package ignitecli

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the full configuration surface for an ignite run: the DEM
// and firing-area inputs, the ignition crew, the firing technique's own
// parameters, and the propagator's timing options (§6 External Interfaces).
type Config struct {
	// Technique names a firing technique (e.g. "ring", "strip_contour"). The
	// "ignite pattern" subcommand does not read this field: it takes the
	// technique from its required positional argument.
	Technique string

	// DEMFile is the path to a DEM grid previously written by grid.Save.
	// Can include environment variables.
	DEMFile string
	// OutputFile is where the resulting Pattern is written, in the format
	// written by pattern.Save. Can include environment variables.
	OutputFile string
	// LogFile is the path to the desired log file location. If left blank,
	// log output goes to stderr only.
	LogFile string

	// PolygonPoints is the firing area boundary, as a closed or open ring
	// of [x, y] world-coordinate pairs.
	PolygonPoints [][2]float64
	// Direction is the firing direction in radians, counter-clockwise from
	// +x (the wind direction for Head/Back/Flank/Strip/StripContour).
	Direction float64
	// CRS is the coordinate reference system code carried on the resulting
	// Pattern.
	CRS int

	// SourceLine is the seed line for the standalone "gdt" subcommand, as
	// an ordered list of [x, y] world-coordinate pairs.
	SourceLine [][2]float64
	// Levels is the list of cost-grid iso-values the standalone "contour"
	// subcommand extracts.
	Levels []float64

	// NumIgniters is the size of the ignition crew.
	NumIgniters int
	// Velocities gives each igniter's travel speed in meters per second. If
	// shorter than NumIgniters, the last entry is reused for the remaining
	// igniters.
	Velocities []float64
	// DashLengths and GapLengths configure dashed/dotted igniters the same
	// way, broadcasting the last entry when short. An entry of 0 in both
	// means a continuous igniter.
	DashLengths []float64
	GapLengths  []float64

	// Spacing is the igniter stagger distance in meters.
	Spacing float64
	// HeatDelay is the extra seconds added once at the start of each
	// non-first heat.
	HeatDelay float64
	// SyncEndTime aligns every path's end time within a heat. Ring ignition
	// always behaves as though this were true; see firing.SyncEndTimeDefault.
	SyncEndTime bool
	// ReturnTrip accounts for travel back to the starting side between
	// heats.
	ReturnTrip bool

	// ZMultiplier scales elevation change in the geodesic distance
	// transform StripContour runs internally.
	ZMultiplier float64
	// IgniterDepth and HeatDepth are the level-set spacings Strip and
	// StripContour use (§4.5 step 5).
	IgniterDepth float64
	HeatDepth    float64
	// Side selects which alternating levels StripContour reverses: "left"
	// or "right".
	Side string
}

// ReadConfigFile reads and parses a TOML configuration file.
func ReadConfigFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("ignite: the configuration file you specified, %v, does not "+
			"appear to exist: %v", filename, err)
	}
	defer file.Close()

	b, err := ioutil.ReadAll(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("ignite: problem reading configuration file: %v", err)
	}

	cfg := new(Config)
	if _, err := toml.Decode(string(b), cfg); err != nil {
		return nil, fmt.Errorf("ignite: problem parsing configuration file: %v", err)
	}

	cfg.DEMFile = os.ExpandEnv(cfg.DEMFile)
	cfg.OutputFile = os.ExpandEnv(cfg.OutputFile)
	cfg.LogFile = os.ExpandEnv(cfg.LogFile)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.NumIgniters <= 0 {
		return fmt.Errorf("ignite: config: num_igniters must be > 0")
	}
	if len(cfg.Velocities) == 0 {
		return fmt.Errorf("ignite: config: velocities must have at least one entry")
	}
	return nil
}

// broadcastAt returns vals[i], or the last entry of vals if i is beyond its
// length, matching the "broadcast the last value to remaining igniters"
// convenience documented on Config.
func broadcastAt(vals []float64, i int) float64 {
	if len(vals) == 0 {
		return 0
	}
	if i < len(vals) {
		return vals[i]
	}
	return vals[len(vals)-1]
}
