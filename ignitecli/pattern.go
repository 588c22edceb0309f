package ignitecli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/emberline/ignite/firing"
	"github.com/emberline/ignite/grid"
	"github.com/emberline/ignite/propagate"
)

var (
	patternOutFile string
	patternSpacing string
)

func init() {
	RootCmd.AddCommand(patternCmd)
	patternCmd.Flags().StringVar(&patternOutFile, "out", "", "override the configured output file for this run")
	patternCmd.Flags().StringVar(&patternSpacing, "spacing", "", "override the configured igniter stagger spacing, in meters")
	overrides.BindPFlag("spacing", patternCmd.Flags().Lookup("spacing"))
}

var patternCmd = &cobra.Command{
	Use:   "pattern <technique>",
	Short: "Generate and time an ignition pattern.",
	Long: `pattern lays out paths for the named firing technique over the
configured firing area and DEM, then times them against the configured
ignition crew. technique is one of: ring, head, back, flank, strip,
strip_contour, inferno.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(RunPattern(args[0]))
	},
	DisableAutoGenTag: true,
}

// RunPattern builds, times, and saves an ignition pattern for technique.
func RunPattern(technique string) error {
	area, err := firingAreaFromConfig(Config)
	if err != nil {
		return err
	}

	var dem *grid.Grid
	if Config.DEMFile != "" {
		dem, err = loadDEM(Config.DEMFile)
		if err != nil {
			return err
		}
	}

	c, err := crewFromConfig(Config)
	if err != nil {
		return err
	}

	gen, err := firing.New(technique, firingConfigFromConfig(Config))
	if err != nil {
		return err
	}

	logrus.WithField("technique", technique).Info("laying out ignition paths")
	paths, err := gen.InitPaths(area, dem, c)
	if err != nil {
		return err
	}

	spacing := Config.Spacing
	if raw := overrides.Get("spacing"); raw != nil && raw != "" {
		if v, err := cast.ToFloat64E(raw); err == nil {
			spacing = v
		}
	}

	opts := propagate.Options{
		Spacing:     spacing,
		HeatDelay:   Config.HeatDelay,
		SyncEndTime: Config.SyncEndTime || firing.SyncEndTimeDefault(technique),
		ReturnTrip:  Config.ReturnTrip,
	}

	logrus.Info("timing ignition paths")
	timed, err := propagate.Forward(paths, c, opts)
	if err != nil {
		return err
	}
	timed.CRS = Config.CRS

	out := Config.OutputFile
	if patternOutFile != "" {
		out = patternOutFile
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("ignite: creating output file: %v", err)
	}
	defer f.Close()
	if err := timed.Save(f); err != nil {
		return err
	}
	logrus.WithField("file", out).Info("pattern written")
	return nil
}
