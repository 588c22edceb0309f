package ignitecli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emberline/ignite/gdt"
)

var gdtOutFile string

func init() {
	RootCmd.AddCommand(gdtCmd)
	gdtCmd.Flags().StringVar(&gdtOutFile, "out", "cost.grid", "path to write the resulting cost grid to")
}

var gdtCmd = &cobra.Command{
	Use:   "gdt",
	Short: "Compute a geodesic distance transform from the configured seed line.",
	Long: `gdt runs the geodesic distance transform over the configured DEM from
the configured source line and saves the resulting cost grid, independent of
any firing technique. Useful for inspecting a cost surface (with "ignite
plot") before committing to a strip_contour run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(RunGDT())
	},
	DisableAutoGenTag: true,
}

// RunGDT computes and saves a standalone cost grid.
func RunGDT() error {
	if Config.DEMFile == "" {
		return fmt.Errorf("ignite: config: dem_file is required for the gdt subcommand")
	}
	dem, err := loadDEM(Config.DEMFile)
	if err != nil {
		return err
	}
	if len(Config.SourceLine) == 0 {
		return fmt.Errorf("ignite: config: source_line is required for the gdt subcommand")
	}
	source := ringFromPoints(Config.SourceLine)

	logrus.Info("computing geodesic distance transform")
	cost, err := gdt.Compute(dem, source, gdt.WithZMultiplier(Config.ZMultiplier))
	if err != nil {
		return err
	}

	f, err := os.Create(gdtOutFile)
	if err != nil {
		return fmt.Errorf("ignite: creating cost grid output file: %v", err)
	}
	defer f.Close()
	if err := cost.Save(f); err != nil {
		return err
	}
	logrus.WithField("file", gdtOutFile).Info("cost grid written")
	return nil
}
