package ignitecli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emberline/ignite/contour"
	"github.com/emberline/ignite/grid"
)

var (
	contourInFile  string
	contourOutFile string
)

func init() {
	RootCmd.AddCommand(contourCmd)
	contourCmd.Flags().StringVar(&contourInFile, "in", "cost.grid", "path to a cost grid previously written by \"ignite gdt\"")
	contourCmd.Flags().StringVar(&contourOutFile, "out", "contours.json", "path to write the extracted contours to")
}

var contourCmd = &cobra.Command{
	Use:   "contour",
	Short: "Extract isolines from a saved cost grid at the configured levels.",
	Long: `contour loads a cost grid previously written by "ignite gdt" and
extracts the configured levels from it, writing the resulting polylines as
JSON. Mostly useful for inspecting a strip_contour run's level set without
rerunning the full pattern pipeline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(RunContour())
	},
	DisableAutoGenTag: true,
}

// RunContour extracts and saves the configured levels from a saved cost grid.
func RunContour() error {
	if len(Config.Levels) == 0 {
		return fmt.Errorf("ignite: config: levels must have at least one entry for the contour subcommand")
	}

	f, err := os.Open(contourInFile)
	if err != nil {
		return fmt.Errorf("ignite: opening cost grid file: %v", err)
	}
	cost, err := grid.Load(f)
	f.Close()
	if err != nil {
		return err
	}

	logrus.WithField("levels", len(Config.Levels)).Info("extracting contours")
	results := contour.Extract(cost.Data, cost.Rows, cost.Cols, cost.Transform, Config.Levels)

	out, err := os.Create(contourOutFile)
	if err != nil {
		return fmt.Errorf("ignite: creating contour output file: %v", err)
	}
	defer out.Close()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("ignite: writing contours: %v", err)
	}
	logrus.WithField("file", contourOutFile).Info("contours written")
	return nil
}
