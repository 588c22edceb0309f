package ignitecli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/emberline/ignite/diagnostics"
	"github.com/emberline/ignite/grid"
)

var (
	plotInFile  string
	plotOutFile string
	plotWidth   float64
	plotHeight  float64
)

func init() {
	RootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVar(&plotInFile, "in", "cost.grid", "path to a cost grid previously written by \"ignite gdt\"")
	plotCmd.Flags().StringVar(&plotOutFile, "out", "cost.png", "path to write the rendered heatmap to")
	plotCmd.Flags().Float64Var(&plotWidth, "width", 6, "plot width, in inches")
	plotCmd.Flags().Float64Var(&plotHeight, "height", 6, "plot height, in inches")
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render a saved cost grid as a heatmap PNG.",
	Long: `plot loads a cost grid previously written by "ignite gdt" and
renders it as a heatmap, for visually sanity-checking a geodesic distance
transform before laying out a strip_contour pattern over it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(RunPlot())
	},
	DisableAutoGenTag: true,
}

// RunPlot renders and saves a heatmap of a saved cost grid.
func RunPlot() error {
	f, err := os.Open(plotInFile)
	if err != nil {
		return fmt.Errorf("ignite: opening cost grid file: %v", err)
	}
	cost, err := grid.Load(f)
	f.Close()
	if err != nil {
		return err
	}

	p, err := diagnostics.RenderCostGrid(cost)
	if err != nil {
		return err
	}

	logrus.WithField("file", plotOutFile).Info("rendering heatmap")
	wt, err := p.WriterTo(vg.Length(plotWidth)*vg.Inch, vg.Length(plotHeight)*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("ignite: rendering heatmap: %v", err)
	}
	out, err := os.Create(plotOutFile)
	if err != nil {
		return fmt.Errorf("ignite: creating heatmap output file: %v", err)
	}
	defer out.Close()
	if _, err := wt.WriteTo(out); err != nil {
		return fmt.Errorf("ignite: writing heatmap: %v", err)
	}
	logrus.WithField("file", plotOutFile).Info("heatmap written")
	return nil
}
