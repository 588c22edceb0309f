package grid

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/emberline/ignite/geo"
)

// gridDataVersion is written alongside a saved grid and checked on load, so
// a grid saved by an incompatible future layout is rejected instead of
// silently misread.
const gridDataVersion = "1"

type gridFile struct {
	DataVersion string
	Rows, Cols  int
	Data        []float64
	Transform   geo.Transform
	CRS         int
	NoData      float64
}

// Save writes g to w in gob format (https://golang.org/pkg/encoding/gob/),
// the same format the DEM and cost grids share on disk.
func (g *Grid) Save(w io.Writer) error {
	data := gridFile{
		DataVersion: gridDataVersion,
		Rows:        g.Rows,
		Cols:        g.Cols,
		Data:        g.Data,
		Transform:   g.Transform,
		CRS:         g.CRS,
		NoData:      g.NoData,
	}
	if err := gob.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("grid: save: %v", err)
	}
	return nil
}

// Load reads a grid previously written by Save.
func Load(r io.Reader) (*Grid, error) {
	var data gridFile
	if err := gob.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("grid: load: %v", err)
	}
	if data.DataVersion != gridDataVersion {
		return nil, fmt.Errorf("grid: load: data version %q is not compatible with %q", data.DataVersion, gridDataVersion)
	}
	return NewFromData(data.Rows, data.Cols, data.Data, data.Transform, data.CRS, data.NoData), nil
}
