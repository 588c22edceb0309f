package ignitecli

import (
	"fmt"
	"os"

	"github.com/ctessum/geom"

	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/firing"
	"github.com/emberline/ignite/grid"
)

func loadDEM(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ignite: opening DEM file: %v", err)
	}
	defer f.Close()
	return grid.Load(f)
}

func ringFromPoints(pts [][2]float64) geom.LineString {
	line := make(geom.LineString, len(pts))
	for i, p := range pts {
		line[i] = geom.Point{X: p[0], Y: p[1]}
	}
	return line
}

func firingAreaFromConfig(cfg *Config) (firing.FiringArea, error) {
	if len(cfg.PolygonPoints) < 3 {
		return firing.FiringArea{}, fmt.Errorf("ignite: config: polygon_points needs at least 3 vertices")
	}
	ring := ringFromPoints(cfg.PolygonPoints)
	if first, last := ring[0], ring[len(ring)-1]; first != last {
		ring = append(ring, first)
	}
	return firing.FiringArea{
		Polygon:   geom.Polygon{ring},
		Direction: cfg.Direction,
	}, nil
}

func crewFromConfig(cfg *Config) (crew.IgnitionCrew, error) {
	igniters := make([]crew.Igniter, cfg.NumIgniters)
	for i := range igniters {
		v := broadcastAt(cfg.Velocities, i)
		ig := crew.NewIgniter(v)
		dash := broadcastAt(cfg.DashLengths, i)
		gap := broadcastAt(cfg.GapLengths, i)
		switch {
		case dash > 0:
			ig = ig.WithDash(dash, gap)
		case gap > 0:
			ig = ig.WithDots(gap)
		}
		igniters[i] = ig
	}
	c := crew.NewCrew(igniters...)
	if err := c.Validate(); err != nil {
		return crew.IgnitionCrew{}, err
	}
	return c, nil
}

func firingConfigFromConfig(cfg *Config) firing.Config {
	side := firing.Left
	if cfg.Side == "right" {
		side = firing.Right
	}
	return firing.Config{
		NumIgniters:  cfg.NumIgniters,
		IgniterDepth: cfg.IgniterDepth,
		HeatDepth:    cfg.HeatDepth,
		Side:         side,
		ZMultiplier:  cfg.ZMultiplier,
	}
}
