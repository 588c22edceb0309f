package geomutil

import "math"

var posInf = math.Inf(1)

func cos(x float64) float64   { return math.Cos(x) }
func sin(x float64) float64   { return math.Sin(x) }
func hypot(x, y float64) float64 { return math.Hypot(x, y) }
