package grid

import "math"

var negInf = math.Inf(-1)

func isInf(v float64) bool { return math.IsInf(v, 0) }
