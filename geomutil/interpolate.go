package geomutil

import "github.com/ctessum/geom"

// CumulativeLengths returns, for each vertex of line, the distance walked
// along line from its first vertex; CumulativeLengths(line)[0] is always 0
// and the last entry equals line.Length().
func CumulativeLengths(line geom.LineString) []float64 {
	cum := make([]float64, len(line))
	for i := 1; i < len(line); i++ {
		cum[i] = cum[i-1] + dist(line[i-1], line[i])
	}
	return cum
}

// PointAtDistance returns the point d along line, measured from its first
// vertex, clamping to the first or last vertex if d falls outside [0, length].
func PointAtDistance(line geom.LineString, cum []float64, d float64) geom.Point {
	if len(line) == 0 {
		return geom.Point{}
	}
	if d <= 0 {
		return line[0]
	}
	total := cum[len(cum)-1]
	if d >= total {
		return line[len(line)-1]
	}
	for i := 1; i < len(cum); i++ {
		if cum[i] >= d {
			segLen := cum[i] - cum[i-1]
			if segLen == 0 {
				return line[i-1]
			}
			t := (d - cum[i-1]) / segLen
			a, b := line[i-1], line[i]
			return geom.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
		}
	}
	return line[len(line)-1]
}

// Split cuts line at each ascending distance in cuts (each strictly between
// 0 and line's total length), returning len(cuts)+1 consecutive sub-lines
// that share endpoints at the cut points.
func Split(line geom.LineString, cuts []float64) []geom.LineString {
	if len(line) < 2 {
		return nil
	}
	cum := CumulativeLengths(line)
	var parts []geom.LineString
	current := geom.LineString{line[0]}
	cutIdx := 0
	for i := 1; i < len(line); i++ {
		segStart, segEnd := cum[i-1], cum[i]
		for cutIdx < len(cuts) && cuts[cutIdx] > segStart && cuts[cutIdx] < segEnd {
			p := PointAtDistance(line, cum, cuts[cutIdx])
			current = append(current, p)
			parts = append(parts, current)
			current = geom.LineString{p}
			cutIdx++
		}
		current = append(current, line[i])
	}
	parts = append(parts, current)
	return parts
}
