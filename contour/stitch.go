package contour

import "fmt"

// stitch connects marching-squares segments that share an endpoint into
// polylines. Two segment endpoints are "the same point" if they were
// produced by interpolating the same shared cell edge, which always yields
// bit-identical floats, so a simple formatted-string key is safe.
func stitch(segs []segment) [][]point {
	type link struct {
		other point
		used  bool
	}
	adj := make(map[string][]int) // point key -> indices into segs touching it
	key := func(p point) string { return fmt.Sprintf("%.9f|%.9f", p.row, p.col) }

	for i, s := range segs {
		adj[key(s.a)] = append(adj[key(s.a)], i)
		adj[key(s.b)] = append(adj[key(s.b)], i)
	}

	used := make([]bool, len(segs))
	var lines [][]point

	extend := func(startIdx int, fromA bool) []point {
		var line []point
		idx := startIdx
		cur, next := segs[idx].a, segs[idx].b
		if !fromA {
			cur, next = segs[idx].b, segs[idx].a
		}
		line = append(line, cur, next)
		used[idx] = true
		for {
			candidates := adj[key(next)]
			found := -1
			for _, ci := range candidates {
				if !used[ci] {
					found = ci
					break
				}
			}
			if found == -1 {
				break
			}
			used[found] = true
			s := segs[found]
			var advance point
			if key(s.a) == key(next) {
				advance = s.b
			} else {
				advance = s.a
			}
			line = append(line, advance)
			next = advance
		}
		return line
	}

	// First pass: start chains at open endpoints (degree 1), so open
	// polylines come out in natural order rather than split mid-line.
	for i := range segs {
		if used[i] {
			continue
		}
		if len(adj[key(segs[i].a)]) == 1 {
			lines = append(lines, extend(i, true))
		} else if len(adj[key(segs[i].b)]) == 1 {
			lines = append(lines, extend(i, false))
		}
	}
	// Second pass: whatever remains is part of a closed loop (or an
	// isolated segment); start anywhere unused.
	for i := range segs {
		if used[i] {
			continue
		}
		lines = append(lines, extend(i, true))
	}

	return dedupe(lines)
}

// dedupe removes consecutive duplicate vertices from each line, per the
// contour extractor's "duplicate vertices are suppressed" guarantee.
func dedupe(lines [][]point) [][]point {
	out := make([][]point, 0, len(lines))
	for _, line := range lines {
		var cleaned []point
		for _, p := range line {
			if len(cleaned) > 0 && cleaned[len(cleaned)-1] == p {
				continue
			}
			cleaned = append(cleaned, p)
		}
		if len(cleaned) >= 2 {
			out = append(out, cleaned)
		}
	}
	return out
}
