// Package diagnostics reports summary statistics about a timed Pattern and
// renders a GDT cost grid as a heatmap, for debugging a run rather than
// producing an end-user map (§4.8).
package diagnostics

import (
	"sort"

	"github.com/emberline/ignite/pattern"
)

// HeatSummary reports aggregate statistics for one heat of a Pattern.
type HeatSummary struct {
	Heat         int
	IgniterCount int
	TotalLength  float64
	ElapsedTime  float64
	AveragePace  float64 // TotalLength / ElapsedTime / IgniterCount, in world units per second per igniter
}

// Summary reports aggregate statistics for a whole Pattern, broken out by
// heat.
type Summary struct {
	Heats []HeatSummary
}

// Summarize computes per-heat igniter count, total line length, elapsed
// time, and average pace for p.
func Summarize(p pattern.Pattern) Summary {
	type acc struct {
		igniters    map[int]bool
		length      float64
		minStart    float64
		maxEnd      float64
		haveAnyTime bool
	}
	byHeat := map[int]*acc{}
	var heats []int

	for _, path := range p.Paths {
		a, ok := byHeat[path.Heat]
		if !ok {
			a = &acc{igniters: map[int]bool{}}
			byHeat[path.Heat] = a
			heats = append(heats, path.Heat)
		}
		a.igniters[path.Igniter] = true
		a.length += path.Length()
		if !a.haveAnyTime || path.StartTime < a.minStart {
			a.minStart = path.StartTime
		}
		if !a.haveAnyTime || path.EndTime > a.maxEnd {
			a.maxEnd = path.EndTime
		}
		a.haveAnyTime = true
	}

	sort.Ints(heats)
	out := Summary{Heats: make([]HeatSummary, 0, len(heats))}
	for _, h := range heats {
		a := byHeat[h]
		elapsed := a.maxEnd - a.minStart
		pace := 0.0
		if elapsed > 0 {
			pace = a.length / elapsed / float64(len(a.igniters))
		}
		out.Heats = append(out.Heats, HeatSummary{
			Heat:         h,
			IgniterCount: len(a.igniters),
			TotalLength:  a.length,
			ElapsedTime:  elapsed,
			AveragePace:  pace,
		})
	}
	return out
}
