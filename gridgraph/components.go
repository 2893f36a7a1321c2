package gridgraph

// FreeRegions finds all contiguous regions of non-blocked cells under
// 4-connectivity. Start and End cells count as open.
// Returns a slice of regions; each region lists its cells in BFS discovery
// order, and regions are ordered by their first cell in row-major order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) FreeRegions() [][]Coordinate {
	var comps [][]Coordinate
	_ = g.Read(func(v View) error {
		seen := make([]bool, v.Len())
		for i0 := 0; i0 < v.Len(); i0++ {
			if seen[i0] || v.State(i0) == Blocked {
				continue
			}
			var comp []Coordinate
			floodFill(v, i0, seen, func(u int) bool {
				comp = append(comp, v.Coordinate(u))
				return true
			})
			comps = append(comps, comp)
		}
		return nil
	})

	return comps
}

// Reachable reports whether to can be reached from from by 4-connected moves
// over non-blocked cells. It does not consult visited markings or any search
// package, which makes it a cross-check for search results.
// Out-of-bounds or blocked endpoints are never reachable.
func (g *Grid) Reachable(from, to Coordinate) bool {
	if !g.InBounds(from) || !g.InBounds(to) {
		return false
	}
	found := false
	_ = g.Read(func(v View) error {
		src, dst := v.Index(from), v.Index(to)
		if v.State(src) == Blocked || v.State(dst) == Blocked {
			return nil
		}
		seen := make([]bool, v.Len())
		floodFill(v, src, seen, func(u int) bool {
			if u == dst {
				found = true
				return false
			}
			return true
		})
		return nil
	})

	return found
}

// floodFill walks the non-blocked region containing i0, calling visit for
// every cell in BFS order until visit returns false. seen is updated in place.
func floodFill(v View, i0 int, seen []bool, visit func(u int) bool) {
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if !visit(u) {
			return
		}
		uc := v.Coordinate(u)
		for _, d := range Offsets4 {
			n := uc.Offset(d[0], d[1])
			if !v.InBounds(n) {
				continue
			}
			ni := v.Index(n)
			if !seen[ni] && v.State(ni) != Blocked {
				seen[ni] = true
				queue = append(queue, ni)
			}
		}
	}
}
