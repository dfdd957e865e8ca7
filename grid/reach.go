package grid

import "github.com/zyedidia/generic/mapset"

// Reachable reports whether to can be reached from from by following the
// current links. Statuses and costs are ignored; only topology counts.
// Returns ErrOutOfBounds if either coordinate lies outside the grid.
//
// Time:   O(W·H), each cell is queued at most once.
// Memory: O(W·H) for the queue and the visited set.
func (g *Grid) Reachable(from, to Coordinate) (bool, error) {
	src, err := g.Index(from)
	if err != nil {
		return false, err
	}
	dst, err := g.Index(to)
	if err != nil {
		return false, err
	}

	seen := mapset.New[int]()
	seen.Put(src)
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			return true, nil
		}
		for _, v := range g.cells[u].links {
			if v == None || seen.Has(v) {
				continue
			}
			seen.Put(v)
			queue = append(queue, v)
		}
	}

	return false, nil
}
