// Package nav derives the static navigation data of a level: danger zones
// from ORANGE corner markers and the PURPLE waypoint graph.
package nav

import (
	"math"
	"sort"

	"github.com/automoto/piratecove/shared/gamemath"
)

// Marker is one ORANGE corner rect. Group, when set, assigns it to a zone
// explicitly.
type Marker struct {
	Rect  gamemath.Rect
	Group string
}

// Zone is the bounding box of a marker group. Validated is set only when the
// group has exactly four markers, one on each corner of the box.
type Zone struct {
	Rect      gamemath.Rect
	Validated bool
	Markers   int
	Group     string
}

// Contains reports whether the point lies inside the zone.
func (z Zone) Contains(x, y float64) bool {
	return z.Rect.Contains(x, y)
}

// DangerZones groups markers and derives one zone per group. Labelled
// markers are grouped by label. Unlabelled markers are matched into
// rectangles: each marker, taken as a top-left corner, pairs with the
// nearest marker on its row and the nearest on its column that have a fourth
// marker closing the rectangle. Markers left over are joined when they share
// a row or a column within tol pixels and come back unvalidated. Zones are
// ordered top-left first.
func DangerZones(markers []Marker, tol float64) []Zone {
	if len(markers) == 0 {
		return nil
	}

	var zones []Zone
	labelled := map[string][]Marker{}
	var labels []string
	var loose []Marker
	for _, m := range markers {
		if m.Group == "" {
			loose = append(loose, m)
			continue
		}
		if _, ok := labelled[m.Group]; !ok {
			labels = append(labels, m.Group)
		}
		labelled[m.Group] = append(labelled[m.Group], m)
	}
	for _, l := range labels {
		zones = append(zones, zoneFor(labelled[l], tol))
	}

	rects, rest := matchRectangles(loose, tol)
	for _, group := range rects {
		zones = append(zones, zoneFor(group, tol))
	}
	for _, group := range groupAligned(rest, tol) {
		zones = append(zones, zoneFor(group, tol))
	}

	sort.SliceStable(zones, func(i, j int) bool {
		if zones[i].Rect.Y != zones[j].Rect.Y {
			return zones[i].Rect.Y < zones[j].Rect.Y
		}
		return zones[i].Rect.X < zones[j].Rect.X
	})
	return zones
}

// matchRectangles pulls out every four-corner rectangle, nearest corners
// first, and returns the unmatched markers.
func matchRectangles(markers []Marker, tol float64) ([][]Marker, []Marker) {
	order := make([]int, len(markers))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := markers[order[a]].Rect, markers[order[b]].Rect
		if !near(ra.Top(), rb.Top(), tol) {
			return ra.Top() < rb.Top()
		}
		return ra.Left() < rb.Left()
	})

	used := make([]bool, len(markers))
	free := func(pred func(r gamemath.Rect) bool) []int {
		var out []int
		for _, i := range order {
			if !used[i] && pred(markers[i].Rect) {
				out = append(out, i)
			}
		}
		return out
	}

	var rects [][]Marker
	for _, tl := range order {
		if used[tl] {
			continue
		}
		a := markers[tl].Rect
		right := free(func(r gamemath.Rect) bool {
			return near(r.Top(), a.Top(), tol) && r.Left() > a.Left()+tol
		})
		below := free(func(r gamemath.Rect) bool {
			return near(r.Left(), a.Left(), tol) && r.Top() > a.Top()+tol
		})
		sort.SliceStable(right, func(i, j int) bool { return markers[right[i]].Rect.Left() < markers[right[j]].Rect.Left() })
		sort.SliceStable(below, func(i, j int) bool { return markers[below[i]].Rect.Top() < markers[below[j]].Rect.Top() })

	search:
		for _, tr := range right {
			for _, bl := range below {
				b, c := markers[tr].Rect, markers[bl].Rect
				br := free(func(r gamemath.Rect) bool {
					return near(r.Left(), b.Left(), tol) && near(r.Top(), c.Top(), tol)
				})
				if len(br) == 0 {
					continue
				}
				for _, i := range []int{tl, tr, bl, br[0]} {
					used[i] = true
				}
				rects = append(rects, []Marker{markers[tl], markers[tr], markers[bl], markers[br[0]]})
				break search
			}
		}
	}

	var rest []Marker
	for i, m := range markers {
		if !used[i] {
			rest = append(rest, m)
		}
	}
	return rects, rest
}

// groupAligned joins markers that share a row or a column.
func groupAligned(markers []Marker, tol float64) [][]Marker {
	parent := make([]int, len(markers))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	for i := range markers {
		for j := i + 1; j < len(markers); j++ {
			if aligned(markers[i].Rect, markers[j].Rect, tol) {
				if ri, rj := find(i), find(j); ri != rj {
					parent[rj] = ri
				}
			}
		}
	}

	var groups [][]Marker
	index := map[int]int{}
	for i, m := range markers {
		r := find(i)
		g, ok := index[r]
		if !ok {
			g = len(groups)
			index[r] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], m)
	}
	return groups
}

func aligned(a, b gamemath.Rect, tol float64) bool {
	sameColumn := near(a.Left(), b.Left(), tol) || near(a.Right(), b.Right(), tol)
	sameRow := near(a.Top(), b.Top(), tol) || near(a.Bottom(), b.Bottom(), tol)
	return sameColumn || sameRow
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func zoneFor(group []Marker, tol float64) Zone {
	box := group[0].Rect
	for _, m := range group[1:] {
		box = box.Union(m.Rect)
	}
	z := Zone{Rect: box, Markers: len(group), Group: group[0].Group}
	if len(group) != 4 {
		return z
	}

	used := make([]bool, len(group))
	for _, corner := range [4][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
		found := false
		for i, m := range group {
			if !used[i] && onCorner(m.Rect, box, corner[0], corner[1], tol) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return z
		}
	}
	z.Validated = true
	return z
}

func onCorner(r, box gamemath.Rect, right, bottom bool, tol float64) bool {
	x, bx := r.Left(), box.Left()
	if right {
		x, bx = r.Right(), box.Right()
	}
	y, by := r.Top(), box.Top()
	if bottom {
		y, by = r.Bottom(), box.Bottom()
	}
	return near(x, bx, tol) && near(y, by, tol)
}

// ZoneAt returns the first validated zone containing the point.
func ZoneAt(zones []Zone, x, y float64) (Zone, bool) {
	for _, z := range zones {
		if z.Validated && z.Contains(x, y) {
			return z, true
		}
	}
	return Zone{}, false
}
