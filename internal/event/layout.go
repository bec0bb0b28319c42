package event

// Group is a cluster of events rendered side by side because their
// intervals intersect. Order within the group is insertion order from
// the grouping pass.
type Group []*Event

// GroupOverlapping partitions events into overlap clusters with a
// single greedy pass: each event joins the first existing group that
// contains at least one member it intersects, or starts a new group.
//
// The result is order-dependent and deliberately not a transitive
// closure. Given A-B overlapping and B-C overlapping but A-C disjoint,
// C's group depends on input order. Overlap chains like that are rare
// on a real calendar and the greedy pass keeps the layout stable.
func GroupOverlapping(events []*Event) []Group {
	groups := make([]Group, 0)

	for _, e := range events {
		if !e.Valid() {
			continue
		}
		placed := false
		for gi, g := range groups {
			for _, member := range g {
				if Overlaps(e, member) {
					groups[gi] = append(g, e)
					placed = true
					break
				}
			}
			if placed {
				break
			}
		}
		if !placed {
			groups = append(groups, Group{e})
		}
	}

	return groups
}

// Position is an event's vertical placement in a day column, in grid
// rows. One row is one 30-minute slot scaled by rowHeight.
type Position struct {
	Offset int
	Height int
}

// slotIndex maps a wall-clock time to its 30-minute slot (0..47).
func slotIndex(hour, minute int) int {
	idx := hour * 2
	if minute >= 30 {
		idx++
	}
	return idx
}

// Place computes the event's vertical offset and height at the given
// row height. Events shorter than one slot still occupy a full row so
// they stay visible.
func Place(e *Event, rowHeight int) Position {
	if !e.Valid() {
		return Position{}
	}
	start := slotIndex(e.Start.Hour(), e.Start.Minute())
	end := slotIndex(e.End.Hour(), e.End.Minute())

	span := end - start
	if span < 1 {
		span = 1
	}
	return Position{
		Offset: start * rowHeight,
		Height: span * rowHeight,
	}
}

// Span is an event's horizontal extent within its day column,
// expressed as fractions of the column width.
type Span struct {
	Left  float64
	Right float64
}

// Column returns the horizontal span for the event at index i of an
// n-wide group: equal-width side-by-side columns with no gap filling.
func Column(i, n int) Span {
	if n <= 0 {
		return Span{Left: 0, Right: 1}
	}
	return Span{
		Left:  float64(i) / float64(n),
		Right: float64(i+1) / float64(n),
	}
}
