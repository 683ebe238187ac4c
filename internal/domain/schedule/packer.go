package schedule

import "sort"

// LeftPack compacts a slot's placements into contiguous, non-overlapping
// column positions. Input order among equal columnStart values is decided by
// assignmentID so the result is deterministic; each placement keeps its hours
// and relative order, only positional gaps are removed. Packing never fails.
func LeftPack(placements []TaskPlacement) []TaskPlacement {
	if len(placements) == 0 {
		return nil
	}

	packed := append([]TaskPlacement(nil), placements...)
	SortPlacements(packed)

	offset := 0
	for i := range packed {
		packed[i].ColumnStart = offset
		offset += packed[i].Width()
	}
	return packed
}

// SortPlacements orders placements by (columnStart, assignmentID) in place.
// Positions are left untouched: rendering order is derived from them, it never
// rewrites them.
func SortPlacements(placements []TaskPlacement) {
	sort.SliceStable(placements, func(i, j int) bool {
		if placements[i].ColumnStart != placements[j].ColumnStart {
			return placements[i].ColumnStart < placements[j].ColumnStart
		}
		return placements[i].AssignmentID < placements[j].AssignmentID
	})
}

// RemoveAndPack drops the placement with assignmentID and left-packs the
// remainder. Used when a task is deleted or moved out of a slot: only the
// vacated slot is compacted, the destination keeps its explicit position.
func RemoveAndPack(placements []TaskPlacement, assignmentID string) []TaskPlacement {
	remaining := make([]TaskPlacement, 0, len(placements))
	for _, p := range placements {
		if p.AssignmentID != assignmentID {
			remaining = append(remaining, p)
		}
	}
	return LeftPack(remaining)
}
