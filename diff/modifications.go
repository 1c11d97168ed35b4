package diff

// mergeModifications rewrites removed/added run pairs as modified lines.
//
// A run of removed lines followed immediately by an equally long run of added
// lines merges only when every index-aligned pair passes areSimilar; one
// failing pair keeps the whole run as plain removed+added. Runs of unequal
// length never merge, even partially, so adjacent edits with different
// removed/added counts stay separate chunks. That limitation is intentional
// and relied on by existing behavior.
func mergeModifications(lines []Line, config Config) []Line {
	merged := make([]Line, 0, len(lines))
	i := 0

	for i < len(lines) {
		if lines[i].Type != LineRemoved {
			merged = append(merged, lines[i])
			i++
			continue
		}

		removedStart := i
		for i < len(lines) && lines[i].Type == LineRemoved {
			i++
		}
		removed := lines[removedStart:i]

		// Consume at most len(removed) added lines; any surplus added lines
		// are left for the next pass of the scan.
		addedStart := i
		for i < len(lines) && lines[i].Type == LineAdded && i-addedStart < len(removed) {
			i++
		}
		added := lines[addedStart:i]

		if len(added) != len(removed) || !allSimilar(removed, added, config) {
			merged = append(merged, removed...)
			i = addedStart
			continue
		}

		for k := range removed {
			merged = append(merged, Line{
				Type:        LineModified,
				LeftText:    removed[k].LeftText,
				RightText:   added[k].RightText,
				LeftNumber:  removed[k].LeftNumber,
				RightNumber: added[k].RightNumber,
			})
		}
	}

	return merged
}

func allSimilar(removed, added []Line, config Config) bool {
	for k := range removed {
		if !areSimilar(removed[k].LeftText, added[k].RightText, config) {
			return false
		}
	}
	return true
}
