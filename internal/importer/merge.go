package importer

// resolveRowMerges runs when a table row completes. The event stream never
// says which cells are merged, so empty cells are folded into the preceding
// populated one: scanning right to left, a contiguous run of empty columns
// is merged into the populated cell on its left as a single column span.
// This is a heuristic reconstruction of the source's visual intent and is
// kept exactly as specified; runs that reach column zero without meeting a
// populated cell merge nothing.
func (b *Builder) resolveRowMerges() {
	st := &b.st
	if st.table == nil {
		return
	}

	mergeEnd := -1
	mergeBegin := -1
	for col := st.tableCol; col >= 0; col-- {
		if _, populated := st.nonEmptyCells[col]; populated {
			if mergeEnd >= 0 && mergeBegin >= 0 {
				row := st.table.Rows() - 1
				b.logger.Debug("merging cells", "from", mergeBegin, "to", mergeEnd, "row", row)
				st.table.MergeCells(row, mergeBegin-1, 1, mergeEnd-mergeBegin+2)
			}
			mergeEnd = -1
			mergeBegin = -1
		} else if mergeEnd < 0 {
			mergeEnd = col
		} else {
			mergeBegin = col
		}
	}
}
