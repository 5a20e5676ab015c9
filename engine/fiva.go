package engine

// Line detection. Triggered once per successful chip placement, never on
// removal. Each of the four axes is scanned independently over the entire
// line through the placed cell; the first qualifying window per axis (by
// ascending start) is recorded, deduplicated against already-recorded lines
// by exact cell-set equality.

// lineThrough writes the full board line through pos along dir into cells,
// in ascending cell-index order, and returns its length. Rows and columns
// are always 10 long; diagonals range from 1 to 10.
func lineThrough(pos uint8, dir Direction) (cells [BoardSize]uint8, n uint8) {
	row, col := RowCol(pos)
	switch dir {
	case DirHorizontal:
		for c := uint8(0); c < BoardSize; c++ {
			cells[n] = CellIndex(row, c)
			n++
		}
	case DirVertical:
		for r := uint8(0); r < BoardSize; r++ {
			cells[n] = CellIndex(r, col)
			n++
		}
	case DirDiagDown:
		// Cells with constant col-row, walked from the top-left end.
		r, c := row, col
		for r > 0 && c > 0 {
			r--
			c--
		}
		for r < BoardSize && c < BoardSize {
			cells[n] = CellIndex(r, c)
			n++
			r++
			c++
		}
	case DirDiagUp:
		// Cells with constant row+col. Ascending cell index means walking
		// from the top-right end downward-left.
		r, c := row, col
		for r > 0 && c < BoardSize-1 {
			r--
			c++
		}
		for r < BoardSize && c != 0xFF {
			cells[n] = CellIndex(r, c)
			n++
			r++
			c--
		}
	}
	return cells, n
}

// windowQualifies reports whether every cell of the 5-window starting at
// cells[start] is usable by team: a corner wildcard or team's own chip.
func (g *GameState) windowQualifies(cells *[BoardSize]uint8, start uint8, team Team) bool {
	for i := start; i < start+RunLength; i++ {
		pos := cells[i]
		if IsCorner(pos) {
			continue
		}
		if g.Chips[pos] != team {
			return false
		}
	}
	return true
}

// scanAxis returns the first qualifying 5-window for team along dir's line
// through pos, or false. Scan order is ascending start index, so at most
// one window per axis is reported even when several overlap.
func (g *GameState) scanAxis(pos uint8, team Team, dir Direction) (CompletedFiva, bool) {
	cells, n := lineThrough(pos, dir)
	if n < RunLength {
		return CompletedFiva{}, false
	}
	for start := uint8(0); start+RunLength <= n; start++ {
		if !g.windowQualifies(&cells, start, team) {
			continue
		}
		f := CompletedFiva{Team: team, Dir: dir}
		copy(f.Cells[:], cells[start:start+RunLength])
		return f, true
	}
	return CompletedFiva{}, false
}

// detectFivas scans all four axes from a just-placed chip, appends every
// newly completed line (exact-cell-set dedup against the per-game list),
// bumps the owning team's counter, and marks the line's cells protected.
// Returns the lines recorded by this placement, at most one per axis.
func (g *GameState) detectFivas(pos uint8, team Team) []CompletedFiva {
	var found []CompletedFiva
	for _, dir := range [4]Direction{DirHorizontal, DirVertical, DirDiagDown, DirDiagUp} {
		f, ok := g.scanAxis(pos, team, dir)
		if !ok {
			continue
		}
		if g.isRecorded(&f) {
			continue
		}
		if g.FivaLen < MaxFivas {
			g.Fivas[g.FivaLen] = f
			g.FivaLen++
		}
		g.FivaCount[team]++
		for _, cell := range f.Cells {
			g.protect(cell)
		}
		found = append(found, f)
	}
	return found
}

// isRecorded reports whether an identical cell set is already on the list
// for the same team. Team is part of the key: corner cells may sit inside
// lines of different teams.
func (g *GameState) isRecorded(f *CompletedFiva) bool {
	for i := uint8(0); i < g.FivaLen; i++ {
		if g.Fivas[i].sameCells(f) && g.Fivas[i].Team == f.Team {
			return true
		}
	}
	return false
}

// IsPartOfCompletedFiva reports whether pos lies inside any recorded line.
// Equivalent to IsProtected; provided for the query surface.
func (g *GameState) IsPartOfCompletedFiva(pos uint8) bool {
	return pos < BoardCells && g.IsProtected(pos)
}
